package constants

// NSQ topics
const (
	// TopicOTPDispatch carries codes to the external SMS/email sender
	TopicOTPDispatch = "otp.dispatch"

	// ChannelOTPSender is the consumer channel of the dispatcher
	ChannelOTPSender = "sender"
)
