package nsq

import (
	"testing"

	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_Unreachable(t *testing.T) {
	producer, err := NewProducer("127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, producer)
	assert.Contains(t, err.Error(), "failed to ping NSQ daemon at 127.0.0.1:1")
}

func TestNewConsumer_InvalidTopic(t *testing.T) {
	consumer, err := NewConsumer("bad topic!", "sender", "127.0.0.1:1", func([]byte) error { return nil })
	assert.Error(t, err)
	assert.Nil(t, consumer)
}

func TestUnmarshalMessage(t *testing.T) {
	var dispatch models.OTPDispatch
	require.NoError(t, UnmarshalMessage([]byte(`{"flow":"signin","channel":"phone","recipient":"+1555","code":"0042"}`), &dispatch))
	assert.Equal(t, models.OTPFlowSignin, dispatch.Flow)
	assert.Equal(t, "0042", dispatch.Code)

	assert.Error(t, UnmarshalMessage([]byte("{"), &dispatch))
}
