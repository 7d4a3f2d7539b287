package models

import (
	"time"
)

// OTPFlow distinguishes sign-up and sign-in challenges
type OTPFlow string

const (
	OTPFlowSignup OTPFlow = "signup"
	OTPFlowSignin OTPFlow = "signin"
)

// ContactKind is the channel an OTP subject identifier refers to
type ContactKind string

const (
	ContactPhone ContactKind = "phone"
	ContactEmail ContactKind = "email"
)

// OTPProfile holds the profile fields captured when a sign-up challenge is issued
type OTPProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	DOB      string `json:"dob"`
}

// OTP is an active one-time passcode challenge. Only a hash of the code is kept.
type OTP struct {
	Flow      OTPFlow     `json:"flow"`
	Subject   string      `json:"subject"`
	CodeHash  string      `json:"code_hash"`
	Profile   *OTPProfile `json:"profile,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// OTPDispatch is queued for the external SMS/email sender
type OTPDispatch struct {
	Flow      OTPFlow     `json:"flow"`
	Channel   ContactKind `json:"channel"`
	Recipient string      `json:"recipient"`
	Code      string      `json:"code"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SignupOTPRequest represents a request to start sign-up
type SignupOTPRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Name     string `json:"name" validate:"required,max=120"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
}

// SigninOTPRequest represents a request to start sign-in
type SigninOTPRequest struct {
	Subject string `json:"subject" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Subject string `json:"subject" validate:"required"`
	Code    string `json:"code" validate:"required,len=4,numeric"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// OTPVerification is the result of a successful OTP check: the subject and,
// for sign-up, the profile captured at issue time
type OTPVerification struct {
	Subject string
	Profile *OTPProfile
}
