package models

import (
	"time"
)

// OTP is the single live one-time password of a contact
type OTP struct {
	Contact   string    `json:"contact" db:"contact"`
	CodeHash  string    `json:"-" db:"code_hash"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Attempts  int       `json:"attempts" db:"attempts"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RequestOTPRequest asks for a code to be issued to a contact
type RequestOTPRequest struct {
	Contact string `json:"contact"`
}

// OTPRequestResult reports an issued code. OTP is only set outside production.
type OTPRequestResult struct {
	Contact   string    `json:"contact"`
	ExpiresAt time.Time `json:"expiresAt"`
	OTP       string    `json:"otp,omitempty"`
}

// VerifyOTPRequest exchanges a code for an access token
type VerifyOTPRequest struct {
	Contact      string `json:"contact"`
	Code         string `json:"code"`
	DisplayName  string `json:"displayName,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// AuthResponse is returned after a successful verification
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
