package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an app account. The record is keyed by the identity provider's
// user id; PhoneOTP holds login-challenge internals and never serializes.
type User struct {
	UserID             string    `json:"id" dynamodbav:"user_id"`
	Name               string    `json:"name" dynamodbav:"name"`
	Email              string    `json:"email" dynamodbav:"email"`
	Phone              string    `json:"phone,omitempty" dynamodbav:"phone"`
	Role               string    `json:"role" dynamodbav:"role"`
	IsProfileCompleted bool      `json:"isProfileCompleted" dynamodbav:"is_profile_completed"`
	PhoneOTP           *PhoneOTP `json:"-" dynamodbav:"phone_otp,omitempty"`
	CreatedAt          time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt          time.Time `json:"updated" dynamodbav:"updated_at"`
}

// PhoneOTP is the stored login challenge: hashed code plus attempt counter.
type PhoneOTP struct {
	CodeHash  string `json:"-" dynamodbav:"code_hash"`
	Attempts  int    `json:"-" dynamodbav:"attempts"`
	ExpiresAt int64  `json:"-" dynamodbav:"expires_at"`
}

type CompleteProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}
