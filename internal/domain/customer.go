package domain

import "time"

// Customer is unique per (mobile number, owner). It is created only through
// the OTP flow: SendOTP upserts it unverified, VerifyOTP flips it to verified
// and clears the challenge fields.
type Customer struct {
	CustomerID   string     `json:"id" dynamodbav:"customer_id"`
	CustomerName string     `json:"customerName" dynamodbav:"customer_name"`
	MobileNumber string     `json:"customerMobileNumber" dynamodbav:"mobile_number"`
	Address      string     `json:"address" dynamodbav:"address"`
	CreatedBy    string     `json:"createdBy" dynamodbav:"created_by"`
	OTP          *string    `json:"-" dynamodbav:"otp,omitempty"`
	OTPExpires   *int64     `json:"-" dynamodbav:"otp_expires,omitempty"`
	IsVerified   bool       `json:"isVerified" dynamodbav:"is_verified"`
	KYC          KYC        `json:"kyc" dynamodbav:"kyc"`
	CreatedAt    time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated" dynamodbav:"updated_at"`
}

// KYC holds the document capture state for a customer. Photo fields are
// object-storage location strings produced by the upload step.
type KYC struct {
	Aadhaar      Aadhaar      `json:"aadhaar" dynamodbav:"aadhaar"`
	PAN          PAN          `json:"pan" dynamodbav:"pan"`
	BankPassbook BankPassbook `json:"bankPassbook" dynamodbav:"bank_passbook"`
}

type Aadhaar struct {
	Number     string `json:"number,omitempty" dynamodbav:"number"`
	FrontPhoto string `json:"frontPhoto,omitempty" dynamodbav:"front_photo"`
	BackPhoto  string `json:"backPhoto,omitempty" dynamodbav:"back_photo"`
}

type PAN struct {
	Number string `json:"number,omitempty" dynamodbav:"number"`
	Photo  string `json:"photo,omitempty" dynamodbav:"photo"`
}

type BankPassbook struct {
	Photo string `json:"photo,omitempty" dynamodbav:"photo"`
}

type SendOTPRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	MobileNumber string `json:"customerMobileNumber" validate:"required"`
	Address      string `json:"address" validate:"required"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"customerMobileNumber" validate:"required"`
	OTP          string `json:"otp" validate:"required"`
}

type UpdateCustomerRequest struct {
	CustomerName *string `json:"customerName"`
	Address      *string `json:"address"`
}
