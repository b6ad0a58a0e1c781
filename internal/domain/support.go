package domain

import "time"

// SupportDocKey is the fixed document key for the singleton support record.
// Keying on a well-known id (instead of scanning for "the one row") lets the
// store's conditional put arbitrate concurrent first-create attempts.
const SupportDocKey = "company_support"

// CompanySupport is the singleton contact-info record.
type CompanySupport struct {
	SupportID string    `json:"id" dynamodbav:"support_id"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	Email     string    `json:"email" dynamodbav:"email"`
	WhatsApp  string    `json:"whatsapp,omitempty" dynamodbav:"whatsapp"`
	Address   string    `json:"address,omitempty" dynamodbav:"address"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateSupportRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
}

type UpdateSupportRequest struct {
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	WhatsApp *string `json:"whatsapp"`
	Address  *string `json:"address"`
}
