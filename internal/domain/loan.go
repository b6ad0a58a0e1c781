package domain

import "time"

// Loan is a child record of a Customer. IMEI is globally unique — one locked
// device can back at most one loan.
type Loan struct {
	LoanID       string    `json:"id" dynamodbav:"loan_id"`
	CustomerID   string    `json:"customerId" dynamodbav:"customer_id"`
	CreatedBy    string    `json:"createdBy" dynamodbav:"created_by"`
	IMEI         string    `json:"imei" dynamodbav:"imei"`
	DeviceModel  string    `json:"deviceModel" dynamodbav:"device_model"`
	LoanAmount   float64   `json:"loanAmount" dynamodbav:"loan_amount"`
	DownPayment  float64   `json:"downPayment" dynamodbav:"down_payment"`
	TenureMonths int       `json:"tenureMonths" dynamodbav:"tenure_months"`
	EMIAmount    float64   `json:"emiAmount" dynamodbav:"emi_amount"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateLoanRequest struct {
	IMEI         string  `json:"imei" validate:"required"`
	DeviceModel  string  `json:"deviceModel" validate:"required"`
	LoanAmount   float64 `json:"loanAmount" validate:"required,gt=0"`
	DownPayment  float64 `json:"downPayment" validate:"gte=0"`
	TenureMonths int     `json:"tenureMonths" validate:"required,gt=0"`
	EMIAmount    float64 `json:"emiAmount" validate:"required,gt=0"`
}

type UpdateLoanRequest struct {
	DeviceModel  *string  `json:"deviceModel"`
	LoanAmount   *float64 `json:"loanAmount"`
	DownPayment  *float64 `json:"downPayment"`
	TenureMonths *int     `json:"tenureMonths"`
	EMIAmount    *float64 `json:"emiAmount"`
}
