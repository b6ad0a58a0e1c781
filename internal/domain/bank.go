package domain

import "time"

// Bank is a customer's bank account record.
type Bank struct {
	BankID            string    `json:"id" dynamodbav:"bank_id"`
	CustomerID        string    `json:"customerId" dynamodbav:"customer_id"`
	CreatedBy         string    `json:"createdBy" dynamodbav:"created_by"`
	BankName          string    `json:"bankName" dynamodbav:"bank_name"`
	AccountNumber     string    `json:"accountNumber" dynamodbav:"account_number"`
	AccountHolderName string    `json:"accountHolderName" dynamodbav:"account_holder_name"`
	IFSCCode          string    `json:"ifscCode" dynamodbav:"ifsc_code"`
	CreatedAt         time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateBankRequest struct {
	BankName          string `json:"bankName" validate:"required"`
	AccountNumber     string `json:"accountNumber" validate:"required"`
	AccountHolderName string `json:"accountHolderName" validate:"required"`
	IFSCCode          string `json:"ifscCode" validate:"required"`
}

type UpdateBankRequest struct {
	BankName          *string `json:"bankName"`
	AccountNumber     *string `json:"accountNumber"`
	AccountHolderName *string `json:"accountHolderName"`
	IFSCCode          *string `json:"ifscCode"`
}
