package domain

import "time"

// Address is a customer's address record.
type Address struct {
	AddressID   string    `json:"id" dynamodbav:"address_id"`
	CustomerID  string    `json:"customerId" dynamodbav:"customer_id"`
	CreatedBy   string    `json:"createdBy" dynamodbav:"created_by"`
	AddressLine string    `json:"addressLine" dynamodbav:"address_line"`
	City        string    `json:"city" dynamodbav:"city"`
	State       string    `json:"state" dynamodbav:"state"`
	Pincode     string    `json:"pincode" dynamodbav:"pincode"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateAddressRequest struct {
	AddressLine string `json:"addressLine" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Pincode     string `json:"pincode" validate:"required"`
}

type UpdateAddressRequest struct {
	AddressLine *string `json:"addressLine"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
}
