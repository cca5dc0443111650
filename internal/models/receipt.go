package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	Name  string `json:"name,omitempty" validate:"omitempty,max=120"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// Receipt is a completed sale as journaled after a successful checkout.
type Receipt struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SessionID     uuid.UUID       `json:"session_id"`
	EmployeeCode  string          `json:"employee_code"`
	Method        string          `json:"method"`
	CardType      string          `json:"card_type,omitempty"`
	PaymentRef    string          `json:"payment_ref,omitempty"`
	Items         []LineItem      `json:"items"`
	Customer      Customer        `json:"customer"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ReceiptListResponse struct {
	Receipts []*Receipt `json:"receipts"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Size     int        `json:"size"`
}

type EmailReceiptRequest struct {
	Email string `json:"email" validate:"required,email"`
}
