package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutView struct {
	ID         uuid.UUID       `json:"id"`
	Method     string          `json:"method,omitempty"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	CardType   string          `json:"card_type,omitempty"`
	MaskedCard string          `json:"masked_card,omitempty"`
	UPIID      string          `json:"upi_id,omitempty"`
	LastError  string          `json:"last_error,omitempty"`
	ReceiptID  *uuid.UUID      `json:"receipt_id,omitempty"`
	// ResumeStatus is set while FAILED: the step a retry re-enters.
	ResumeStatus string `json:"resume_status,omitempty"`
}

type BeginCheckoutRequest struct {
	Customer Customer `json:"customer"`
}

type SelectMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=CASH CARD UPI"`
}

// CardDetailsRequest is checked by the checkout state machine, not by struct tags, so that a
// bad field keeps the session in CollectingDetails with the reason recorded.
type CardDetailsRequest struct {
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
}

type OTPRequest struct {
	OTP string `json:"otp"`
}

type UPIRequest struct {
	UPIID string `json:"upi_id"`
}
