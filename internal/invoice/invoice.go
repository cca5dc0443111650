// Package invoice turns a bill snapshot and its payment into a printable invoice.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seller is printed at the top of every invoice.
type Seller struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}

type Payment struct {
	Method     string
	CardType   string
	MaskedCard string
	UPIID      string
}

// Input is everything an invoice is built from. A zero Amount means "use the subtotal".
type Input struct {
	Number   string
	IssuedAt time.Time
	Seller   Seller
	Cashier  string
	Customer models.Customer
	Payment  Payment
	Items    []models.LineItem
	Amount   decimal.Decimal
	Preview  bool
}

type Line struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type Invoice struct {
	Number        string
	IssuedAt      time.Time
	Seller        Seller
	Cashier       string
	Customer      models.Customer
	Payment       Payment
	Lines         []Line
	ItemCount     int
	TotalQuantity int
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	Preview       bool
}

// Build computes line totals, the aggregate quantity and the subtotal. It does not touch the input.
func Build(in Input) Invoice {
	inv := Invoice{
		Number:   in.Number,
		IssuedAt: in.IssuedAt,
		Seller:   in.Seller,
		Cashier:  in.Cashier,
		Customer: in.Customer,
		Payment:  in.Payment,
		Lines:    make([]Line, 0, len(in.Items)),
		Subtotal: decimal.Zero,
		Preview:  in.Preview,
	}

	for _, item := range in.Items {
		total := item.LineTotal()

		inv.Lines = append(inv.Lines, Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     total,
		})

		inv.TotalQuantity += item.Quantity
		inv.Subtotal = inv.Subtotal.Add(total)
	}

	inv.ItemCount = len(inv.Lines)

	inv.Total = in.Amount
	if in.Amount.IsZero() {
		inv.Total = inv.Subtotal
	}

	return inv
}

// NewNumber derives a human readable invoice number such as HM-20261016-1A2B3C4D.
func NewNumber(issuedAt time.Time, id uuid.UUID) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("HM-%s-%s", issuedAt.Format("20060102"), short)
}

// PaymentLine is the one-line description used on both renderings, e.g. "CARD VISA **** **** **** 1111".
func (inv Invoice) PaymentLine() string {
	parts := []string{inv.Payment.Method}

	if inv.Payment.CardType != "" {
		parts = append(parts, inv.Payment.CardType)
	}

	if inv.Payment.MaskedCard != "" {
		parts = append(parts, inv.Payment.MaskedCard)
	}

	if inv.Payment.UPIID != "" {
		parts = append(parts, inv.Payment.UPIID)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
