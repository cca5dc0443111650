package checkout

import (
	"regexp"
	"strings"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3}$`)
	upiPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
	otpPattern    = regexp.MustCompile(`^[0-9]{4}$`)
)

const cardNumberDigits = 16

// Digits strips everything but 0-9, so "4111 1111-1111 1111" becomes "4111111111111111".
func Digits(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func ValidateCardNumber(number string) error {
	if len(Digits(number)) != cardNumberDigits {
		return &ValidationError{Field: "card_number", Reason: "must contain 16 digits"}
	}

	return nil
}

func ValidateCardholder(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "cardholder_name", Reason: "is required"}
	}

	return nil
}

// ValidateExpiry checks the MM/YY shape only; it does not compare against today's date.
func ValidateExpiry(expiry string) error {
	if !expiryPattern.MatchString(expiry) {
		return &ValidationError{Field: "expiry", Reason: "must be MM/YY"}
	}

	return nil
}

func ValidateCVV(cvv string) error {
	if !cvvPattern.MatchString(cvv) {
		return &ValidationError{Field: "cvv", Reason: "must be 3 digits"}
	}

	return nil
}

func ValidateUPI(id string) error {
	if !upiPattern.MatchString(id) {
		return &ValidationError{Field: "upi_id", Reason: "must look like handle@bank"}
	}

	return nil
}

func ValidateOTP(otp string) error {
	if !otpPattern.MatchString(otp) {
		return &ValidationError{Field: "otp", Reason: "must be 4 digits"}
	}

	return nil
}

// DetectCardType guesses the network from the first digit. Display only: it is not a BIN
// lookup and says nothing about whether the card is genuine.
func DetectCardType(number string) CardType {
	digits := Digits(number)
	if digits == "" {
		return CardUnknown
	}

	switch digits[0] {
	case '3':
		return CardAmex
	case '4':
		return CardVisa
	case '5':
		return CardMastercard
	case '6', '8':
		return CardRupay
	default:
		return CardUnknown
	}
}

// MaskCardNumber keeps the last four digits.
func MaskCardNumber(number string) string {
	digits := Digits(number)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return "**** **** **** " + digits[len(digits)-4:]
}

// CardDetails as typed on the card form.
type CardDetails struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

func (c CardDetails) Validate() error {
	if err := ValidateCardNumber(c.Number); err != nil {
		return err
	}

	if err := ValidateCardholder(c.Holder); err != nil {
		return err
	}

	if err := ValidateExpiry(c.Expiry); err != nil {
		return err
	}

	return ValidateCVV(c.CVV)
}
