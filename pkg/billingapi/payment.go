package billingapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type CardPaymentRequest struct {
	CardType     string `json:"cardType"`
	CardNumber   string `json:"cardNumber"`
	CardValidity string `json:"cardValidity"`
	CVVNumber    string `json:"cvvNumber"`
	Email        string `json:"email"`
}

type CardOTPRequest struct {
	EnteredOTP string `json:"enteredOtp"`
	Email      string `json:"email"`
}

// SubmitCardPayment starts a card payment; on success the backend mails an OTP to req.Email.
func (c *Client) SubmitCardPayment(ctx context.Context, sessionID uuid.UUID, req CardPaymentRequest) error {
	return c.do(ctx, call{
		endpoint: "/payment/cardPayment",
		method:   http.MethodPost,
		body:     req,
		session:  sessionID,
	})
}

func (c *Client) VerifyCardOTP(ctx context.Context, sessionID uuid.UUID, req CardOTPRequest) error {
	return c.do(ctx, call{
		endpoint: "/payment/verifyCardOtp",
		method:   http.MethodPost,
		body:     req,
		session:  sessionID,
	})
}

// Ping reports whether the backend answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}

	drain(res)

	return nil
}
