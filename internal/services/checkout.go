package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/checkout"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/metrics"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/google/uuid"
)

// PaymentBackend is the card side of the billing backend.
type PaymentBackend interface {
	SubmitCardPayment(ctx context.Context, sessionID uuid.UUID, req billingapi.CardPaymentRequest) error
	VerifyCardOTP(ctx context.Context, sessionID uuid.UUID, req billingapi.CardOTPRequest) error
}

type CheckoutService interface {
	Begin(ctx context.Context, sessionID uuid.UUID, req *models.BeginCheckoutRequest) (models.CheckoutView, error)
	Get(ctx context.Context, sessionID uuid.UUID) (models.CheckoutView, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
	SelectMethod(ctx context.Context, sessionID uuid.UUID, req *models.SelectMethodRequest) (models.CheckoutView, error)
	PayCash(ctx context.Context, sessionID uuid.UUID) (models.CheckoutView, error)
	SubmitCard(ctx context.Context, sessionID uuid.UUID, req *models.CardDetailsRequest) (models.CheckoutView, error)
	SubmitOTP(ctx context.Context, sessionID uuid.UUID, req *models.OTPRequest) (models.CheckoutView, error)
	SubmitUPI(ctx context.Context, sessionID uuid.UUID, req *models.UPIRequest) (models.CheckoutView, error)
}

type checkoutService struct {
	terminals *terminal.Registry
	payments  PaymentBackend
	receipts  ReceiptStore
}

func NewCheckoutService(terminals *terminal.Registry, payments PaymentBackend, receipts ReceiptStore) CheckoutService {
	return &checkoutService{terminals: terminals, payments: payments, receipts: receipts}
}

// cardGateway binds the backend to one terminal session.
type cardGateway struct {
	backend   PaymentBackend
	sessionID uuid.UUID
}

func (g cardGateway) SubmitCard(ctx context.Context, p checkout.CardPayment) error {
	return g.backend.SubmitCardPayment(ctx, g.sessionID, billingapi.CardPaymentRequest{
		CardType:     string(p.CardType),
		CardNumber:   p.CardNumber,
		CardValidity: p.Validity,
		CVVNumber:    p.CVV,
		Email:        p.Email,
	})
}

func (g cardGateway) VerifyCardOTP(ctx context.Context, v checkout.OTPVerification) error {
	return g.backend.VerifyCardOTP(ctx, g.sessionID, billingapi.CardOTPRequest{
		EnteredOTP: v.OTP,
		Email:      v.Email,
	})
}

func (s *checkoutService) Begin(ctx context.Context, sessionID uuid.UUID, req *models.BeginCheckoutRequest) (models.CheckoutView, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	logger := middleware.LoggerFromContext(ctx)

	m, err := t.BeginCheckout(req.Customer, s.journal(t),
		checkout.WithGateway(cardGateway{backend: s.payments, sessionID: sessionID}),
		checkout.WithLogger(logger),
	)
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	logger.Info("Checkout started", slog.String("checkoutId", m.ID().String()), slog.String("amount", m.Amount().StringFixed(2)))

	return t.CheckoutView()
}

func (s *checkoutService) Get(ctx context.Context, sessionID uuid.UUID) (models.CheckoutView, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	view, err := t.CheckoutView()
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	return view, nil
}

func (s *checkoutService) Cancel(ctx context.Context, sessionID uuid.UUID) error {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return appError(err)
	}

	m, err := t.Checkout()
	if err != nil {
		return appError(err)
	}

	method := m.Method().String()

	if err := t.CancelCheckout(); err != nil {
		return appError(err)
	}

	metrics.ObserveCheckout(method, metrics.OutcomeCancelled)

	return nil
}

func (s *checkoutService) SelectMethod(ctx context.Context, sessionID uuid.UUID, req *models.SelectMethodRequest) (models.CheckoutView, error) {
	return s.step(ctx, sessionID, func(m *checkout.Machine) error {
		return m.SelectMethod(checkout.Method(req.Method))
	})
}

func (s *checkoutService) PayCash(ctx context.Context, sessionID uuid.UUID) (models.CheckoutView, error) {
	return s.step(ctx, sessionID, func(m *checkout.Machine) error {
		_, err := m.PayCash(ctx)
		return err
	})
}

func (s *checkoutService) SubmitCard(ctx context.Context, sessionID uuid.UUID, req *models.CardDetailsRequest) (models.CheckoutView, error) {
	return s.step(ctx, sessionID, func(m *checkout.Machine) error {
		return m.SubmitCard(ctx, checkout.CardDetails{
			Number: req.CardNumber,
			Holder: req.CardholderName,
			Expiry: req.Expiry,
			CVV:    req.CVV,
		})
	})
}

func (s *checkoutService) SubmitOTP(ctx context.Context, sessionID uuid.UUID, req *models.OTPRequest) (models.CheckoutView, error) {
	return s.step(ctx, sessionID, func(m *checkout.Machine) error {
		_, err := m.SubmitOTP(ctx, req.OTP)
		return err
	})
}

func (s *checkoutService) SubmitUPI(ctx context.Context, sessionID uuid.UUID, req *models.UPIRequest) (models.CheckoutView, error) {
	return s.step(ctx, sessionID, func(m *checkout.Machine) error {
		_, err := m.SubmitUPI(ctx, req.UPIID)
		return err
	})
}

// step runs one action on the terminal's checkout and returns the resulting view. An expired
// backend session also closes the terminal.
func (s *checkoutService) step(ctx context.Context, sessionID uuid.UUID, action func(m *checkout.Machine) error) (models.CheckoutView, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	m, err := t.Checkout()
	if err != nil {
		return models.CheckoutView{}, appError(err)
	}

	if err := action(m); err != nil {
		logger := middleware.LoggerFromContext(ctx)

		if stderrors.Is(err, billingapi.ErrSessionExpired) {
			logger.Warn("Backend session expired during checkout, closing terminal")
			s.terminals.Remove(sessionID)
		}

		if m.Status() == checkout.StatusFailed {
			metrics.ObserveCheckout(m.Method().String(), metrics.OutcomeFailed)
		}

		logger.Warn("Checkout step refused", slog.String("status", m.Status().String()), slog.String("error", err.Error()))

		return models.CheckoutView{}, appError(err)
	}

	return t.CheckoutView()
}

// journal stores the receipt of a succeeded checkout. A journal failure does not undo the sale.
func (s *checkoutService) journal(t *terminal.Terminal) func(ctx context.Context, c terminal.Completion) {
	return func(ctx context.Context, c terminal.Completion) {

		logger := middleware.LoggerFromContext(ctx)
		ctx = context.WithoutCancel(ctx)

		receiptID := uuid.New()
		receipt := &models.Receipt{
			ID:            receiptID,
			InvoiceNumber: invoice.NewNumber(c.Result.CompletedAt, receiptID),
			SessionID:     c.SessionID,
			EmployeeCode:  c.Staff.EmployeeCode,
			Method:        c.Result.Method.String(),
			CardType:      string(c.Result.CardType),
			PaymentRef:    paymentRef(c.Result),
			Items:         c.Bill.Items,
			Customer:      c.Customer,
			Total:         c.Result.Amount,
			CreatedAt:     c.Result.CompletedAt,
		}

		if err := s.receipts.CreateReceipt(ctx, receipt); err != nil {
			logger.Error("Failed to journal receipt", slog.String("invoiceNumber", receipt.InvoiceNumber), slog.Any("error", err))
			metrics.ObserveCheckout(receipt.Method, metrics.OutcomeJournalFailed)
			return
		}

		t.SetReceipt(receiptID)
		metrics.ObserveCheckout(receipt.Method, metrics.OutcomeSucceeded)

		logger.Info("Sale completed",
			slog.String("receiptId", receiptID.String()),
			slog.String("invoiceNumber", receipt.InvoiceNumber),
			slog.String("method", receipt.Method),
			slog.String("total", receipt.Total.StringFixed(2)))
	}
}

func paymentRef(res checkout.Result) string {
	switch res.Method {
	case checkout.MethodCard:
		return res.MaskedCard
	case checkout.MethodUPI:
		return res.UPIID
	default:
		return ""
	}
}
