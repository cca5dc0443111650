// Package checkout drives one payment for the running bill.
//
// The flow is Selecting -> CollectingDetails -> (AwaitingConfirmation, card only) ->
// Submitting -> Succeeded, with Failed as a resumable detour: a failed submission remembers
// the status it came from and accepts the same input again. The machine never holds its
// lock while talking to the gateway, running the guard, or invoking the completion callback.
package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway is the remote side of a card payment.
type Gateway interface {
	SubmitCard(ctx context.Context, payment CardPayment) error
	VerifyCardOTP(ctx context.Context, verification OTPVerification) error
}

type CardPayment struct {
	CardType   CardType
	CardNumber string
	Validity   string
	CVV        string
	Email      string
}

type OTPVerification struct {
	OTP   string
	Email string
}

// Result describes a succeeded checkout.
type Result struct {
	SessionID   uuid.UUID
	Method      Method
	Amount      decimal.Decimal
	CardType    CardType
	MaskedCard  string
	UPIID       string
	CompletedAt time.Time
}

type Option func(*Machine)

func WithGateway(g Gateway) Option {
	return func(m *Machine) { m.gateway = g }
}

// WithGuard registers a check run before every submission; a non-nil error aborts it.
func WithGuard(guard func() error) Option {
	return func(m *Machine) { m.guard = guard }
}

func WithOnComplete(fn func(ctx context.Context, res Result)) Option {
	return func(m *Machine) { m.onComplete = fn }
}

// WithEmail sets the address the backend sends card OTPs to.
func WithEmail(email string) Option {
	return func(m *Machine) { m.email = email }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

type Machine struct {
	mu sync.Mutex

	id     uuid.UUID
	amount decimal.Decimal
	email  string

	status    Status
	resume    Status
	method    Method
	cancelled bool

	card    CardDetails
	upiID   string
	lastErr string

	gateway    Gateway
	guard      func() error
	onComplete func(ctx context.Context, res Result)
	logger     *slog.Logger
}

func New(amount decimal.Decimal, opts ...Option) *Machine {
	m := &Machine{
		id:     uuid.New(),
		amount: amount,
		status: StatusSelecting,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With(slog.String("checkoutId", m.id.String()))

	return m
}

func (m *Machine) ID() uuid.UUID {
	return m.id
}

func (m *Machine) Amount() decimal.Decimal {
	return m.amount
}

func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

func (m *Machine) Method() Method {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.method
}

// Closed reports whether the session succeeded or was cancelled.
func (m *Machine) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open() != nil
}

// SelectMethod picks or switches the payment method. Switching restarts the flow at
// Selecting and drops anything entered for the previous method.
func (m *Machine) SelectMethod(method Method) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.open(); err != nil {
		return err
	}

	if !method.Valid() {
		return &ValidationError{Field: "method", Reason: "must be one of CASH, CARD, UPI"}
	}

	switch m.status {
	case StatusSelecting, StatusCollectingDetails, StatusAwaitingConfirmation, StatusFailed:
	case StatusSubmitting:
		return ErrBusy
	default:
		return &TransitionError{Action: "select a payment method", Status: m.status}
	}

	m.transition(StatusSelecting)
	m.card = CardDetails{}
	m.upiID = ""
	m.lastErr = ""
	m.resume = ""
	m.method = method
	m.transition(StatusCollectingDetails)

	return nil
}

// PayCash confirms a cash payment; there is nothing to collect.
func (m *Machine) PayCash(ctx context.Context) (Result, error) {
	if err := m.begin(ctx, "pay in cash", MethodCash, StatusCollectingDetails, nil); err != nil {
		return Result{}, err
	}

	return m.succeed(ctx), nil
}

// SubmitCard validates the card form and sends it to the gateway, which triggers an OTP.
func (m *Machine) SubmitCard(ctx context.Context, card CardDetails) error {
	err := m.begin(ctx, "submit card details", MethodCard, StatusCollectingDetails, func() error {
		m.card = card
		return card.Validate()
	})
	if err != nil {
		return err
	}

	if m.gateway == nil {
		m.fail(StatusCollectingDetails, ErrNoGateway)
		return ErrNoGateway
	}

	payment := CardPayment{
		CardType:   DetectCardType(card.Number),
		CardNumber: Digits(card.Number),
		Validity:   card.Expiry,
		CVV:        card.CVV,
		Email:      m.email,
	}

	if err := m.gateway.SubmitCard(ctx, payment); err != nil {
		m.fail(StatusCollectingDetails, err)
		return err
	}

	m.mu.Lock()
	m.lastErr = ""
	m.resume = ""
	m.transition(StatusAwaitingConfirmation)
	m.mu.Unlock()

	return nil
}

// SubmitOTP verifies the card OTP and completes the payment.
func (m *Machine) SubmitOTP(ctx context.Context, otp string) (Result, error) {
	err := m.begin(ctx, "submit an OTP", MethodCard, StatusAwaitingConfirmation, func() error {
		return ValidateOTP(otp)
	})
	if err != nil {
		return Result{}, err
	}

	if m.gateway == nil {
		m.fail(StatusAwaitingConfirmation, ErrNoGateway)
		return Result{}, ErrNoGateway
	}

	if err := m.gateway.VerifyCardOTP(ctx, OTPVerification{OTP: otp, Email: m.email}); err != nil {
		m.fail(StatusAwaitingConfirmation, err)
		return Result{}, err
	}

	return m.succeed(ctx), nil
}

func (m *Machine) SubmitUPI(ctx context.Context, upiID string) (Result, error) {
	err := m.begin(ctx, "submit a UPI id", MethodUPI, StatusCollectingDetails, func() error {
		m.upiID = upiID
		return ValidateUPI(upiID)
	})
	if err != nil {
		return Result{}, err
	}

	return m.succeed(ctx), nil
}

// Cancel discards the session. An in-flight submission cannot be cancelled.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.open(); err != nil {
		return err
	}

	if m.status == StatusSubmitting {
		return ErrBusy
	}

	m.cancelled = true
	m.logger.Info("Checkout cancelled", slog.String("status", m.status.String()))

	return nil
}

func (m *Machine) View() models.CheckoutView {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := models.CheckoutView{
		ID:        m.id,
		Method:    m.method.String(),
		Status:    m.status.String(),
		Amount:    m.amount,
		LastError: m.lastErr,
	}

	if m.status == StatusFailed {
		view.ResumeStatus = m.resume.String()
	}

	if m.method == MethodCard && m.card.Number != "" {
		view.CardType = string(DetectCardType(m.card.Number))
		view.MaskedCard = MaskCardNumber(m.card.Number)
	}

	if m.method == MethodUPI {
		view.UPIID = m.upiID
	}

	return view
}

// begin checks that the session accepts the action, runs the field check, and moves to
// Submitting. A failed field check leaves the session at the expected status.
func (m *Machine) begin(ctx context.Context, action string, method Method, expected Status, check func() error) error {
	m.mu.Lock()

	if err := m.open(); err != nil {
		m.mu.Unlock()
		return err
	}

	if m.status == StatusSubmitting {
		m.mu.Unlock()
		return ErrBusy
	}

	if m.method != method || !m.at(expected) {
		err := &TransitionError{Action: action, Status: m.status, Method: m.method}
		m.mu.Unlock()
		return err
	}

	if check != nil {
		if err := check(); err != nil {
			m.lastErr = err.Error()
			m.resume = ""
			m.transition(expected)
			m.mu.Unlock()
			return err
		}
	}

	previous := m.status
	m.transition(StatusSubmitting)
	m.mu.Unlock()

	if m.guard != nil {
		if err := m.guard(); err != nil {
			m.mu.Lock()
			m.lastErr = err.Error()
			m.transition(previous)
			m.mu.Unlock()
			return err
		}
	}

	m.logger.InfoContext(ctx, "Submitting payment step", slog.String("method", method.String()), slog.String("from", expected.String()))

	return nil
}

func (m *Machine) fail(resume Status, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastErr = err.Error()
	m.resume = resume
	m.transition(StatusFailed)

	m.logger.Warn("Payment step failed", slog.String("method", m.method.String()), slog.String("resume", resume.String()), slog.String("error", err.Error()))
}

func (m *Machine) succeed(ctx context.Context) Result {
	m.mu.Lock()

	m.lastErr = ""
	m.resume = ""
	m.transition(StatusSucceeded)

	res := Result{
		SessionID:   m.id,
		Method:      m.method,
		Amount:      m.amount,
		CompletedAt: time.Now(),
	}

	switch m.method {
	case MethodCard:
		res.CardType = DetectCardType(m.card.Number)
		res.MaskedCard = MaskCardNumber(m.card.Number)
	case MethodUPI:
		res.UPIID = m.upiID
	}

	// card data is not needed past this point
	m.card = CardDetails{}

	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Payment succeeded", slog.String("method", res.Method.String()), slog.String("amount", res.Amount.StringFixed(2)))

	if m.onComplete != nil {
		m.onComplete(ctx, res)
	}

	return res
}

// at reports whether the session is at s, or failed while at s.
func (m *Machine) at(s Status) bool {
	return m.status == s || (m.status == StatusFailed && m.resume == s)
}

func (m *Machine) open() error {
	if m.cancelled || m.status.IsTerminal() {
		return ErrClosed
	}

	return nil
}

func (m *Machine) transition(to Status) {
	if m.status != to {
		m.logger.Debug("Checkout status changed", slog.String("from", m.status.String()), slog.String("to", to.String()))
	}

	m.status = to
}
