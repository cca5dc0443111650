package terminal_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/checkout"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) SubmitCard(ctx context.Context, payment checkout.CardPayment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockGateway) VerifyCardOTP(ctx context.Context, verification checkout.OTPVerification) error {
	return m.Called(ctx, verification).Error(0)
}

// blockingGateway holds VerifyCardOTP until release is closed.
type blockingGateway struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGateway) SubmitCard(context.Context, checkout.CardPayment) error {
	return nil
}

func (g *blockingGateway) VerifyCardOTP(context.Context, checkout.OTPVerification) error {
	close(g.entered)
	<-g.release

	return nil
}

var page = &models.ProductPage{
	Products: []models.Product{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("10.00")},
		{ID: 2, Name: "B", Price: decimal.RequireFromString("4.50")},
	},
	PageSize: 20,
}

func newTerminal() *terminal.Terminal {
	t := terminal.New(uuid.New(), terminal.Staff{EmployeeCode: "EMP042", Email: "asha@hypermart.in", Role: "CASHIER"})
	t.ShowPage(3, 7, page)

	return t
}

func TestAddProduct(t *testing.T) {
	t.Run("Success - Repeated Add Merges", func(t *testing.T) {
		// Arrange
		term := newTerminal()

		// Act
		_, err1 := term.AddProduct(1)
		item, err2 := term.AddProduct(1)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, 2, item.Quantity)

		bill := term.Bill()
		assert.Equal(t, 1, bill.ItemCount)
		assert.Equal(t, "20.00", bill.Total.StringFixed(2))
	})

	t.Run("Failure - Product Not On Loaded Page", func(t *testing.T) {
		term := newTerminal()

		_, err := term.AddProduct(99)

		assert.ErrorIs(t, err, terminal.ErrProductNotLoaded)
		assert.Equal(t, 0, term.Bill().ItemCount)
	})

	t.Run("Failure - Category Change Drops Loaded Page", func(t *testing.T) {
		term := newTerminal()

		term.SelectCategory(4)
		_, err := term.AddProduct(1)

		assert.ErrorIs(t, err, terminal.ErrProductNotLoaded)
		assert.Equal(t, int64(4), term.Selection().CategoryID)
		assert.Nil(t, term.Selection().Page)
	})
}

func TestCardCheckoutClearsBill(t *testing.T) {
	ctx := context.Background()

	// Arrange
	term := newTerminal()
	_, _ = term.AddProduct(1)
	_, _ = term.AddProduct(1)

	gw := new(mockGateway)
	gw.On("SubmitCard", ctx, mock.MatchedBy(func(p checkout.CardPayment) bool {
		return p.Email == "asha@hypermart.in" && p.CardType == checkout.CardVisa
	})).Return(nil)
	gw.On("VerifyCardOTP", ctx, checkout.OTPVerification{OTP: "4321", Email: "asha@hypermart.in"}).Return(nil)

	var completions []terminal.Completion

	m, err := term.BeginCheckout(models.Customer{Name: "Ravi"}, func(_ context.Context, c terminal.Completion) {
		completions = append(completions, c)
	}, checkout.WithGateway(gw))
	require.NoError(t, err)

	// Act
	require.NoError(t, m.SelectMethod(checkout.MethodCard))
	require.NoError(t, m.SubmitCard(ctx, checkout.CardDetails{Number: "4111111111111111", Holder: "Ravi", Expiry: "07/25", CVV: "123"}))
	afterCard := m.Status()
	_, err = m.SubmitOTP(ctx, "4321")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, checkout.StatusAwaitingConfirmation, afterCard)
	assert.Equal(t, checkout.StatusSucceeded, m.Status())
	assert.True(t, term.Bill().Total.IsZero(), "bill must be cleared after success")

	require.Len(t, completions, 1)
	assert.Equal(t, "20.00", completions[0].Bill.Total.StringFixed(2))
	assert.Equal(t, 2, completions[0].Bill.Items[0].Quantity)
	assert.Equal(t, "Ravi", completions[0].Customer.Name)
	assert.Equal(t, "EMP042", completions[0].Staff.EmployeeCode)

	receiptID := uuid.New()
	term.SetReceipt(receiptID)
	view, err := term.CheckoutView()
	require.NoError(t, err)
	assert.Equal(t, "SUCCEEDED", view.Status)
	assert.Equal(t, &receiptID, view.ReceiptID)
}

func TestInvalidUPILeavesBillUntouched(t *testing.T) {
	ctx := context.Background()

	// Arrange
	term := newTerminal()
	_, _ = term.AddProduct(1)

	m, err := term.BeginCheckout(models.Customer{}, nil)
	require.NoError(t, err)
	require.NoError(t, m.SelectMethod(checkout.MethodUPI))

	// Act
	_, err = m.SubmitUPI(ctx, "abc")

	// Assert
	var vErr *checkout.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, checkout.StatusCollectingDetails, m.Status())
	assert.Equal(t, "10.00", term.Bill().Total.StringFixed(2))
}

func TestBillChangedDuringCheckout(t *testing.T) {
	ctx := context.Background()

	// Arrange
	term := newTerminal()
	_, _ = term.AddProduct(1)

	m, err := term.BeginCheckout(models.Customer{}, nil)
	require.NoError(t, err)
	require.NoError(t, m.SelectMethod(checkout.MethodCash))

	_, err = term.AddProduct(2)
	require.NoError(t, err, "the bill stays open while checking out")

	// Act
	_, payErr := m.PayCash(ctx)

	restarted, err := term.BeginCheckout(models.Customer{}, nil)
	require.NoError(t, err)
	require.NoError(t, restarted.SelectMethod(checkout.MethodCash))
	res, retryErr := restarted.PayCash(ctx)

	// Assert
	assert.ErrorIs(t, payErr, terminal.ErrCartChanged)
	assert.True(t, m.Closed(), "the stale checkout is cancelled on restart")
	require.NoError(t, retryErr)
	assert.Equal(t, "14.50", res.Amount.StringFixed(2))
}

func TestAddDuringCardSubmission(t *testing.T) {
	ctx := context.Background()

	// Arrange
	term := newTerminal()
	_, _ = term.AddProduct(1)

	gw := &blockingGateway{entered: make(chan struct{}), release: make(chan struct{})}

	m, err := term.BeginCheckout(models.Customer{}, nil, checkout.WithGateway(gw))
	require.NoError(t, err)
	require.NoError(t, m.SelectMethod(checkout.MethodCard))
	require.NoError(t, m.SubmitCard(ctx, checkout.CardDetails{Number: "4111111111111111", Holder: "Ravi", Expiry: "07/25", CVV: "123"}))

	type outcome struct {
		res checkout.Result
		err error
	}

	done := make(chan outcome, 1)

	go func() {
		res, err := m.SubmitOTP(ctx, "4321")
		done <- outcome{res, err}
	}()

	select {
	case <-gw.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("gateway was never called")
	}

	// Act
	_, addErr := term.AddProduct(2)
	duringSubmit := term.Bill()
	close(gw.release)

	var paid outcome
	select {
	case paid = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OTP submission did not return")
	}

	// Assert
	assert.ErrorIs(t, addErr, terminal.ErrPaymentInFlight)
	assert.Equal(t, "10.00", duringSubmit.Total.StringFixed(2), "refused add must not touch the bill")
	require.NoError(t, paid.err)
	assert.Equal(t, "10.00", paid.res.Amount.StringFixed(2))
	assert.Equal(t, 0, term.Bill().ItemCount)

	_, err = term.AddProduct(2)
	require.NoError(t, err, "adds are accepted again once the payment finished")
	assert.Equal(t, "4.50", term.Bill().Total.StringFixed(2))
}

func TestBeginCheckout(t *testing.T) {
	t.Run("Failure - Empty Bill", func(t *testing.T) {
		term := newTerminal()

		_, err := term.BeginCheckout(models.Customer{}, nil)

		assert.ErrorIs(t, err, terminal.ErrEmptyCart)
	})

	t.Run("Failure - Clear Refused While Checking Out", func(t *testing.T) {
		// Arrange
		term := newTerminal()
		_, _ = term.AddProduct(1)
		_, err := term.BeginCheckout(models.Customer{}, nil)
		require.NoError(t, err)

		// Act
		clearErr := term.ClearBill()
		cancelErr := term.CancelCheckout()
		clearAfterCancel := term.ClearBill()

		// Assert
		assert.ErrorIs(t, clearErr, terminal.ErrCheckoutInProgress)
		require.NoError(t, cancelErr)
		require.NoError(t, clearAfterCancel)
		assert.Equal(t, 0, term.Bill().ItemCount)

		_, err = term.Checkout()
		assert.ErrorIs(t, err, terminal.ErrNoCheckout)
	})

	t.Run("Success - Preview Uses Checkout Snapshot", func(t *testing.T) {
		// Arrange
		term := newTerminal()
		_, _ = term.AddProduct(1)
		_, err := term.BeginCheckout(models.Customer{Name: "Ravi"}, nil)
		require.NoError(t, err)
		_, _ = term.AddProduct(2)

		// Act
		snap, customer := term.BillSnapshot()

		// Assert
		assert.Equal(t, "10.00", snap.Total.StringFixed(2))
		assert.Equal(t, "Ravi", customer.Name)
	})
}

func TestRegistry(t *testing.T) {
	// Arrange
	r := terminal.NewRegistry()
	id := uuid.New()

	// Act
	created := r.Create(id, terminal.Staff{EmployeeCode: "EMP042"})
	got, err := r.Get(id)

	// Assert
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Equal(t, 1, r.Len())

	assert.Empty(t, r.Sweep(time.Hour), "fresh terminal is not idle")
	assert.Equal(t, []uuid.UUID{id}, r.Sweep(-time.Second))

	_, err = r.Get(id)
	assert.ErrorIs(t, err, terminal.ErrNoTerminal)

	r.Create(id, terminal.Staff{})
	r.Remove(id)
	assert.Equal(t, 0, r.Len())
}
