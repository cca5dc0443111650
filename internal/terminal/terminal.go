// Package terminal owns the state of one logged-in till: the running bill, the checkout in
// progress and what the catalog browser currently shows. Callers get read-only views; every
// change goes through a Terminal method.
//
// Lock order is Terminal then Machine. The machine releases its lock before it runs the guard
// or the completion callback, both of which take the terminal lock.
package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/cart"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/catalog"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/checkout"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
)

// Staff identifies who is logged in at the till.
type Staff struct {
	EmployeeCode string
	Email        string
	Role         string
}

// Selection is the catalog browser state.
type Selection struct {
	CategoryID    int64               `json:"category_id,omitempty"`
	SubcategoryID int64               `json:"subcategory_id,omitempty"`
	Page          *models.ProductPage `json:"page,omitempty"`
}

// Completion is handed to the checkout callback after a payment succeeded and its lines left
// the bill.
type Completion struct {
	SessionID uuid.UUID
	Staff     Staff
	Result    checkout.Result
	Bill      cart.Snapshot
	Customer  models.Customer
}

type Terminal struct {
	mu sync.Mutex

	sessionID uuid.UUID
	staff     Staff
	lastSeen  time.Time

	cart      *cart.Cart
	selection Selection

	machine   *checkout.Machine
	snapshot  cart.Snapshot
	customer  models.Customer
	receiptID *uuid.UUID
}

func New(sessionID uuid.UUID, staff Staff) *Terminal {
	return &Terminal{
		sessionID: sessionID,
		staff:     staff,
		lastSeen:  time.Now(),
		cart:      cart.New(),
	}
}

func (t *Terminal) SessionID() uuid.UUID {
	return t.sessionID
}

func (t *Terminal) Staff() Staff {
	return t.staff
}

func (t *Terminal) touch() {
	t.lastSeen = time.Now()
}

// SelectCategory records the browsed category and forgets the subcategory and page.
func (t *Terminal) SelectCategory(categoryID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	if t.selection.CategoryID != categoryID {
		t.selection = Selection{CategoryID: categoryID}
	}
}

// ShowPage records the product page the till is displaying; AddProduct resolves against it.
func (t *Terminal) ShowPage(categoryID, subcategoryID int64, page *models.ProductPage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()
	t.selection = Selection{CategoryID: categoryID, SubcategoryID: subcategoryID, Page: page}
}

func (t *Terminal) Selection() Selection {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.selection
}

// AddProduct puts one unit of a product from the loaded page on the bill. The price comes from
// the page, never from the caller. Adds are refused while a payment is being submitted.
func (t *Terminal) AddProduct(productID int64) (models.LineItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	if t.machine != nil && t.machine.Status() == checkout.StatusSubmitting {
		return models.LineItem{}, ErrPaymentInFlight
	}

	product, ok := catalog.Find(t.selection.Page, productID)
	if !ok {
		return models.LineItem{}, ErrProductNotLoaded
	}

	return t.cart.AddItem(product), nil
}

func (t *Terminal) Bill() models.BillView {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cart.View()
}

// BillSnapshot is the bill as it is now, for the invoice preview.
func (t *Terminal) BillSnapshot() (cart.Snapshot, models.Customer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.machine != nil && !t.machine.Closed() {
		return t.snapshot, t.customer
	}

	return t.cart.Snapshot(), models.Customer{}
}

// ClearBill cancels the sale. It is refused while a checkout is open.
func (t *Terminal) ClearBill() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	if t.machine != nil && !t.machine.Closed() {
		return ErrCheckoutInProgress
	}

	t.cart.Clear()

	return nil
}

// BeginCheckout snapshots the bill and opens a checkout for its total. An open checkout that is
// not submitting is cancelled and replaced, which is how a changed bill gets re-priced.
// onComplete runs after the paid lines have left the bill.
func (t *Terminal) BeginCheckout(customer models.Customer, onComplete func(ctx context.Context, c Completion), opts ...checkout.Option) (*checkout.Machine, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	if t.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if t.machine != nil && !t.machine.Closed() {
		if err := t.machine.Cancel(); err != nil {
			return nil, err
		}
	}

	snapshot := t.cart.Snapshot()

	guard := func() error {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.cart.Version() != snapshot.Version {
			return ErrCartChanged
		}

		return nil
	}

	complete := func(ctx context.Context, res checkout.Result) {
		t.mu.Lock()
		if t.cart.Version() == snapshot.Version {
			t.cart.Clear()
		} else {
			t.cart.Settle(snapshot.Items)
		}
		t.mu.Unlock()

		if onComplete != nil {
			onComplete(ctx, Completion{
				SessionID: t.sessionID,
				Staff:     t.staff,
				Result:    res,
				Bill:      snapshot,
				Customer:  customer,
			})
		}
	}

	opts = append(opts,
		checkout.WithEmail(t.staff.Email),
		checkout.WithGuard(guard),
		checkout.WithOnComplete(complete),
	)

	t.machine = checkout.New(snapshot.Total, opts...)
	t.snapshot = snapshot
	t.customer = customer
	t.receiptID = nil

	return t.machine, nil
}

// Checkout returns the current checkout, including a finished one until the next begins.
func (t *Terminal) Checkout() (*checkout.Machine, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()

	if t.machine == nil {
		return nil, ErrNoCheckout
	}

	return t.machine, nil
}

func (t *Terminal) CheckoutView() (models.CheckoutView, error) {
	m, err := t.Checkout()
	if err != nil {
		return models.CheckoutView{}, err
	}

	view := m.View()

	t.mu.Lock()
	view.ReceiptID = t.receiptID
	t.mu.Unlock()

	return view, nil
}

// CancelCheckout abandons the open checkout. The bill stays as it is.
func (t *Terminal) CancelCheckout() error {
	m, err := t.Checkout()
	if err != nil {
		return err
	}

	if err := m.Cancel(); err != nil {
		return err
	}

	t.mu.Lock()
	if t.machine == m {
		t.machine = nil
	}
	t.mu.Unlock()

	return nil
}

// SetReceipt links the journaled receipt to the finished checkout.
func (t *Terminal) SetReceipt(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.receiptID = &id
}

func (t *Terminal) idleSince() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lastSeen
}
