package terminal

import "errors"

var (
	ErrEmptyCart          = errors.New("the bill is empty")
	ErrCartChanged        = errors.New("the bill changed after checkout started; restart checkout to charge the new total")
	ErrProductNotLoaded   = errors.New("product is not on the loaded catalog page")
	ErrNoCheckout         = errors.New("no checkout in progress")
	ErrCheckoutInProgress = errors.New("a checkout is in progress")
	ErrPaymentInFlight    = errors.New("a payment is being submitted; wait for it to finish")
	ErrNoTerminal         = errors.New("terminal session not found")
)
