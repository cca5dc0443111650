package service

import (
	stderrors "errors"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/checkout"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	repository "github.com/aaravmahajanofficial/hypermart-pos/internal/repositories"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
)

// appError maps domain, backend and storage errors onto the AppError taxonomy. An error that
// already is an AppError passes through.
func appError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.IsAppError(err); ok {
		return err
	}

	var (
		validationErr *checkout.ValidationError
		transitionErr *checkout.TransitionError
		apiErr        *billingapi.APIError
	)

	switch {
	case stderrors.As(err, &validationErr):
		return errors.AddValidationError(validationErr.Field, validationErr.Reason).WithError(err)
	case stderrors.As(err, &transitionErr):
		return errors.CheckoutStateError(transitionErr.Error()).WithError(err)
	case stderrors.Is(err, checkout.ErrBusy), stderrors.Is(err, checkout.ErrClosed):
		return errors.CheckoutStateError(err.Error()).WithError(err)
	case stderrors.Is(err, checkout.ErrNoGateway):
		return errors.InternalError("Card payments are not configured").WithError(err)
	case stderrors.Is(err, terminal.ErrCartChanged), stderrors.Is(err, terminal.ErrCheckoutInProgress),
		stderrors.Is(err, terminal.ErrPaymentInFlight):
		return errors.ConflictError(err.Error()).WithError(err)
	case stderrors.Is(err, terminal.ErrEmptyCart):
		return errors.BadRequestError("Cannot check out an empty bill").WithError(err)
	case stderrors.Is(err, terminal.ErrProductNotLoaded):
		return errors.NotFoundError("Product is not on the loaded catalog page").WithError(err)
	case stderrors.Is(err, terminal.ErrNoCheckout):
		return errors.NotFoundError("No checkout in progress").WithError(err)
	case stderrors.Is(err, terminal.ErrNoTerminal), stderrors.Is(err, billingapi.ErrSessionExpired):
		return errors.SessionExpiredError("Session expired, please log in again").WithError(err)
	case stderrors.Is(err, repository.ErrReceiptNotFound):
		return errors.NotFoundError("Receipt not found").WithError(err)
	case stderrors.As(err, &apiErr):
		message := apiErr.Message
		if message == "" {
			message = "Billing backend rejected the request"
		}

		return errors.UpstreamError(message, apiErr.StatusCode).WithError(err)
	case stderrors.Is(err, billingapi.ErrUnavailable):
		return errors.UpstreamError("Billing backend is unavailable", 0).WithError(err)
	default:
		return errors.InternalError("Unexpected error").WithError(err)
	}
}
