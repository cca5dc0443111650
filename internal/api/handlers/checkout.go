package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// BeginCheckout godoc
//
//	@Summary		Start checkout
//	@Description	Snapshots the bill and opens a checkout for its total. An open checkout is replaced, which re-prices a bill that changed.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.BeginCheckoutRequest						false	"Optional customer details"
//	@Success		201		{object}	response.APIResponse{data=models.CheckoutView}	"Checkout opened"
//	@Failure		400		{object}	response.ErrorResponse							"Empty bill or invalid customer"
//	@Failure		409		{object}	response.ErrorResponse							"A payment is in flight"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) BeginCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.BeginCheckoutRequest
		if r.ContentLength != 0 && !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		view, err := h.checkoutService.Begin(r.Context(), claims.SessionID, &req)
		if err != nil {
			logger.Warn("Failed to start checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, view)
	}
}

// GetCheckout godoc
//
//	@Summary		Current checkout
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.CheckoutView}	"Checkout status"
//	@Failure		404	{object}	response.ErrorResponse							"No checkout"
//	@Security		BearerAuth
//	@Router			/checkout [get]
func (h *CheckoutHandler) GetCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		view, err := h.checkoutService.Get(r.Context(), claims.SessionID)
		if err != nil {
			logger.Debug("No checkout to show", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// CancelCheckout godoc
//
//	@Summary		Cancel checkout
//	@Description	Abandons the checkout; the bill is kept. Refused while a payment is in flight.
//	@Tags			Checkout
//	@Success		204	"Checkout cancelled"
//	@Failure		404	{object}	response.ErrorResponse	"No checkout"
//	@Failure		409	{object}	response.ErrorResponse	"A payment is in flight or the checkout already finished"
//	@Security		BearerAuth
//	@Router			/checkout [delete]
func (h *CheckoutHandler) CancelCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		if err := h.checkoutService.Cancel(r.Context(), claims.SessionID); err != nil {
			logger.Warn("Failed to cancel checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout cancelled")
		w.WriteHeader(http.StatusNoContent)
	}
}

// SelectMethod godoc
//
//	@Summary		Select or switch the payment method
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.SelectMethodRequest						true	"CASH, CARD or UPI"
//	@Success		200		{object}	response.APIResponse{data=models.CheckoutView}	"Collecting details"
//	@Failure		400		{object}	response.ErrorResponse							"Unknown method"
//	@Failure		409		{object}	response.ErrorResponse							"Not allowed in the current status"
//	@Security		BearerAuth
//	@Router			/checkout/method [put]
func (h *CheckoutHandler) SelectMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.SelectMethodRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.respond(w, logger, "select method", func() (models.CheckoutView, error) {
			return h.checkoutService.SelectMethod(r.Context(), claims.SessionID, &req)
		})
	}
}

// PayCash godoc
//
//	@Summary		Confirm a cash payment
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.CheckoutView}	"Payment succeeded"
//	@Failure		409	{object}	response.ErrorResponse							"Wrong status or the bill changed"
//	@Security		BearerAuth
//	@Router			/checkout/cash [post]
func (h *CheckoutHandler) PayCash() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		h.respond(w, logger, "pay cash", func() (models.CheckoutView, error) {
			return h.checkoutService.PayCash(r.Context(), claims.SessionID)
		})
	}
}

// SubmitCard godoc
//
//	@Summary		Submit card details
//	@Description	Validates the card form locally, then asks the billing backend to e-mail an OTP.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			card	body		models.CardDetailsRequest						true	"Card form"
//	@Success		200		{object}	response.APIResponse{data=models.CheckoutView}	"Awaiting OTP"
//	@Failure		400		{object}	response.ErrorResponse							"Invalid card field"
//	@Failure		409		{object}	response.ErrorResponse							"Wrong status"
//	@Failure		502		{object}	response.ErrorResponse							"Billing backend unavailable"
//	@Security		BearerAuth
//	@Router			/checkout/card [post]
func (h *CheckoutHandler) SubmitCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.CardDetailsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.respond(w, logger, "submit card", func() (models.CheckoutView, error) {
			return h.checkoutService.SubmitCard(r.Context(), claims.SessionID, &req)
		})
	}
}

// SubmitOTP godoc
//
//	@Summary		Confirm a card payment with the OTP
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			otp	body		models.OTPRequest								true	"4-digit OTP"
//	@Success		200	{object}	response.APIResponse{data=models.CheckoutView}	"Payment succeeded"
//	@Failure		400	{object}	response.ErrorResponse							"Malformed or rejected OTP"
//	@Failure		409	{object}	response.ErrorResponse							"Wrong status"
//	@Security		BearerAuth
//	@Router			/checkout/otp [post]
func (h *CheckoutHandler) SubmitOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.OTPRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.respond(w, logger, "submit otp", func() (models.CheckoutView, error) {
			return h.checkoutService.SubmitOTP(r.Context(), claims.SessionID, &req)
		})
	}
}

// SubmitUPI godoc
//
//	@Summary		Confirm a UPI payment
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			upi	body		models.UPIRequest								true	"UPI id, handle@bank"
//	@Success		200	{object}	response.APIResponse{data=models.CheckoutView}	"Payment succeeded"
//	@Failure		400	{object}	response.ErrorResponse							"Invalid UPI id"
//	@Failure		409	{object}	response.ErrorResponse							"Wrong status"
//	@Security		BearerAuth
//	@Router			/checkout/upi [post]
func (h *CheckoutHandler) SubmitUPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.UPIRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.respond(w, logger, "submit upi", func() (models.CheckoutView, error) {
			return h.checkoutService.SubmitUPI(r.Context(), claims.SessionID, &req)
		})
	}
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, logger *slog.Logger, step string, run func() (models.CheckoutView, error)) {
	view, err := run()
	if err != nil {
		logger.Warn("Checkout step failed", slog.String("step", step), slog.Any("error", err))
		response.Error(w, err)
		return
	}

	attrs := []any{slog.String("step", step), slog.String("status", view.Status)}
	if view.ReceiptID != nil && *view.ReceiptID != uuid.Nil {
		attrs = append(attrs, slog.String("receiptId", view.ReceiptID.String()))
	}

	logger.Info("Checkout step done", attrs...)
	response.Success(w, http.StatusOK, view)
}
