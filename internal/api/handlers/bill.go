package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type BillHandler struct {
	billingService service.BillingService
	renderer       *invoice.Renderer
	validator      *validator.Validate
}

func NewBillHandler(billingService service.BillingService, renderer *invoice.Renderer) *BillHandler {
	return &BillHandler{billingService: billingService, renderer: renderer, validator: validator.New()}
}

// GetBill godoc
//
//	@Summary		Current bill
//	@Tags			Bill
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=models.BillView}	"Line items and total"
//	@Failure		401	{object}	response.ErrorResponse						"Authentication required or session expired"
//	@Security		BearerAuth
//	@Router			/bill [get]
func (h *BillHandler) GetBill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		bill, err := h.billingService.GetBill(r.Context(), claims.SessionID)
		if err != nil {
			logger.Warn("Failed to get bill", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, bill)
	}
}

// AddItem godoc
//
//	@Summary		Add one unit of a product to the bill
//	@Description	The product must be on the page last loaded by this terminal; its price is taken from that page. Adding a product already on the bill increments its quantity.
//	@Tags			Bill
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest						true	"Product to add"
//	@Success		200		{object}	response.APIResponse{data=models.BillView}	"Updated bill"
//	@Failure		400		{object}	response.ErrorResponse						"Validation error"
//	@Failure		404		{object}	response.ErrorResponse						"Product not on the loaded page"
//	@Failure		409		{object}	response.ErrorResponse						"Payment being submitted"
//	@Security		BearerAuth
//	@Router			/bill/items [post]
func (h *BillHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		bill, err := h.billingService.AddItem(r.Context(), claims.SessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added", slog.Int64("productId", req.ProductID), slog.Int("lines", bill.ItemCount))
		response.Success(w, http.StatusOK, bill)
	}
}

// ClearBill godoc
//
//	@Summary		Cancel the sale
//	@Description	Empties the bill. Refused while a checkout is open.
//	@Tags			Bill
//	@Success		204	"Bill cleared"
//	@Failure		409	{object}	response.ErrorResponse	"Checkout in progress"
//	@Security		BearerAuth
//	@Router			/bill [delete]
func (h *BillHandler) ClearBill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		if err := h.billingService.ClearBill(r.Context(), claims.SessionID); err != nil {
			logger.Warn("Failed to clear bill", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Bill cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}

// PreviewInvoice godoc
//
//	@Summary		Invoice preview
//	@Description	Renders the bill as an invoice before payment, marked as a preview.
//	@Tags			Invoice
//	@Produce		plain
//	@Produce		html
//	@Param			format	query		string					false	"text (default) or html"	Enums(text, html)
//	@Success		200		{string}	string					"Rendered invoice"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required or session expired"
//	@Security		BearerAuth
//	@Router			/invoice/preview [get]
func (h *BillHandler) PreviewInvoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		inv, err := h.billingService.Preview(r.Context(), claims.SessionID)
		if err != nil {
			logger.Warn("Failed to build invoice preview", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		format := r.URL.Query().Get("format")

		response.Document(w, h.renderer.ContentType(format), func(out io.Writer) error {
			return h.renderer.Render(out, format, inv)
		})
	}
}
