package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ReceiptHandler struct {
	receiptService service.ReceiptService
	renderer       *invoice.Renderer
	validator      *validator.Validate
}

func NewReceiptHandler(receiptService service.ReceiptService, renderer *invoice.Renderer) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, renderer: renderer, validator: validator.New()}
}

// GetReceipt godoc
//
//	@Summary		Get or reprint a receipt
//	@Description	Returns the journaled sale as JSON, or the reprinted invoice when format is text or html.
//	@Tags			Receipts
//	@Produce		json
//	@Produce		plain
//	@Produce		html
//	@Param			id		path		string									true	"Receipt ID"	Format(uuid)
//	@Param			format	query		string									false	"json (default), text or html"	Enums(json, text, html)
//	@Success		200		{object}	response.APIResponse{data=models.Receipt}	"Receipt"
//	@Failure		400		{object}	response.ErrorResponse					"Invalid receipt id"
//	@Failure		404		{object}	response.ErrorResponse					"Receipt not found"
//	@Security		BearerAuth
//	@Router			/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid receipt id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("receiptId", id.String()))

		format := strings.ToLower(r.URL.Query().Get("format"))

		if format == invoice.FormatText || format == invoice.FormatHTML {
			inv, err := h.receiptService.Invoice(r.Context(), id)
			if err != nil {
				logger.Warn("Failed to reprint receipt", slog.Any("error", err))
				response.Error(w, err)
				return
			}

			logger.Info("Receipt reprinted", slog.String("format", format))
			response.Document(w, h.renderer.ContentType(format), func(out io.Writer) error {
				return h.renderer.Render(out, format, inv)
			})
			return
		}

		receipt, err := h.receiptService.GetReceipt(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get receipt", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, receipt)
	}
}

// ListReceipts godoc
//
//	@Summary		Sales history
//	@Description	Journaled sales, newest first. Admin only.
//	@Tags			Receipts
//	@Produce		json
//	@Param			page			query		int												false	"Page number (default 1)"		minimum(1)
//	@Param			pageSize		query		int												false	"Page size (default 10, max 100)"	minimum(1)	maximum(100)
//	@Param			employeeCode	query		string											false	"Only sales of this employee"
//	@Success		200				{object}	response.APIResponse{data=models.ReceiptListResponse}	"Receipts"
//	@Failure		403				{object}	response.ErrorResponse							"Admin role required"
//	@Security		BearerAuth
//	@Router			/receipts [get]
func (h *ReceiptHandler) ListReceipts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		page := utils.QueryInt(r, "page", 1)
		size := utils.QueryInt(r, "pageSize", 10)
		employeeCode := r.URL.Query().Get("employeeCode")

		resp, err := h.receiptService.ListReceipts(r.Context(), employeeCode, page, size)
		if err != nil {
			logger.Error("Failed to list receipts", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Receipts listed", slog.Int("count", len(resp.Receipts)), slog.Int("total", resp.Total))
		response.Success(w, http.StatusOK, resp)
	}
}

// EmailReceipt godoc
//
//	@Summary		E-mail a receipt to the customer
//	@Tags			Receipts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Receipt ID"	Format(uuid)
//	@Param			request	body		models.EmailReceiptRequest	true	"Recipient"
//	@Success		202		{object}	response.APIResponse		"E-mail accepted"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid id or e-mail"
//	@Failure		404		{object}	response.ErrorResponse		"Receipt not found"
//	@Failure		500		{object}	response.ErrorResponse		"E-mail provider error"
//	@Security		BearerAuth
//	@Router			/receipts/{id}/email [post]
func (h *ReceiptHandler) EmailReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.EmailReceiptRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.receiptService.EmailReceipt(r.Context(), id, &req); err != nil {
			logger.Error("Failed to e-mail receipt", slog.String("receiptId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusAccepted, map[string]string{"message": "Receipt e-mailed"})
	}
}
