package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/checkout"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/sendgrid"
	"github.com/google/uuid"
)

// ReceiptStore is satisfied by *repository.ReceiptRepository.
type ReceiptStore interface {
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
	GetReceiptByID(ctx context.Context, id uuid.UUID) (*models.Receipt, error)
	ListReceipts(ctx context.Context, employeeCode string, page, size int) ([]*models.Receipt, int, error)
}

type ReceiptService interface {
	GetReceipt(ctx context.Context, id uuid.UUID) (*models.Receipt, error)
	ListReceipts(ctx context.Context, employeeCode string, page, size int) (*models.ReceiptListResponse, error)
	Invoice(ctx context.Context, id uuid.UUID) (invoice.Invoice, error)
	EmailReceipt(ctx context.Context, id uuid.UUID, req *models.EmailReceiptRequest) error
}

type receiptService struct {
	repo     ReceiptStore
	email    sendgrid.EmailService
	renderer *invoice.Renderer
	seller   invoice.Seller
}

func NewReceiptService(repo ReceiptStore, email sendgrid.EmailService, renderer *invoice.Renderer, seller invoice.Seller) ReceiptService {
	return &receiptService{repo: repo, email: email, renderer: renderer, seller: seller}
}

func (s *receiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {

	receipt, err := s.repo.GetReceiptByID(ctx, id)
	if err != nil {
		if appErr := appError(err); isNotFound(appErr) {
			return nil, appErr
		}

		return nil, errors.DatabaseError("Failed to get receipt").WithError(err)
	}

	return receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, employeeCode string, page, size int) (*models.ReceiptListResponse, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	receipts, total, err := s.repo.ListReceipts(ctx, employeeCode, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list receipts").WithError(err)
	}

	return &models.ReceiptListResponse{
		Receipts: receipts,
		Total:    total,
		Page:     page,
		Size:     size,
	}, nil
}

// Invoice rebuilds the printable invoice of a journaled sale.
func (s *receiptService) Invoice(ctx context.Context, id uuid.UUID) (invoice.Invoice, error) {

	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return invoice.Invoice{}, err
	}

	return s.build(receipt), nil
}

func (s *receiptService) EmailReceipt(ctx context.Context, id uuid.UUID, req *models.EmailReceiptRequest) error {

	logger := middleware.LoggerFromContext(ctx)

	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return err
	}

	inv := s.build(receipt)

	var text, html bytes.Buffer

	if err := s.renderer.Text(&text, inv); err != nil {
		return errors.InternalError("Failed to render invoice").WithError(err)
	}

	if err := s.renderer.HTML(&html, inv); err != nil {
		return errors.InternalError("Failed to render invoice").WithError(err)
	}

	err = s.email.Send(ctx, &models.EmailNotificationRequest{
		To:          req.Email,
		Subject:     fmt.Sprintf("%s invoice %s", s.seller.Name, inv.Number),
		Content:     text.String(),
		HTMLContent: html.String(),
		Attachments: []models.EmailAttachment{{
			Filename:    inv.Number + ".html",
			ContentType: s.renderer.ContentType(invoice.FormatHTML),
			Content:     html.Bytes(),
		}},
	})
	if err != nil {
		logger.Error("Failed to e-mail receipt", slog.String("receiptId", id.String()), slog.Any("error", err))
		return errors.ThirdPartyError("Failed to send receipt e-mail").WithError(err)
	}

	logger.Info("Receipt e-mailed", slog.String("receiptId", id.String()))

	return nil
}

func (s *receiptService) build(r *models.Receipt) invoice.Invoice {
	payment := invoice.Payment{Method: r.Method, CardType: r.CardType}

	switch r.Method {
	case string(checkout.MethodCard):
		payment.MaskedCard = r.PaymentRef
	case string(checkout.MethodUPI):
		payment.UPIID = r.PaymentRef
	}

	return invoice.Build(invoice.Input{
		Number:   r.InvoiceNumber,
		IssuedAt: r.CreatedAt,
		Seller:   s.seller,
		Cashier:  r.EmployeeCode,
		Customer: r.Customer,
		Payment:  payment,
		Items:    r.Items,
		Amount:   r.Total,
	})
}

func isNotFound(err error) bool {
	appErr, ok := errors.IsAppError(err)
	return ok && appErr.Code == errors.ErrCodeNotFound
}
