package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/google/uuid"
)

var ErrReceiptNotFound = errors.New("receipt not found")

type ReceiptRepository struct {
	DB *sql.DB
}

func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{DB: db}
}

func (r *ReceiptRepository) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt items: %w", err)
	}

	customer, err := json.Marshal(receipt.Customer)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt customer: %w", err)
	}

	query := `
		INSERT INTO receipts (id, invoice_number, session_id, employee_code, method, card_type, payment_ref, total, items, customer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.DB.ExecContext(dbCtx, query,
		receipt.ID, receipt.InvoiceNumber, receipt.SessionID, receipt.EmployeeCode, receipt.Method,
		receipt.CardType, receipt.PaymentRef, receipt.Total, items, customer, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	return nil
}

const receiptColumns = `id, invoice_number, session_id, employee_code, method, card_type, payment_ref, total, items, customer, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (*models.Receipt, error) {
	var (
		receipt  models.Receipt
		items    []byte
		customer []byte
	)

	err := row.Scan(&receipt.ID, &receipt.InvoiceNumber, &receipt.SessionID, &receipt.EmployeeCode, &receipt.Method,
		&receipt.CardType, &receipt.PaymentRef, &receipt.Total, &items, &customer, &receipt.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &receipt.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt items: %w", err)
	}

	if err := json.Unmarshal(customer, &receipt.Customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt customer: %w", err)
	}

	return &receipt, nil
}

func (r *ReceiptRepository) GetReceiptByID(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`

	receipt, err := scanReceipt(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReceiptNotFound
		}

		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return receipt, nil
}

// ListReceipts returns one page, newest first, and the total count. An empty employeeCode
// lists every till.
func (r *ReceiptRepository) ListReceipts(ctx context.Context, employeeCode string, page, size int) ([]*models.Receipt, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	offset := (page - 1) * size

	var total int

	countQuery := `SELECT COUNT(*) FROM receipts WHERE ($1 = '' OR employee_code = $1)`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, employeeCode).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE ($1 = '' OR employee_code = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, employeeCode, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}

	defer rows.Close()

	receipts := make([]*models.Receipt, 0, size)

	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan receipt: %w", err)
		}

		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, total, nil
}
