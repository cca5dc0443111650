package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB       *sql.DB
	Receipts *ReceiptRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{DB: db, Receipts: NewReceiptRepository(db)}
}

const schema = `
	CREATE TABLE IF NOT EXISTS receipts (
		id UUID PRIMARY KEY,
		invoice_number TEXT NOT NULL UNIQUE,
		session_id UUID NOT NULL,
		employee_code TEXT NOT NULL,
		method TEXT NOT NULL,
		card_type TEXT NOT NULL DEFAULT '',
		payment_ref TEXT NOT NULL DEFAULT '',
		total NUMERIC(12, 2) NOT NULL,
		items JSONB NOT NULL,
		customer JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS receipts_employee_created_idx ON receipts (employee_code, created_at DESC);
`

// EnsureSchema creates the receipt journal table when it does not exist yet.
func (p *Repository) EnsureSchema(ctx context.Context) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("failed to create receipts schema: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
