package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/catalog"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/google/uuid"
)

// CatalogReader is satisfied by *catalog.Catalog.
type CatalogReader interface {
	Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error)
	Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error)
	Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery) (*models.ProductPage, error)
}

// BillingService is the till screen: catalog browsing, the running bill and its preview.
type BillingService interface {
	Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error)
	Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error)
	Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery, term string) (*models.ProductPage, error)
	GetBill(ctx context.Context, sessionID uuid.UUID) (models.BillView, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (models.BillView, error)
	ClearBill(ctx context.Context, sessionID uuid.UUID) error
	Preview(ctx context.Context, sessionID uuid.UUID) (invoice.Invoice, error)
}

type billingService struct {
	catalog   CatalogReader
	terminals *terminal.Registry
	seller    invoice.Seller
}

func NewBillingService(catalog CatalogReader, terminals *terminal.Registry, seller invoice.Seller) BillingService {
	return &billingService{catalog: catalog, terminals: terminals, seller: seller}
}

func (s *billingService) Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error) {

	if _, err := s.terminals.Get(sessionID); err != nil {
		return nil, appError(err)
	}

	categories, err := s.catalog.Categories(ctx, sessionID)
	if err != nil {
		return nil, s.expire(ctx, sessionID, err)
	}

	return categories, nil
}

// Subcategories also records the category as the browser selection.
func (s *billingService) Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return nil, appError(err)
	}

	t.SelectCategory(categoryID)

	subcategories, err := s.catalog.Subcategories(ctx, sessionID, categoryID)
	if err != nil {
		return nil, s.expire(ctx, sessionID, err)
	}

	return subcategories, nil
}

// Products loads a page and makes it the one AddItem resolves against. A search term only
// narrows the returned copy; the loaded page keeps every product.
func (s *billingService) Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery, term string) (*models.ProductPage, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return nil, appError(err)
	}

	page, err := s.catalog.Products(ctx, sessionID, q)
	if err != nil {
		return nil, s.expire(ctx, sessionID, err)
	}

	t.ShowPage(q.CategoryID, q.SubcategoryID, page)

	if term == "" {
		return page, nil
	}

	filtered := *page
	filtered.Products = catalog.Filter(page.Products, term)

	return &filtered, nil
}

func (s *billingService) GetBill(ctx context.Context, sessionID uuid.UUID) (models.BillView, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return models.BillView{}, appError(err)
	}

	return t.Bill(), nil
}

func (s *billingService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (models.BillView, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return models.BillView{}, appError(err)
	}

	item, err := t.AddProduct(req.ProductID)
	if err != nil {
		return models.BillView{}, appError(err)
	}

	middleware.LoggerFromContext(ctx).Debug("Item added to bill",
		slog.Int64("productId", item.ProductID),
		slog.Int("quantity", item.Quantity))

	return t.Bill(), nil
}

func (s *billingService) ClearBill(ctx context.Context, sessionID uuid.UUID) error {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return appError(err)
	}

	return appError(t.ClearBill())
}

// Preview is the invoice for the bill as it stands, before payment. During checkout it shows
// the snapshot being charged.
func (s *billingService) Preview(ctx context.Context, sessionID uuid.UUID) (invoice.Invoice, error) {

	t, err := s.terminals.Get(sessionID)
	if err != nil {
		return invoice.Invoice{}, appError(err)
	}

	snapshot, customer := t.BillSnapshot()

	return invoice.Build(invoice.Input{
		IssuedAt: time.Now(),
		Seller:   s.seller,
		Cashier:  t.Staff().EmployeeCode,
		Customer: customer,
		Items:    snapshot.Items,
		Amount:   snapshot.Total,
		Preview:  true,
	}), nil
}

// expire logs the terminal out when the backend session is gone.
func (s *billingService) expire(ctx context.Context, sessionID uuid.UUID, err error) error {
	if stderrors.Is(err, billingapi.ErrSessionExpired) {
		middleware.LoggerFromContext(ctx).Warn("Backend session expired, closing terminal", slog.String("sessionId", sessionID.String()))
		s.terminals.Remove(sessionID)
	}

	return appError(err)
}
