package service_test

import (
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/invoice"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/services/mocks"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var seller = invoice.Seller{Name: "Hypermart", Address: "MG Road, Bengaluru"}

func productPage() *models.ProductPage {
	return &models.ProductPage{
		Products: []models.Product{
			{ID: 11, Name: "Basmati Rice 5kg", Price: decimal.RequireFromString("549.00"), CategoryID: 1, SubcategoryID: 2},
			{ID: 12, Name: "Toor Dal 1kg", Price: decimal.RequireFromString("162.50"), CategoryID: 1, SubcategoryID: 2},
		},
		PageNo:        0,
		PageSize:      20,
		TotalElements: 2,
		TotalPages:    1,
	}
}

func newBillingFixture(t *testing.T) (*mocks.MockCatalogReader, *terminal.Registry, uuid.UUID, service.BillingService) {
	t.Helper()

	catalog := mocks.NewMockCatalogReader(t)
	terminals := terminal.NewRegistry()
	sessionID := uuid.New()
	terminals.Create(sessionID, terminal.Staff{EmployeeCode: "EMP042", Email: "asha@hypermart.in"})

	return catalog, terminals, sessionID, service.NewBillingService(catalog, terminals, seller)
}

func requireAppCode(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func TestBillingCatalog(t *testing.T) {
	t.Run("Success - Categories", func(t *testing.T) {
		// Arrange
		catalog, _, sessionID, svc := newBillingFixture(t)
		expected := []models.Category{{ID: 1, Name: "Groceries", ItemCount: 120}}
		catalog.On("Categories", mock.Anything, sessionID).Return(expected, nil).Once()

		// Act
		categories, err := svc.Categories(t.Context(), sessionID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, categories)
	})

	t.Run("Failure - Unknown Session", func(t *testing.T) {
		// Arrange
		_, _, _, svc := newBillingFixture(t)

		// Act
		categories, err := svc.Categories(t.Context(), uuid.New())

		// Assert
		assert.Nil(t, categories)
		appErr := requireAppCode(t, err, appErrors.ErrCodeSessionExpired)
		assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	})

	t.Run("Success - Subcategories Record The Selected Category", func(t *testing.T) {
		// Arrange
		catalog, terminals, sessionID, svc := newBillingFixture(t)
		catalog.On("Subcategories", mock.Anything, sessionID, int64(3)).
			Return([]models.Subcategory{{ID: 31, CategoryID: 3, Name: "Dairy"}}, nil).Once()

		// Act
		subcategories, err := svc.Subcategories(t.Context(), sessionID, 3)

		// Assert
		require.NoError(t, err)
		assert.Len(t, subcategories, 1)
		term, _ := terminals.Get(sessionID)
		assert.Equal(t, int64(3), term.Selection().CategoryID)
	})

	t.Run("Failure - Expired Backend Session Closes Terminal", func(t *testing.T) {
		// Arrange
		catalog, terminals, sessionID, svc := newBillingFixture(t)
		q := models.ProductQuery{CategoryID: 1, SubcategoryID: 2, PageSize: 20}
		catalog.On("Products", mock.Anything, sessionID, q).
			Return(nil, fmt.Errorf("/products: %w", billingapi.ErrSessionExpired)).Once()

		// Act
		page, err := svc.Products(t.Context(), sessionID, q, "")

		// Assert
		assert.Nil(t, page)
		requireAppCode(t, err, appErrors.ErrCodeSessionExpired)
		_, err = terminals.Get(sessionID)
		assert.ErrorIs(t, err, terminal.ErrNoTerminal)
	})
}

func TestBillingProductsAndBill(t *testing.T) {
	q := models.ProductQuery{CategoryID: 1, SubcategoryID: 2, PageSize: 20}

	t.Run("Success - Filter Narrows Response Not Loaded Page", func(t *testing.T) {
		// Arrange
		catalog, _, sessionID, svc := newBillingFixture(t)
		catalog.On("Products", mock.Anything, sessionID, q).Return(productPage(), nil).Once()

		// Act
		page, err := svc.Products(t.Context(), sessionID, q, "dal")
		require.NoError(t, err)
		bill, addErr := svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 11})

		// Assert
		require.Len(t, page.Products, 1)
		assert.Equal(t, int64(12), page.Products[0].ID)
		require.NoError(t, addErr, "filtered-out product is still on the loaded page")
		assert.Equal(t, 1, bill.ItemCount)
		assert.Equal(t, "549", bill.Total.String())
	})

	t.Run("Success - Repeated Add Merges", func(t *testing.T) {
		// Arrange
		catalog, _, sessionID, svc := newBillingFixture(t)
		catalog.On("Products", mock.Anything, sessionID, q).Return(productPage(), nil).Once()
		_, err := svc.Products(t.Context(), sessionID, q, "")
		require.NoError(t, err)

		// Act
		_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 12})
		bill, err := svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 12})

		// Assert
		require.NoError(t, err)
		require.Len(t, bill.Items, 1)
		assert.Equal(t, 2, bill.Items[0].Quantity)
		assert.Equal(t, "325", bill.Total.String())
	})

	t.Run("Failure - Product Not On Loaded Page", func(t *testing.T) {
		// Arrange
		_, _, sessionID, svc := newBillingFixture(t)

		// Act
		_, err := svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 99})

		// Assert
		requireAppCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - Clear Bill", func(t *testing.T) {
		// Arrange
		catalog, _, sessionID, svc := newBillingFixture(t)
		catalog.On("Products", mock.Anything, sessionID, q).Return(productPage(), nil).Once()
		_, _ = svc.Products(t.Context(), sessionID, q, "")
		_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 11})

		// Act
		err := svc.ClearBill(t.Context(), sessionID)
		bill, _ := svc.GetBill(t.Context(), sessionID)

		// Assert
		require.NoError(t, err)
		assert.Zero(t, bill.ItemCount)
		assert.True(t, bill.Total.IsZero())
	})

	t.Run("Failure - Clear Bill During Checkout", func(t *testing.T) {
		// Arrange
		catalog, terminals, sessionID, svc := newBillingFixture(t)
		catalog.On("Products", mock.Anything, sessionID, q).Return(productPage(), nil).Once()
		_, _ = svc.Products(t.Context(), sessionID, q, "")
		_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 11})
		term, _ := terminals.Get(sessionID)
		_, err := term.BeginCheckout(models.Customer{}, nil)
		require.NoError(t, err)

		// Act
		err = svc.ClearBill(t.Context(), sessionID)

		// Assert
		requireAppCode(t, err, appErrors.ErrCodeConflict)
	})
}

func TestBillingPreview(t *testing.T) {
	// Arrange
	catalog, _, sessionID, svc := newBillingFixture(t)
	q := models.ProductQuery{CategoryID: 1, SubcategoryID: 2, PageSize: 20}
	catalog.On("Products", mock.Anything, sessionID, q).Return(productPage(), nil).Once()
	_, _ = svc.Products(t.Context(), sessionID, q, "")
	_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 11})
	_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 12})
	_, _ = svc.AddItem(t.Context(), sessionID, &models.AddItemRequest{ProductID: 12})

	// Act
	inv, err := svc.Preview(t.Context(), sessionID)

	// Assert
	require.NoError(t, err)
	assert.True(t, inv.Preview)
	assert.Equal(t, "EMP042", inv.Cashier)
	assert.Equal(t, seller, inv.Seller)
	assert.Equal(t, 2, inv.ItemCount)
	assert.Equal(t, 3, inv.TotalQuantity)
	assert.Equal(t, "874.00", inv.Total.StringFixed(2))
}
