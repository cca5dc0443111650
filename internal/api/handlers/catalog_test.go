package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/services/mocks"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		sessionID := uuid.New()
		billing.On("Categories", mock.Anything, sessionID).
			Return([]models.Category{{ID: 1, Name: "Groceries", ItemCount: 40}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/categories", nil, sessionID, nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListCategories()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var categories []models.Category
		decodeData(t, decodeEnvelope(t, w), &categories)
		require.Len(t, categories, 1)
		assert.Equal(t, "Groceries", categories[0].Name)
	})

	t.Run("Success - Empty Catalog Is Not An Error", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		sessionID := uuid.New()
		billing.On("Categories", mock.Anything, sessionID).Return([]models.Category{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/categories", nil, sessionID, nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListCategories()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w).Success)
	})

	t.Run("Failure - Session Expired", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		sessionID := uuid.New()
		billing.On("Categories", mock.Anything, sessionID).
			Return(nil, appErrors.SessionExpiredError("Session expired, please log in again")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/categories", nil, sessionID, nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListCategories()(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, appErrors.ErrCodeSessionExpired, decodeEnvelope(t, w).Error.Code)
	})
}

func TestCatalogHandler_ListSubcategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		sessionID := uuid.New()
		billing.On("Subcategories", mock.Anything, sessionID, int64(3)).
			Return([]models.Subcategory{{ID: 31, CategoryID: 3, Name: "Dairy"}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/categories/3/subcategories", nil, sessionID, map[string]string{"id": "3"})
		w := httptest.NewRecorder()

		// Act
		handler.ListSubcategories()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure - Invalid Category ID", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/categories/abc/subcategories", nil, uuid.New(), map[string]string{"id": "abc"})
		w := httptest.NewRecorder()

		// Act
		handler.ListSubcategories()(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decodeEnvelope(t, w).Error.Code)
	})
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("Success - Query Parameters Reach The Service", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		sessionID := uuid.New()
		q := models.ProductQuery{CategoryID: 1, SubcategoryID: 2, PageNo: 1, PageSize: 50}
		page := &models.ProductPage{
			Products: []models.Product{{ID: 12, Name: "Toor Dal 1kg", Price: decimal.RequireFromString("162.50")}},
			PageNo:   1, PageSize: 50, TotalElements: 51, TotalPages: 2,
		}
		billing.On("Products", mock.Anything, sessionID, q, "dal").Return(page, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet,
			"/api/v1/catalog/products?categoryId=1&subcategoryId=2&page=1&pageSize=50&q=dal", nil, sessionID, nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListProducts()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		var got models.ProductPage
		decodeData(t, decodeEnvelope(t, w), &got)
		assert.Equal(t, 2, got.TotalPages)
		require.Len(t, got.Products, 1)
		assert.True(t, got.Products[0].Price.Equal(decimal.RequireFromString("162.50")))
	})

	t.Run("Failure - Missing Subcategory", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/products?categoryId=1", nil, uuid.New(), nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListProducts()(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure - Negative Page", func(t *testing.T) {
		// Arrange
		billing := mocks.NewMockBillingService(t)
		handler := handlers.NewCatalogHandler(billing)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/catalog/products?categoryId=1&subcategoryId=2&page=-1", nil, uuid.New(), nil)
		w := httptest.NewRecorder()

		// Act
		handler.ListProducts()(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
