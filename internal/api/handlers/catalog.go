package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	billingService service.BillingService
	validator      *validator.Validate
}

func NewCatalogHandler(billingService service.BillingService) *CatalogHandler {
	return &CatalogHandler{billingService: billingService, validator: validator.New()}
}

// ListCategories godoc
//
//	@Summary		List product categories
//	@Description	Categories with item counts. An unreachable backend yields an empty list, not an error.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Category}	"Categories"
//	@Failure		401	{object}	response.ErrorResponse							"Authentication required or session expired"
//	@Security		BearerAuth
//	@Router			/catalog/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		categories, err := h.billingService.Categories(r.Context(), claims.SessionID)
		if err != nil {
			logger.Warn("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Categories listed", slog.Int("count", len(categories)))
		response.Success(w, http.StatusOK, categories)
	}
}

// ListSubcategories godoc
//
//	@Summary		List subcategories of a category
//	@Description	Also makes the category the terminal's current selection.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int												true	"Category ID"
//	@Success		200	{object}	response.APIResponse{data=[]models.Subcategory}	"Subcategories"
//	@Failure		400	{object}	response.ErrorResponse							"Invalid category id"
//	@Failure		401	{object}	response.ErrorResponse							"Authentication required or session expired"
//	@Security		BearerAuth
//	@Router			/catalog/categories/{id}/subcategories [get]
func (h *CatalogHandler) ListSubcategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		categoryID, err := utils.PathInt64(r, "id")
		if err != nil {
			logger.Warn("Invalid category id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		subcategories, err := h.billingService.Subcategories(r.Context(), claims.SessionID, categoryID)
		if err != nil {
			logger.Warn("Failed to list subcategories", slog.Int64("categoryId", categoryID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, subcategories)
	}
}

// ListProducts godoc
//
//	@Summary		Load a page of products
//	@Description	Loads one page of a subcategory and makes it the page items are added from. q filters the returned products by name.
//	@Tags			Catalog
//	@Produce		json
//	@Param			categoryId		query		int												true	"Category ID"
//	@Param			subcategoryId	query		int												true	"Subcategory ID"
//	@Param			page			query		int												false	"Zero-based page number"	minimum(0)
//	@Param			pageSize		query		int												false	"Page size"					minimum(1)
//	@Param			q				query		string											false	"Case-insensitive name filter"
//	@Success		200				{object}	response.APIResponse{data=models.ProductPage}	"Product page"
//	@Failure		400				{object}	response.ErrorResponse							"Missing or invalid query parameters"
//	@Failure		401				{object}	response.ErrorResponse							"Authentication required or session expired"
//	@Security		BearerAuth
//	@Router			/catalog/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		categoryID, err := utils.QueryInt64(r, "categoryId")
		if err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		subcategoryID, err := utils.QueryInt64(r, "subcategoryId")
		if err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		q := models.ProductQuery{
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			PageNo:        utils.QueryInt(r, "page", 0),
			PageSize:      utils.QueryInt(r, "pageSize", 0),
		}

		if err := h.validator.StructPartial(q, "CategoryID", "SubcategoryID", "PageNo"); err != nil {
			logger.Warn("Invalid product query", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid product query").WithDetail(err.Error()))
			return
		}

		page, err := h.billingService.Products(r.Context(), claims.SessionID, q, r.URL.Query().Get("q"))
		if err != nil {
			logger.Warn("Failed to load products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Debug("Products loaded", slog.Int("count", len(page.Products)), slog.Int("page", page.PageNo))
		response.Success(w, http.StatusOK, page)
	}
}
