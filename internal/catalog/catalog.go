// Package catalog serves categories, subcategories and product pages from the billing backend
// through a Redis cache.
//
// Backend failures never reach the caller as errors: they are logged and the result is empty,
// so the till keeps working with whatever it already shows. The one exception is an expired
// backend session, which the caller must handle by logging the terminal out.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/cache"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Backend interface {
	Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error)
	Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error)
	Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery) (*models.ProductPage, error)
}

type Catalog struct {
	backend  Backend
	cache    cache.Cache
	ttl      time.Duration
	cfg      config.Catalog
	validate *validator.Validate
}

func New(backend Backend, c cache.Cache, ttl time.Duration, cfg config.Catalog) *Catalog {
	return &Catalog{
		backend:  backend,
		cache:    c,
		ttl:      ttl,
		cfg:      cfg,
		validate: validator.New(),
	}
}

func (c *Catalog) Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error) {
	logger := middleware.LoggerFromContext(ctx)

	var expired error

	categories := cache.Fetch(ctx, c.cache, cache.Key(cache.CategoryKeyPrefix), c.ttl,
		func(ctx context.Context) ([]models.Category, bool) {
			records, err := c.backend.Categories(ctx, sessionID)
			if err != nil {
				expired = c.backendFailed(ctx, "categories", err)
				return []models.Category{}, false
			}

			return keepValid(c, logger, "category", records), true
		},
		c.cacheFailed(logger),
	)

	return categories, expired
}

func (c *Catalog) Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error) {
	logger := middleware.LoggerFromContext(ctx)

	var expired error

	key := cache.Key(cache.SubcategoryKeyPrefix, strconv.FormatInt(categoryID, 10))

	subcategories := cache.Fetch(ctx, c.cache, key, c.ttl,
		func(ctx context.Context) ([]models.Subcategory, bool) {
			records, err := c.backend.Subcategories(ctx, sessionID, categoryID)
			if err != nil {
				expired = c.backendFailed(ctx, "subcategories", err)
				return []models.Subcategory{}, false
			}

			return keepValid(c, logger, "subcategory", records), true
		},
		c.cacheFailed(logger),
	)

	return subcategories, expired
}

// Products loads one page. Page size is clamped to the configured bounds.
func (c *Catalog) Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery) (*models.ProductPage, error) {
	logger := middleware.LoggerFromContext(ctx)

	q = c.normalize(q)

	var expired error

	key := cache.Key(cache.ProductPageKeyPrefix,
		strconv.FormatInt(q.CategoryID, 10),
		strconv.FormatInt(q.SubcategoryID, 10),
		strconv.Itoa(q.PageNo),
		strconv.Itoa(q.PageSize),
	)

	page := cache.Fetch(ctx, c.cache, key, c.ttl,
		func(ctx context.Context) (*models.ProductPage, bool) {
			record, err := c.backend.Products(ctx, sessionID, q)
			if err != nil {
				expired = c.backendFailed(ctx, "products", err)
				return emptyPage(q), false
			}

			record.Products = keepValidProducts(c, logger, record.Products)

			return record, true
		},
		c.cacheFailed(logger),
	)

	if page == nil {
		page = emptyPage(q)
	}

	return page, expired
}

// Refresh drops every cached catalog entry.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.cache.Invalidate(ctx, cache.CatalogKeyPrefix)
}

func (c *Catalog) normalize(q models.ProductQuery) models.ProductQuery {
	if q.PageNo < 0 {
		q.PageNo = 0
	}

	if q.PageSize <= 0 {
		q.PageSize = c.cfg.DefaultPageSize
	}

	if c.cfg.MaxPageSize > 0 && q.PageSize > c.cfg.MaxPageSize {
		q.PageSize = c.cfg.MaxPageSize
	}

	return q
}

func (c *Catalog) backendFailed(ctx context.Context, what string, err error) error {
	logger := middleware.LoggerFromContext(ctx)

	if billingapi.IsSessionExpired(err) {
		logger.Warn("Catalog request rejected, session expired", slog.String("resource", what))
		return err
	}

	logger.Error("Failed to load catalog, showing empty result", slog.String("resource", what), slog.String("error", err.Error()))

	return nil
}

func (c *Catalog) cacheFailed(logger *slog.Logger) func(error) {
	return func(err error) {
		logger.Warn("Catalog cache unavailable", slog.String("error", err.Error()))
	}
}

func keepValid[T any](c *Catalog, logger *slog.Logger, kind string, records []T) []T {
	valid := make([]T, 0, len(records))

	for i := range records {
		if err := c.validate.Struct(records[i]); err != nil {
			logger.Warn("Dropping malformed catalog record", slog.String("kind", kind), slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}

		valid = append(valid, records[i])
	}

	return valid
}

func keepValidProducts(c *Catalog, logger *slog.Logger, products []models.Product) []models.Product {
	products = keepValid(c, logger, "product", products)

	valid := products[:0]
	for _, p := range products {
		if p.Price.IsNegative() {
			logger.Warn("Dropping product with negative price", slog.Int64("productId", p.ID), slog.String("price", p.Price.String()))
			continue
		}

		valid = append(valid, p)
	}

	return valid
}

func emptyPage(q models.ProductQuery) *models.ProductPage {
	return &models.ProductPage{Products: []models.Product{}, PageNo: q.PageNo, PageSize: q.PageSize}
}

// Filter keeps the products whose name contains term, ignoring case. An empty term keeps all.
func Filter(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}

	return matched
}

// Find looks a product up by id in a loaded page.
func Find(page *models.ProductPage, id int64) (models.Product, bool) {
	if page == nil {
		return models.Product{}, false
	}

	for _, p := range page.Products {
		if p.ID == id {
			return p, true
		}
	}

	return models.Product{}, false
}
