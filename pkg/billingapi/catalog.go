package billingapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"categoryName"`
	Image     string `json:"categoryImage"`
	ItemCount int    `json:"itemCount"`
}

type subcategoryRecord struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"productCategoryId"`
	Name       string `json:"subCategoryName"`
	Image      string `json:"subCategoryImage"`
	ItemCount  int    `json:"itemCount"`
}

type productRecord struct {
	ID            int64           `json:"id"`
	Name          string          `json:"productName"`
	Price         decimal.Decimal `json:"productPrice"`
	Image         string          `json:"productImage"`
	CategoryID    int64           `json:"productCategoryId"`
	SubcategoryID int64           `json:"subProductCategoryId"`
}

type productPageRecord struct {
	Content       []productRecord `json:"content"`
	Number        int             `json:"number"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// Categories returns the records as sent; the catalog layer validates them.
func (c *Client) Categories(ctx context.Context, sessionID uuid.UUID) ([]models.Category, error) {
	var records []categoryRecord

	err := c.do(ctx, call{
		endpoint: "/billing/productCategoryListDropDown",
		method:   http.MethodGet,
		session:  sessionID,
		out:      &records,
	})
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, models.Category{ID: r.ID, Name: r.Name, Image: r.Image, ItemCount: r.ItemCount})
	}

	return categories, nil
}

func (c *Client) Subcategories(ctx context.Context, sessionID uuid.UUID, categoryID int64) ([]models.Subcategory, error) {
	var records []subcategoryRecord

	err := c.do(ctx, call{
		endpoint: "/billing/productSubCategoryListDropDown",
		method:   http.MethodGet,
		query:    url.Values{"id": {strconv.FormatInt(categoryID, 10)}},
		session:  sessionID,
		out:      &records,
	})
	if err != nil {
		return nil, err
	}

	subcategories := make([]models.Subcategory, 0, len(records))
	for _, r := range records {
		if r.CategoryID == 0 {
			r.CategoryID = categoryID
		}

		subcategories = append(subcategories, models.Subcategory{
			ID:         r.ID,
			CategoryID: r.CategoryID,
			Name:       r.Name,
			Image:      r.Image,
			ItemCount:  r.ItemCount,
		})
	}

	return subcategories, nil
}

func (c *Client) Products(ctx context.Context, sessionID uuid.UUID, q models.ProductQuery) (*models.ProductPage, error) {
	var record productPageRecord

	err := c.do(ctx, call{
		endpoint: "/billing/productsList",
		method:   http.MethodGet,
		query: url.Values{
			"pageNo":               {strconv.Itoa(q.PageNo)},
			"pageSize":             {strconv.Itoa(q.PageSize)},
			"productCategoryId":    {strconv.FormatInt(q.CategoryID, 10)},
			"subProductCategoryId": {strconv.FormatInt(q.SubcategoryID, 10)},
		},
		session: sessionID,
		out:     &record,
	})
	if err != nil {
		return nil, err
	}

	page := &models.ProductPage{
		Products:      make([]models.Product, 0, len(record.Content)),
		PageNo:        record.Number,
		PageSize:      record.Size,
		TotalElements: record.TotalElements,
		TotalPages:    record.TotalPages,
	}

	if page.PageSize == 0 {
		page.PageNo, page.PageSize = q.PageNo, q.PageSize
	}

	for _, r := range record.Content {
		page.Products = append(page.Products, models.Product{
			ID:            r.ID,
			Name:          r.Name,
			Price:         r.Price,
			Image:         r.Image,
			CategoryID:    r.CategoryID,
			SubcategoryID: r.SubcategoryID,
		})
	}

	return page, nil
}
