package models

import "github.com/shopspring/decimal"

type Category struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	Image     string `json:"image,omitempty"`
	ItemCount int    `json:"item_count" validate:"gte=0"`
}

type Subcategory struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name" validate:"required"`
	Image      string `json:"image,omitempty"`
	ItemCount  int    `json:"item_count" validate:"gte=0"`
}

type Product struct {
	ID            int64           `json:"id" validate:"required,gt=0"`
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image,omitempty"`
	CategoryID    int64           `json:"category_id"`
	SubcategoryID int64           `json:"subcategory_id"`
}

// ProductQuery selects one page of products under a category/subcategory.
type ProductQuery struct {
	CategoryID    int64 `json:"category_id" validate:"required,gt=0"`
	SubcategoryID int64 `json:"subcategory_id" validate:"required,gt=0"`
	PageNo        int   `json:"page_no" validate:"gte=0"`
	PageSize      int   `json:"page_size" validate:"gt=0"`
}

type ProductPage struct {
	Products      []Product `json:"products"`
	PageNo        int       `json:"page_no"`
	PageSize      int       `json:"page_size"`
	TotalElements int64     `json:"total_elements"`
	TotalPages    int       `json:"total_pages"`
}
