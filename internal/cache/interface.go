package cache

import (
	"context"
	"strings"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Invalidate drops every key under prefix.
	Invalidate(ctx context.Context, prefix string) error
	Close() error
}

// Key joins a prefix and its parts with ':', e.g. Key("catalog:products", "3", "7") = "catalog:products:3:7".
func Key(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

const (
	CatalogKeyPrefix     = "catalog"
	CategoryKeyPrefix    = CatalogKeyPrefix + ":categories"
	SubcategoryKeyPrefix = CatalogKeyPrefix + ":subcategories"
	ProductPageKeyPrefix = CatalogKeyPrefix + ":products"
)
