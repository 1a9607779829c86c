// Package billing keeps the billing catalog in step with imported products.
package billing

import "context"

// Product is the part of a billing catalog product the reconciler reads.
type Product struct {
	ID             string
	Name           string
	DefaultPriceID string
	Metadata       map[string]string
}

// Price is immutable once created apart from its active flag.
type Price struct {
	ID         string
	ProductID  string
	UnitAmount int64 // minor units
	Currency   string
	Active     bool
}

type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Metadata    map[string]string
}

// Catalog is the narrow view of the billing service this package needs.
type Catalog interface {
	// FindProductBySKU returns nil, nil when no product carries the SKU.
	FindProductBySKU(ctx context.Context, sku string) (*Product, error)
	ListActivePrices(ctx context.Context, productID string) ([]Price, error)
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*Price, error)
	DeactivatePrice(ctx context.Context, priceID string) error
	SetDefaultPrice(ctx context.Context, productID, priceID string) error
}

// Metadata keys written on every product this importer creates.
const (
	MetadataSKU       = "sku"
	MetadataSourceURL = "source_url"
)
