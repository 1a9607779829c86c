// Package repository persists parts catalog records, keyed by SKU.
package repository

import (
	"context"

	"partsimport/internal/model"
)

// CatalogStore writes a record, replacing any existing row with the same SKU.
type CatalogStore interface {
	Upsert(ctx context.Context, rec *model.PartsCatalogRecord) error
}

const DefaultTable = "parts_catalog"
