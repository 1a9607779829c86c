package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"partsimport/internal/model"
)

type PostgresRepository struct {
	DB    *pgxpool.Pool
	Table string
}

func NewPostgresRepository(pool *pgxpool.Pool, table string) *PostgresRepository {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresRepository{DB: pool, Table: table}
}

var catalogColumns = []string{
	"sku", "name", "slug", "category_type", "seo_title_template", "meta_description",
	"fsip_price", "your_price", "dealer_cost_estimate",
	"stripe_price_id", "stripe_product_id",
	"source_url", "in_stock",
	"specs", "compatibility_list", "oem_part_numbers", "images",
}

// upsertSQL overwrites every column except id and created_at on conflict.
func upsertSQL(table string) string {
	cols := "id"
	params := "$1"
	set := ""
	for i, c := range catalogColumns {
		cols += ", " + c
		params += fmt.Sprintf(", $%d", i+2)
		if c == "sku" {
			continue
		}
		if set != "" {
			set += ",\n\t\t\t"
		}
		set += fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (sku) DO UPDATE SET
			%s,
			updated_at = now()
	`, table, cols, params, set)
}

// upsertArgs lines up with catalogColumns, prefixed by a fresh id that is
// only used when the row is new.
func upsertArgs(id uuid.UUID, rec *model.PartsCatalogRecord) ([]any, error) {
	specs, err := json.Marshal(rec.Specs)
	if err != nil {
		return nil, fmt.Errorf("encode specs: %w", err)
	}
	return []any{
		id,
		rec.SKU, rec.Name, rec.Slug, rec.CategoryType, rec.SEOTitleTemplate, rec.MetaDescription,
		rec.FSIPPrice, rec.YourPrice, rec.DealerCostEstimate,
		rec.StripePriceID, rec.StripeProductID,
		rec.SourceURL, rec.InStock,
		specs, nonNil(rec.CompatibilityList), nonNil(rec.OEMPartNumbers), nonNil(rec.Images),
	}, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, rec *model.PartsCatalogRecord) error {
	args, err := upsertArgs(uuid.New(), rec)
	if err != nil {
		return err
	}
	if _, err := r.DB.Exec(ctx, upsertSQL(r.Table), args...); err != nil {
		return fmt.Errorf("upsert %s into %s: %w", rec.SKU, r.Table, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
