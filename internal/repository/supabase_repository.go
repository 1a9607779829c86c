package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"partsimport/internal/model"
)

type SupabaseRepository struct {
	Client *supabase.Client
	Table  string
}

func NewSupabaseRepository(url, serviceRoleKey, table string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, serviceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	if table == "" {
		table = DefaultTable
	}
	return &SupabaseRepository{Client: client, Table: table}, nil
}

// Upsert merges on the sku column. The postgrest client has no context
// support, so ctx is only checked before the request goes out.
func (r *SupabaseRepository) Upsert(ctx context.Context, rec *model.PartsCatalogRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.Client.From(r.Table).Upsert(rec, "sku", "minimal", "").Execute()
	if err != nil {
		return fmt.Errorf("upsert %s into %s: %w", rec.SKU, r.Table, err)
	}
	return nil
}
