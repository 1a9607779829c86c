package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateListsEveryMissingName(t *testing.T) {
	cfg := &Config{StoreBackend: BackendSupabase}

	err := cfg.Validate(false)
	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{
		"FIRECRAWL_API_KEY",
		"STRIPE_SECRET_KEY",
		"SUPABASE_URL",
		"SUPABASE_SERVICE_ROLE_KEY",
	}, missing.Names)
	assert.Contains(t, err.Error(), "FIRECRAWL_API_KEY, STRIPE_SECRET_KEY")
}

func TestValidateDryRunNeedsOnlyFetchKey(t *testing.T) {
	cfg := &Config{FirecrawlAPIKey: "fc-key"}
	assert.NoError(t, cfg.Validate(true))

	cfg.FirecrawlAPIKey = " "
	err := cfg.Validate(true)
	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"FIRECRAWL_API_KEY"}, missing.Names)
}

func TestValidatePostgresBackend(t *testing.T) {
	cfg := &Config{
		FirecrawlAPIKey: "fc",
		StripeSecretKey: "sk_test",
		StoreBackend:    BackendPostgres,
	}
	err := cfg.Validate(false)
	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"DATABASE_URL"}, missing.Names)

	cfg.DatabaseURL = "postgres://localhost/catalog"
	assert.NoError(t, cfg.Validate(false))
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := &Config{FirecrawlAPIKey: "fc", StripeSecretKey: "sk", StoreBackend: "mongo"}
	assert.ErrorContains(t, cfg.Validate(false), "unknown STORE_BACKEND")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIRECRAWL_API_KEY", "fc-123")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("BILLING_CURRENCY", "USD")
	t.Setenv("SCRAPE_CACHE_TTL", "90m")

	cfg := Load()
	assert.Equal(t, "fc-123", cfg.FirecrawlAPIKey)
	assert.Equal(t, "https://api.firecrawl.dev", cfg.FirecrawlBaseURL)
	assert.Equal(t, BackendSupabase, cfg.StoreBackend)
	assert.Equal(t, "usd", cfg.BillingCurrency)
	assert.Equal(t, "parts_catalog", cfg.CatalogTable)
	assert.Equal(t, 90*time.Minute, cfg.ScrapeCacheTTL)
}
