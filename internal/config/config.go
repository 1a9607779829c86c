package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
)

type Config struct {
	FirecrawlAPIKey  string
	FirecrawlBaseURL string

	StripeSecretKey string
	BillingCurrency string

	StoreBackend           string
	SupabaseURL            string
	SupabaseServiceRoleKey string
	DatabaseURL            string
	CatalogTable           string

	RedisURL       string
	ScrapeCacheTTL time.Duration

	PushgatewayURL string
	LogLevel       string
	LogFormat      string
}

func Load() *Config {
	// project root .env when run from cmd/importer, then the working directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		FirecrawlAPIKey:        os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlBaseURL:       getEnv("FIRECRAWL_BASE_URL", "https://api.firecrawl.dev"),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		BillingCurrency:        strings.ToLower(getEnv("BILLING_CURRENCY", "usd")),
		StoreBackend:           strings.ToLower(getEnv("STORE_BACKEND", BackendSupabase)),
		SupabaseURL:            os.Getenv("SUPABASE_URL"),
		SupabaseServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		CatalogTable:           getEnv("CATALOG_TABLE", "parts_catalog"),
		RedisURL:               os.Getenv("REDIS_URL"),
		ScrapeCacheTTL:         getDuration("SCRAPE_CACHE_TTL", 6*time.Hour),
		PushgatewayURL:         os.Getenv("PUSHGATEWAY_URL"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
	}
}

// MissingError lists every required variable that was empty.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Names, ", ")
}

// Validate checks the variables an import needs. A dry run only talks to the
// fetch service, so the billing and store credentials are not required.
func (c *Config) Validate(dryRun bool) error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	require("FIRECRAWL_API_KEY", c.FirecrawlAPIKey)
	if !dryRun {
		require("STRIPE_SECRET_KEY", c.StripeSecretKey)
		switch c.StoreBackend {
		case BackendPostgres:
			require("DATABASE_URL", c.DatabaseURL)
		case BackendSupabase, "":
			require("SUPABASE_URL", c.SupabaseURL)
			require("SUPABASE_SERVICE_ROLE_KEY", c.SupabaseServiceRoleKey)
		default:
			return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
		}
	}

	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	return nil
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return d
	}
	return parsed
}
