package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"partsimport/internal/billing"
	"partsimport/internal/config"
	"partsimport/internal/crawler"
	"partsimport/internal/db"
	"partsimport/internal/importer"
	"partsimport/internal/model"
	"partsimport/internal/observability"
	"partsimport/internal/repository"
)

const metricsJob = "parts_import"

var (
	flagDryRun bool
	flagJSON   bool
)

var errImportFailed = errors.New("import failed")

var runCmd = &cobra.Command{
	Use:   "run <url>",
	Short: "Import a single supplier product URL",
	Long: `Run fetches the page, extracts the product and computes the sell price and
dealer cost estimate. Outside --dry-run it then reconciles the billing catalog
and upserts the catalog record keyed by SKU.

Examples:
  importer run https://supplier.example.com/chargers/green4-charger--24-GREEN4-4875
  importer run --dry-run --json https://supplier.example.com/chargers/green4-charger--24-GREEN4-4875`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Extract and price only; never write to billing or the store")
	runCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	log := logrus.NewEntry(logger).WithField("service", "importer")
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clients importer.Clients
	// invalid config is reported by Import before anything touches the network
	if cfg.Validate(flagDryRun) == nil {
		var cleanup func()
		var err error
		clients, cleanup, err = buildClients(ctx, cfg, flagDryRun, log)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	imp := importer.New(cfg, clients, metrics, log)
	res := imp.Import(ctx, args[0], importer.Options{DryRun: flagDryRun})

	if err := printResult(cmd.OutOrStdout(), res); err != nil {
		log.WithError(err).Error("failed to write result")
	}
	pushMetrics(metrics, cfg.PushgatewayURL, log)

	if !res.Success {
		return fmt.Errorf("%w: %s", errImportFailed, res.Error)
	}
	return nil
}

// buildClients constructs every external client once for the process. The
// returned cleanup releases pooled connections.
func buildClients(ctx context.Context, cfg *config.Config, dryRun bool, log *logrus.Entry) (importer.Clients, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var fetcher crawler.Fetcher = crawler.NewFirecrawlClient(cfg.FirecrawlBaseURL, cfg.FirecrawlAPIKey, log.WithField("component", "firecrawl"))
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return importer.Clients{}, cleanup, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		closers = append(closers, func() { _ = rdb.Close() })
		fetcher = &crawler.CachedFetcher{
			Next:   fetcher,
			Client: rdb,
			TTL:    cfg.ScrapeCacheTTL,
			Logger: log.WithField("component", "scrape_cache"),
		}
	}

	clients := importer.Clients{Fetcher: fetcher}
	if dryRun {
		return clients, cleanup, nil
	}

	catalog, err := billing.NewStripeCatalog(cfg.StripeSecretKey, nil)
	if err != nil {
		cleanup()
		return importer.Clients{}, func() {}, err
	}
	clients.Catalog = catalog

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			cleanup()
			return importer.Clients{}, func() {}, err
		}
		closers = append(closers, pool.Close)
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return importer.Clients{}, func() {}, err
		}
		clients.Store = repository.NewPostgresRepository(pool, cfg.CatalogTable)
	default:
		store, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.CatalogTable)
		if err != nil {
			cleanup()
			return importer.Clients{}, func() {}, err
		}
		clients.Store = store
	}

	log.WithFields(logrus.Fields{
		"store_backend": cfg.StoreBackend,
		"scrape_cache":  cfg.RedisURL != "",
	}).Debug("clients ready")
	return clients, cleanup, nil
}

func printResult(w io.Writer, res model.ImportResult) error {
	if flagJSON {
		return importer.WriteJSON(w, res)
	}
	return importer.WriteSummary(w, res)
}

func pushMetrics(m *observability.Metrics, gatewayURL string, log *logrus.Entry) {
	if gatewayURL == "" {
		return
	}
	// fresh context so an interrupted run still reports
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.Push(ctx, gatewayURL, metricsJob); err != nil {
		log.WithError(err).Warn("failed to push metrics")
	}
}
