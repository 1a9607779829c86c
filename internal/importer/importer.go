// Package importer runs the single-URL import: fetch a supplier page, extract
// a product, price it, publish it to billing and upsert the catalog row.
package importer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"partsimport/internal/billing"
	"partsimport/internal/config"
	"partsimport/internal/crawler"
	"partsimport/internal/extract"
	"partsimport/internal/model"
	"partsimport/internal/observability"
	"partsimport/internal/pricing"
	"partsimport/internal/repository"
)

// Clients are built once per process and shared by every import.
type Clients struct {
	Fetcher crawler.Fetcher
	Catalog billing.Catalog
	Store   repository.CatalogStore
}

type Options struct {
	// DryRun stops after pricing. Billing and the store are never touched.
	DryRun bool
}

type Importer struct {
	cfg        *config.Config
	clients    Clients
	extractor  *extract.Extractor
	reconciler *billing.Reconciler
	metrics    *observability.Metrics
	logger     *logrus.Entry
}

func New(cfg *config.Config, clients Clients, metrics *observability.Metrics, logger *logrus.Entry) *Importer {
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	currency := ""
	if cfg != nil {
		currency = cfg.BillingCurrency
	}
	return &Importer{
		cfg:        cfg,
		clients:    clients,
		extractor:  extract.New(),
		reconciler: billing.NewReconciler(clients.Catalog, currency, metrics, logger),
		metrics:    metrics,
		logger:     logger,
	}
}

// Import never returns an error; failures are reported through the result's
// ErrorKind and Error fields.
func (i *Importer) Import(ctx context.Context, rawURL string, opts Options) model.ImportResult {
	log := i.logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"url":     rawURL,
		"dry_run": opts.DryRun,
	})
	res := model.ImportResult{DryRun: opts.DryRun}

	if err := i.checkConfig(opts); err != nil {
		return i.fail(log, res, KindConfigurationMissing, err)
	}

	u, err := ValidateURL(rawURL)
	if err != nil {
		return i.fail(log, res, KindInvalidInput, err)
	}
	sourceURL := u.String()

	done := i.stage("fetch")
	page, err := i.clients.Fetcher.Fetch(ctx, sourceURL)
	done()
	if err != nil {
		return i.fail(log, res, KindFetchFailed, err)
	}

	done = i.stage("extract")
	product := i.extractor.Extract(page, sourceURL)
	done()
	res.Name = product.Title
	if product.SKU == "" {
		return i.fail(log, res, KindExtractionIncomplete, errors.New("no SKU could be derived from the page"))
	}
	res.SKU = product.SKU
	log = log.WithField("sku", product.SKU)

	quote := pricing.Calculate(product.Price)
	res.SellPrice = quote.SellPrice
	res.CostEstimate = quote.CostEstimate
	if quote.SellPrice == nil {
		log.Warn("no usable price on page, importing without billing linkage")
	}

	if opts.DryRun {
		res.Success = true
		i.finish(log, res, "dry_run")
		return res
	}

	done = i.stage("reconcile")
	link, err := i.reconciler.Reconcile(ctx, product, quote.SellPrice, sourceURL)
	done()
	if err != nil {
		return i.fail(log, res, KindReconciliationFailed, err)
	}
	if link != nil {
		res.BillingProductID = link.ProductID
		res.BillingPriceID = link.PriceID
	}

	rec := BuildRecord(product, quote, link, sourceURL)
	done = i.stage("persist")
	err = i.clients.Store.Upsert(ctx, rec)
	done()
	if err != nil {
		if link != nil {
			// billing already points at the new price; nothing rolls it back
			log.WithFields(logrus.Fields{
				"billing_product_id": link.ProductID,
				"billing_price_id":   link.PriceID,
			}).Error("catalog upsert failed after billing write, manual reconciliation required")
		}
		return i.fail(log, res, KindPersistenceFailed, err)
	}

	res.Success = true
	i.finish(log, res, "success")
	return res
}

func (i *Importer) checkConfig(opts Options) error {
	if i.cfg == nil {
		return errors.New("no configuration loaded")
	}
	if err := i.cfg.Validate(opts.DryRun); err != nil {
		return err
	}
	if i.clients.Fetcher == nil {
		return errors.New("fetch client is not configured")
	}
	if !opts.DryRun && (i.clients.Catalog == nil || i.clients.Store == nil) {
		return errors.New("billing and store clients are required outside dry run")
	}
	return nil
}

func (i *Importer) stage(name string) func() {
	start := time.Now()
	return func() {
		i.metrics.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func (i *Importer) fail(log *logrus.Entry, res model.ImportResult, kind Kind, err error) model.ImportResult {
	ierr := &Error{Kind: kind, Err: err}
	res.Success = false
	res.ErrorKind = string(kind)
	res.Error = ierr.Error()
	log.WithError(err).WithField("error_kind", kind).Error("import failed")
	i.metrics.ImportsTotal.WithLabelValues(string(kind)).Inc()
	return res
}

func (i *Importer) finish(log *logrus.Entry, res model.ImportResult, outcome string) {
	i.metrics.ImportsTotal.WithLabelValues(outcome).Inc()
	fields := logrus.Fields{"outcome": outcome}
	if res.SellPrice != nil {
		fields["sell_price"] = *res.SellPrice
	}
	if res.BillingPriceID != "" {
		fields["billing_price_id"] = res.BillingPriceID
	}
	log.WithFields(fields).Info("import finished")
}
