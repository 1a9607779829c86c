package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"partsimport/internal/model"
	"partsimport/internal/observability"
	"partsimport/internal/pricing"
)

type Action string

const (
	ActionReused     Action = "reused"
	ActionSuperseded Action = "superseded"
	ActionCreated    Action = "created"
)

// Linkage identifies the billing product and the price a record now points at.
type Linkage struct {
	ProductID string
	PriceID   string
	Action    Action
}

// Reconciler makes the billing catalog hold exactly one active price per SKU
// that matches the computed sell price.
type Reconciler struct {
	Catalog  Catalog
	Currency string
	Metrics  *observability.Metrics
	Logger   *logrus.Entry
}

func NewReconciler(catalog Catalog, currency string, metrics *observability.Metrics, logger *logrus.Entry) *Reconciler {
	if currency == "" {
		currency = "usd"
	}
	return &Reconciler{Catalog: catalog, Currency: strings.ToLower(currency), Metrics: metrics, Logger: logger}
}

// Reconcile returns nil, nil when there is no sell price to publish.
func (r *Reconciler) Reconcile(ctx context.Context, p model.ExtractedProduct, sellPrice *float64, sourceURL string) (*Linkage, error) {
	if sellPrice == nil {
		return nil, nil
	}
	amount := pricing.ToMinorUnits(*sellPrice)
	log := r.log().WithFields(logrus.Fields{"sku": p.SKU, "unit_amount": amount})

	existing, err := r.Catalog.FindProductBySKU(ctx, p.SKU)
	if err != nil {
		return nil, fmt.Errorf("search product %s: %w", p.SKU, err)
	}

	var link *Linkage
	if existing == nil {
		link, err = r.create(ctx, p, amount, sourceURL)
	} else {
		link, err = r.update(ctx, existing, amount)
	}
	if err != nil {
		return nil, err
	}

	if r.Metrics != nil {
		r.Metrics.Reconciliation.WithLabelValues(string(link.Action)).Inc()
	}
	log.WithFields(logrus.Fields{
		"product_id": link.ProductID,
		"price_id":   link.PriceID,
		"action":     link.Action,
	}).Info("billing catalog reconciled")
	return link, nil
}

func (r *Reconciler) create(ctx context.Context, p model.ExtractedProduct, amount int64, sourceURL string) (*Linkage, error) {
	product, err := r.Catalog.CreateProduct(ctx, ProductInput{
		Name:        p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Metadata: map[string]string{
			MetadataSKU:       p.SKU,
			MetadataSourceURL: sourceURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create product %s: %w", p.SKU, err)
	}

	price, err := r.Catalog.CreatePrice(ctx, product.ID, amount, r.Currency)
	if err != nil {
		return nil, fmt.Errorf("create price for product %s: %w", product.ID, err)
	}
	return &Linkage{ProductID: product.ID, PriceID: price.ID, Action: ActionCreated}, nil
}

func (r *Reconciler) update(ctx context.Context, product *Product, amount int64) (*Linkage, error) {
	active, err := r.Catalog.ListActivePrices(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("list prices for product %s: %w", product.ID, err)
	}

	for _, pr := range active {
		if pr.UnitAmount == amount && strings.EqualFold(pr.Currency, r.Currency) {
			return &Linkage{ProductID: product.ID, PriceID: pr.ID, Action: ActionReused}, nil
		}
	}

	// the new price must exist before the old ones go away
	price, err := r.Catalog.CreatePrice(ctx, product.ID, amount, r.Currency)
	if err != nil {
		return nil, fmt.Errorf("create price for product %s: %w", product.ID, err)
	}

	if product.DefaultPriceID != "" {
		if err := r.Catalog.SetDefaultPrice(ctx, product.ID, price.ID); err != nil {
			return nil, fmt.Errorf("set default price on product %s: %w", product.ID, err)
		}
	}

	for _, pr := range active {
		if pr.ID == price.ID {
			continue
		}
		if err := r.Catalog.DeactivatePrice(ctx, pr.ID); err != nil {
			return nil, fmt.Errorf("deactivate price %s: %w", pr.ID, err)
		}
	}
	return &Linkage{ProductID: product.ID, PriceID: price.ID, Action: ActionSuperseded}, nil
}

func (r *Reconciler) log() *logrus.Entry {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
