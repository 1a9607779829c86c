package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeCatalog implements Catalog on top of the Stripe products and prices
// APIs. It holds its own client so the process-wide stripe.Key stays unused.
type StripeCatalog struct {
	api *client.API
}

// NewStripeCatalog creates the catalog client. backends may be nil to use the
// Stripe defaults.
func NewStripeCatalog(secretKey string, backends *stripe.Backends) (*StripeCatalog, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	return &StripeCatalog{api: client.New(secretKey, backends)}, nil
}

func (s *StripeCatalog) FindProductBySKU(ctx context.Context, sku string) (*Product, error) {
	params := &stripe.ProductSearchParams{}
	params.Query = skuSearchQuery(sku)
	params.Context = ctx

	iter := s.api.Products.Search(params)
	for iter.Next() {
		p := iter.Product()
		// search is eventually consistent on metadata, compare again
		if p.Metadata[MetadataSKU] == sku {
			return toProduct(p), nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, handleStripeError(err)
	}
	return nil, nil
}

func (s *StripeCatalog) ListActivePrices(ctx context.Context, productID string) ([]Price, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Context = ctx

	var prices []Price
	iter := s.api.Prices.List(params)
	for iter.Next() {
		prices = append(prices, toPrice(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		return nil, handleStripeError(err)
	}
	return prices, nil
}

func (s *StripeCatalog) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	params := &stripe.ProductParams{
		Name:     stripe.String(in.Name),
		Metadata: in.Metadata,
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	if in.ImageURL != "" {
		params.Images = stripe.StringSlice([]string{in.ImageURL})
	}
	params.Context = ctx

	p, err := s.api.Products.New(params)
	if err != nil {
		return nil, handleStripeError(err)
	}
	return toProduct(p), nil
}

func (s *StripeCatalog) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*Price, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(strings.ToLower(currency)),
	}
	params.Context = ctx

	pr, err := s.api.Prices.New(params)
	if err != nil {
		return nil, handleStripeError(err)
	}
	out := toPrice(pr)
	return &out, nil
}

func (s *StripeCatalog) DeactivatePrice(ctx context.Context, priceID string) error {
	params := &stripe.PriceParams{Active: stripe.Bool(false)}
	params.Context = ctx

	if _, err := s.api.Prices.Update(priceID, params); err != nil {
		return handleStripeError(err)
	}
	return nil
}

func (s *StripeCatalog) SetDefaultPrice(ctx context.Context, productID, priceID string) error {
	params := &stripe.ProductParams{DefaultPrice: stripe.String(priceID)}
	params.Context = ctx

	if _, err := s.api.Products.Update(productID, params); err != nil {
		return handleStripeError(err)
	}
	return nil
}

// skuSearchQuery builds a Stripe search clause matching the SKU metadata.
func skuSearchQuery(sku string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(sku)
	return fmt.Sprintf("metadata['%s']:'%s'", MetadataSKU, escaped)
}

func toProduct(p *stripe.Product) *Product {
	out := &Product{ID: p.ID, Name: p.Name, Metadata: p.Metadata}
	if p.DefaultPrice != nil {
		out.DefaultPriceID = p.DefaultPrice.ID
	}
	return out
}

func toPrice(pr *stripe.Price) Price {
	out := Price{
		ID:         pr.ID,
		UnitAmount: pr.UnitAmount,
		Currency:   string(pr.Currency),
		Active:     pr.Active,
	}
	if pr.Product != nil {
		out.ProductID = pr.Product.ID
	}
	return out
}

// handleStripeError keeps the Stripe message and code readable in logs.
func handleStripeError(err error) error {
	if stripeErr, ok := err.(*stripe.Error); ok {
		return fmt.Errorf("stripe %s (%s): %s", stripeErr.Type, stripeErr.Code, stripeErr.Msg)
	}
	return err
}
