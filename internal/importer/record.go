package importer

import (
	"strings"

	"partsimport/internal/billing"
	"partsimport/internal/extract"
	"partsimport/internal/model"
	"partsimport/internal/pricing"
)

const (
	seoTitleTemplate   = "{name} | {sku} | Forklift Battery Charger"
	maxSlugLen         = 100
	maxMetaDescription = 160
)

// BuildRecord maps an extraction, its quote and the billing linkage onto a
// catalog row. link is nil when nothing was published to billing.
func BuildRecord(p model.ExtractedProduct, q pricing.Quote, link *billing.Linkage, sourceURL string) *model.PartsCatalogRecord {
	rec := &model.PartsCatalogRecord{
		SKU:               p.SKU,
		Name:              p.Title,
		Slug:              slug(p.Title, p.SKU),
		CategoryType:      model.CategoryBatteryCharger,
		SEOTitleTemplate:  strings.NewReplacer("{name}", p.Title, "{sku}", p.SKU).Replace(seoTitleTemplate),
		MetaDescription:   strings.TrimSpace(extract.Truncate(p.Description, maxMetaDescription)),
		SourceURL:         sourceURL,
		InStock:           true,
		Specs:             p.Specs,
		CompatibilityList: orEmpty(p.CompatibilityList),
		OEMPartNumbers:    orEmpty(p.OEMPartNumbers),
		Images:            []string{},
	}
	if rec.Specs == nil {
		rec.Specs = model.Specs{}
	}
	if p.ImageURL != "" {
		rec.Images = []string{p.ImageURL}
	}

	if q.SellPrice != nil && q.CostEstimate != nil && q.MSRP != nil {
		rec.FSIPPrice = q.MSRP
		rec.YourPrice = q.SellPrice
		rec.DealerCostEstimate = q.CostEstimate
	}

	if link != nil {
		priceID, productID := link.PriceID, link.ProductID
		rec.StripePriceID = &priceID
		rec.StripeProductID = &productID
	}
	return rec
}

func slug(name, sku string) string {
	s := extract.Slugify(name)
	if s == "" || name == extract.UnknownTitle {
		s = extract.Slugify(sku)
	}
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	return s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
