package model

// ExtractedProduct is the normalized view of a supplier page. It only lives for
// the duration of one import.
type ExtractedProduct struct {
	Title             string
	SKU               string
	Description       string
	ImageURL          string
	Price             *float64 // supplier MSRP, nil when absent or out of range
	Specs             Specs
	CompatibilityList []string
	OEMPartNumbers    []string
}

// CategoryBatteryCharger is the category every record from this importer gets.
const CategoryBatteryCharger = "battery_charger"

// PartsCatalogRecord is a row of the parts catalog, unique by SKU.
type PartsCatalogRecord struct {
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	CategoryType     string `json:"category_type"`
	SEOTitleTemplate string `json:"seo_title_template"`
	MetaDescription  string `json:"meta_description"`

	FSIPPrice          *float64 `json:"fsip_price"`
	YourPrice          *float64 `json:"your_price"`
	DealerCostEstimate *float64 `json:"dealer_cost_estimate"`

	StripePriceID   *string `json:"stripe_price_id"`
	StripeProductID *string `json:"stripe_product_id"`

	SourceURL string `json:"source_url"`
	InStock   bool   `json:"in_stock"`

	Specs             Specs    `json:"specs"`
	CompatibilityList []string `json:"compatibility_list"`
	OEMPartNumbers    []string `json:"oem_part_numbers"`
	Images            []string `json:"images"`
}

// ImportResult is what a single import reports back to its caller.
type ImportResult struct {
	Success          bool     `json:"success"`
	SKU              string   `json:"sku,omitempty"`
	Name             string   `json:"name,omitempty"`
	SellPrice        *float64 `json:"sellPrice"`
	CostEstimate     *float64 `json:"costEstimate"`
	BillingPriceID   string   `json:"billingPriceId,omitempty"`
	BillingProductID string   `json:"billingProductId,omitempty"`
	DryRun           bool     `json:"dryRun,omitempty"`
	ErrorKind        string   `json:"errorKind,omitempty"`
	Error            string   `json:"error,omitempty"`
}
