package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsimport/internal/crawler"
	"partsimport/internal/model"
)

const chargerMarkdown = `# Green4 Charger

Price: $1,249.00

- Output: 24V / 60A
- Input: single phase 208-240 VAC
- Supports lead acid and lithium batteries

Compatible with: Toyota 8FBE15U, Crown SC5200.

OEM: GR4-2460
`

func TestExtractFullPage(t *testing.T) {
	page := &crawler.Page{
		Markdown: chargerMarkdown,
		HTML:     `<html><body><img src="/media/green4.png"></body></html>`,
		Metadata: crawler.Metadata{Title: "Green4 Charger 24V 60A - Forklift Battery Chargers"},
	}

	p := New().Extract(page, "https://supplier.example.com/chargers/green4-charger--24-GREEN4-4875")

	assert.Equal(t, "Green4 Charger 24V 60A", p.Title)
	assert.Equal(t, "24-GREEN4-4875", p.SKU)
	require.NotNil(t, p.Price)
	assert.Equal(t, 1249.0, *p.Price)
	assert.Equal(t, model.Specs{
		{Key: "voltage", Value: 24},
		{Key: "amperage", Value: 60},
		{Key: "phase", Value: "1-phase"},
		{Key: "lithium", Value: "compatible"},
		{Key: "lead_acid", Value: "compatible"},
	}, p.Specs)
	assert.Equal(t, []string{"Toyota 8FBE15U, Crown SC5200", "Toyota 8FBE15U", "Crown SC5200"}, p.CompatibilityList)
	assert.Equal(t, []string{"GR4-2460"}, p.OEMPartNumbers)
	assert.Equal(t, "https://supplier.example.com/media/green4.png", p.ImageURL)
	assert.Equal(t,
		"Green4 Charger 24V 60A. Specifications: voltage: 24, amperage: 60, phase: 1-phase. "+
			"Compatible with: Toyota 8FBE15U, Crown SC5200, Toyota 8FBE15U, Crown SC5200.",
		p.Description)
}

func TestExtractLowPriceIsAbsent(t *testing.T) {
	page := &crawler.Page{
		Markdown: "SKU: ABC-123-XYZ\nPrice: $12.50",
		Metadata: crawler.Metadata{Title: "Fuse kit"},
	}

	p := New().Extract(page, "https://supplier.example.com/p/fuse-kit--FK-1")

	assert.Equal(t, "ABC-123-XYZ", p.SKU)
	assert.Nil(t, p.Price)
	assert.Empty(t, p.ImageURL)
}

func TestExtractIsDeterministic(t *testing.T) {
	page := &crawler.Page{Markdown: chargerMarkdown, Metadata: crawler.Metadata{Title: "Green4 Charger"}}
	url := "https://supplier.example.com/chargers/green4-charger--24-GREEN4-4875"

	first := New().Extract(page, url)
	second := New().Extract(page, url)
	assert.Equal(t, first, second)
}

func TestExtractWithUnparseableURL(t *testing.T) {
	page := &crawler.Page{Metadata: crawler.Metadata{Title: "Mystery Part"}}

	p := New().Extract(page, "::not a url")
	assert.Equal(t, "MYSTERYPART", p.SKU)
}
