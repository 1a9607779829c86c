// Package extract turns scraped supplier pages into catalog products.
//
// Every field is derived by small pure functions built from regular
// expressions. Fields with several possible sources (SKU, image) are resolved
// by an ordered list of strategies where the first plausible answer wins.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"partsimport/internal/crawler"
	"partsimport/internal/model"
)

// Candidate is the input shared by every strategy.
type Candidate struct {
	Title     string
	Text      string // title and markdown, the haystack for text patterns
	HTML      string
	OGImage   string
	SourceURL *url.URL

	doc *goquery.Document
}

// NewCandidate prepares page content for extraction. A nil source URL is
// allowed; URL based strategies then yield nothing.
func NewCandidate(page *crawler.Page, title string, source *url.URL) Candidate {
	c := Candidate{
		Title:     title,
		Text:      title + "\n" + page.Markdown,
		HTML:      page.HTML,
		OGImage:   strings.TrimSpace(page.Metadata.OGImage),
		SourceURL: source,
	}
	if page.HTML != "" {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML)); err == nil {
			c.doc = doc
		}
	}
	return c
}

// Extractor holds the strategy chains. The zero value is not usable; use New.
type Extractor struct {
	SKUStrategies   []SKUStrategy
	ImageStrategies []ImageStrategy
}

func New() *Extractor {
	return &Extractor{
		SKUStrategies:   DefaultSKUStrategies(),
		ImageStrategies: DefaultImageStrategies(),
	}
}

// Extract never fails. An empty SKU in the result means no strategy produced
// one and the caller must treat the page as unusable.
func (e *Extractor) Extract(page *crawler.Page, sourceURL string) model.ExtractedProduct {
	title := CleanTitle(page.Metadata.Title, page.Markdown)

	source, err := url.Parse(sourceURL)
	if err != nil || source.Host == "" {
		source = nil
	}
	c := NewCandidate(page, title, source)

	p := model.ExtractedProduct{
		Title: title,
		SKU:   ResolveSKU(c, e.SKUStrategies),
		Price: ExtractPrice(c.Text),
		Specs: ExtractSpecs(c.Text),
	}
	p.CompatibilityList = ExtractCompatibility(c.Text)
	p.OEMPartNumbers = ExtractOEMPartNumbers(c.Text, p.SKU)
	p.Description = SynthesizeDescription(p.Title, p.Specs, p.CompatibilityList)
	p.ImageURL = ResolveImage(c, e.ImageStrategies)
	return p
}
