package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"partsimport/internal/model"
)

const maxCompatibilityLen = 100

// KnownBrands are the equipment makers whose model names are picked up even
// without a "compatible with" phrase.
var KnownBrands = []string{
	"Toyota", "Hyster", "Yale", "Crown", "Raymond", "Clark", "Caterpillar",
	"Komatsu", "Nissan", "Mitsubishi", "Linde", "Jungheinrich", "Doosan",
	"Hyundai", "TCM", "Genie", "JLG", "Skyjack",
}

var (
	compatClause = regexp.MustCompile(`(?i)\b(?:compatible\s+(?:with|for)|fits|works\s+with|for\s+use\s+with)\s*:?\s*([^\n.]+)`)
	brandModel   = regexp.MustCompile(`\b(?:` + strings.Join(KnownBrands, "|") + `)\s+[A-Z0-9][A-Za-z0-9/-]*\d[A-Za-z0-9/-]*`)

	oemRe = regexp.MustCompile(`(?i)\b(?:oem|original|replacement|cross[\s-]?ref(?:erence)?)(?:\s+(?:part|p/n))?(?:\s*(?:#|no\.?|numbers?))?\s*:\s*([A-Z0-9][A-Z0-9-]{2,29})`)
)

// ExtractCompatibility returns the compatible equipment models in first-seen
// order. Clause matches come before bare brand/model matches.
func ExtractCompatibility(text string) []string {
	set := model.NewOrderedSet()
	add := func(raw string) {
		v := cleanEntry(raw)
		if v == "" || utf8.RuneCountInString(v) > maxCompatibilityLen {
			return
		}
		set.Add(v)
	}

	for _, m := range compatClause.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range brandModel.FindAllString(text, -1) {
		add(m)
	}
	return set.Items()
}

// ExtractOEMPartNumbers returns cross-reference numbers, uppercased, without
// the product's own SKU.
func ExtractOEMPartNumbers(text, sku string) []string {
	set := model.NewOrderedSet()
	for _, m := range oemRe.FindAllStringSubmatch(text, -1) {
		v := strings.Trim(strings.ToUpper(m[1]), "-")
		if v == "" || strings.EqualFold(v, sku) {
			continue
		}
		set.Add(v)
	}
	return set.Items()
}

func cleanEntry(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ".,;:!?)-"))
}
