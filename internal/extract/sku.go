package extract

import (
	"path"
	"regexp"
	"strings"
)

// SKUStrategy proposes a SKU for a candidate page.
type SKUStrategy struct {
	Name string
	Find func(Candidate) (string, bool)
	// Gated strategies read free text and can pick up generic words, so their
	// answers go through IsGenericSKU first.
	Gated bool
}

var (
	skuLabel = regexp.MustCompile(`(?i)\b(?:sku|part\s*(?:#|no\.?|number)|model\s*(?:#|no\.?|number)|stock\s*code)\s*[:#]?\s*([A-Z0-9][A-Z0-9\-]{3,29})\b`)
	// NN-FAMILY[-suffix], e.g. 24-GREEN4-4875
	skuStructural = regexp.MustCompile(`\b(\d{2}-[A-Z][A-Z0-9]{2,}(?:-[A-Z0-9]+)?)\b`)
	// FAMILY-suffix without the numeric prefix, e.g. GREEN4-4875
	skuFamily = regexp.MustCompile(`\b([A-Z]{3,}\d+(?:-[A-Z0-9]+)+)\b`)

	skuPlaceholder = regexp.MustCompile(`(?i)^(?:N/?A|NONE|TBD|UNKNOWN|NULL|DEFAULT|SKU|X+|0+)$`)
	skuAllLetters  = regexp.MustCompile(`^[A-Za-z]{1,10}$`)

	urlNamePrefix = regexp.MustCompile(`^(?:[a-z]+-)+`)
	urlExtension  = regexp.MustCompile(`(?i)\.(?:html?|php|aspx?)$`)
	skuIllegal    = regexp.MustCompile(`[^A-Z0-9-]+`)
	slugIllegal   = regexp.MustCompile(`[^a-z0-9]+`)
)

func DefaultSKUStrategies() []SKUStrategy {
	return []SKUStrategy{
		{Name: "label", Find: regexpFinder(skuLabel), Gated: true},
		{Name: "structural", Find: regexpFinder(skuStructural), Gated: true},
		{Name: "family", Find: regexpFinder(skuFamily), Gated: true},
		{Name: "url", Find: SKUFromURL},
		{Name: "title", Find: SKUFromTitle},
	}
}

func regexpFinder(re *regexp.Regexp) func(Candidate) (string, bool) {
	return func(c Candidate) (string, bool) {
		m := re.FindStringSubmatch(c.Text)
		if m == nil {
			return "", false
		}
		return strings.ToUpper(strings.TrimSpace(m[1])), true
	}
}

// ResolveSKU runs the strategies in order and returns the first accepted
// answer, or "" when none produced one.
func ResolveSKU(c Candidate, strategies []SKUStrategy) string {
	for _, s := range strategies {
		sku, ok := s.Find(c)
		if !ok || sku == "" {
			continue
		}
		if s.Gated && IsGenericSKU(sku) {
			continue
		}
		return sku
	}
	return ""
}

// IsGenericSKU reports whether a text match looks like a word or a placeholder
// rather than an identifier.
func IsGenericSKU(s string) bool {
	if strings.IndexFunc(s, isSpace) >= 0 {
		return true
	}
	return skuAllLetters.MatchString(s) || skuPlaceholder.MatchString(s)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// SKUFromURL reads the SKU from the last path segment: whatever follows a
// "--" delimiter, or else the segment minus its lowercase product-name prefix.
func SKUFromURL(c Candidate) (string, bool) {
	if c.SourceURL == nil {
		return "", false
	}
	seg := path.Base(strings.TrimRight(c.SourceURL.Path, "/"))
	if seg == "." || seg == "/" {
		return "", false
	}
	seg = urlExtension.ReplaceAllString(seg, "")

	if i := strings.LastIndex(seg, "--"); i >= 0 {
		seg = seg[i+2:]
	} else {
		seg = urlNamePrefix.ReplaceAllString(seg, "")
	}

	sku := strings.Trim(skuIllegal.ReplaceAllString(strings.ToUpper(seg), ""), "-")
	return sku, sku != ""
}

// SKUFromTitle is the last resort: the slugified title, uppercased, without
// hyphens.
func SKUFromTitle(c Candidate) (string, bool) {
	sku := strings.ToUpper(strings.ReplaceAll(Slugify(c.Title), "-", ""))
	return sku, sku != ""
}

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(slugIllegal.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
