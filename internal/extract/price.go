package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	MinPrice = 50.0
	MaxPrice = 50000.0
)

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:price|msrp|cost)\s*:?\s*\$\s*([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\bUSD\s*\$?\s*([\d,]+(?:\.\d{1,2})?)`),
}

// ExtractPrice returns the supplier MSRP or nil. Each pattern contributes its
// first match; a value outside (MinPrice, MaxPrice) moves on to the next
// pattern.
func ExtractPrice(text string) *float64 {
	for _, re := range pricePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, ok := ParsePrice(m[1])
		if !ok || !PriceInRange(v) {
			continue
		}
		return &v
	}
	return nil
}

// ParsePrice strips currency symbols, separators and spaces before parsing.
func ParsePrice(s string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "USD", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func PriceInRange(v float64) bool {
	return v > MinPrice && v < MaxPrice
}
