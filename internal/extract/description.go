package extract

import (
	"fmt"
	"strings"

	"partsimport/internal/model"
)

const (
	MaxDescriptionLen = 500
	descriptionSpecs  = 3
	descriptionModels = 5
)

// SynthesizeDescription builds the catalog description from structured data
// instead of copying scraped prose.
func SynthesizeDescription(title string, specs model.Specs, compat []string) string {
	var sb strings.Builder
	sb.WriteString(title)

	if len(specs) > 0 {
		n := min(len(specs), descriptionSpecs)
		parts := make([]string, 0, n)
		for _, e := range specs[:n] {
			parts = append(parts, fmt.Sprintf("%s: %v", strings.ReplaceAll(e.Key, "_", " "), e.Value))
		}
		sb.WriteString(". Specifications: ")
		sb.WriteString(strings.Join(parts, ", "))
	}

	if len(compat) > 0 {
		n := min(len(compat), descriptionModels)
		sb.WriteString(". Compatible with: ")
		sb.WriteString(strings.Join(compat[:n], ", "))
	}
	sb.WriteString(".")

	return Truncate(sb.String(), MaxDescriptionLen)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
