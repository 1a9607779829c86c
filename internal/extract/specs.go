package extract

import (
	"regexp"
	"strconv"

	"partsimport/internal/model"
)

const chemistryCompatible = "compatible"

var (
	voltageRe     = regexp.MustCompile(`\b(\d{2,3})\s*(?:V(?:DC|AC)?|[Vv]olts?)\b`)
	amperageRe    = regexp.MustCompile(`\b(\d{1,4})\s*(?:A|[Aa]mps?|[Aa]mperes?)\b`)
	threePhaseRe  = regexp.MustCompile(`(?i)\b(?:three|3)[\s-]*phase\b`)
	singlePhaseRe = regexp.MustCompile(`(?i)\b(?:single|1)[\s-]*phase\b`)

	chemistry = []struct {
		key string
		re  *regexp.Regexp
	}{
		{"lithium", regexp.MustCompile(`(?i)\blithium\b|\bli-ion\b|\blifepo4\b`)},
		{"lead_acid", regexp.MustCompile(`(?i)\blead[\s-]?acid\b|\bflooded\b`)},
		{"agm", regexp.MustCompile(`(?i)\bAGM\b`)},
		{"gel", regexp.MustCompile(`(?i)\bgel\b`)},
	}
)

// ExtractSpecs collects electrical attributes and battery chemistry flags.
// Chemistry checks are independent, a charger may support several.
func ExtractSpecs(text string) model.Specs {
	var specs model.Specs

	if v, ok := firstInt(voltageRe, text); ok {
		specs.Set("voltage", v)
	}
	if v, ok := firstInt(amperageRe, text); ok {
		specs.Set("amperage", v)
	}

	switch {
	case threePhaseRe.MatchString(text):
		specs.Set("phase", "3-phase")
	case singlePhaseRe.MatchString(text):
		specs.Set("phase", "1-phase")
	}

	for _, c := range chemistry {
		if c.re.MatchString(text) {
			specs.Set(c.key, chemistryCompatible)
		}
	}
	return specs
}

func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	return v, err == nil
}
