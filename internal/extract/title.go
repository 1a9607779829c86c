package extract

import (
	"regexp"
	"strings"
)

const UnknownTitle = "Unknown Product"

var (
	titleSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s+[-–—|]\s+Forklift.*$`),
		regexp.MustCompile(`(?i)\s+[-–—|]\s+(?:Industrial\s+)?Battery\s+Chargers?(?:\s+[-–—|].*)?$`),
		regexp.MustCompile(`\s+\|\s+[^|]+$`),
	}
	markdownH1 = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	spaceRun   = regexp.MustCompile(`\s+`)
)

// CleanTitle picks the page title, falling back to the first markdown H1, and
// strips supplier boilerplate from its end.
func CleanTitle(metaTitle, markdown string) string {
	title := strings.TrimSpace(metaTitle)
	if title == "" {
		if m := markdownH1.FindStringSubmatch(markdown); m != nil {
			title = strings.TrimSpace(m[1])
		}
	}

	for _, re := range titleSuffixes {
		title = re.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(spaceRun.ReplaceAllString(title, " "))

	if title == "" {
		return UnknownTitle
	}
	return title
}
