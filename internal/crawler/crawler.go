package crawler

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

var defaultHTTPClient = &http.Client{Timeout: 120 * time.Second}

// Page is what the fetch service returns for one URL.
type Page struct {
	URL      string   `json:"url"`
	Markdown string   `json:"markdown"`
	HTML     string   `json:"html"`
	Metadata Metadata `json:"metadata"`
}

type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"ogImage"`
	SourceURL   string `json:"sourceURL"`
	StatusCode  int    `json:"statusCode"`
}

// Fetcher retrieves rendered content for a product page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// FetchError is returned when the fetch service rejects a request or reports
// an unsuccessful scrape.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the service answered 2xx with success=false
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scrape %s: status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("scrape %s: %s", e.URL, e.Message)
}
