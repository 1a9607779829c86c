package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *FirecrawlClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFirecrawlClient(srv.URL+"/", "fc-test", nil)
}

func TestFetchSendsScrapeRequest(t *testing.T) {
	var got scrapeRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/scrape", r.URL.Path)
		assert.Equal(t, "Bearer fc-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"markdown": "# Green4 Charger\nPrice: $1,299.00",
				"html": "<html><body><h1>Green4 Charger</h1></body></html>",
				"metadata": {"title": "Green4 Charger - Forklift Parts", "ogImage": "https://cdn.example.com/g4.jpg", "statusCode": 200}
			}
		}`))
	})

	page, err := client.Fetch(context.Background(), "https://supplier.example.com/p/green4--24-GREEN4-4875")
	require.NoError(t, err)

	assert.Equal(t, "https://supplier.example.com/p/green4--24-GREEN4-4875", got.URL)
	assert.Equal(t, []string{"markdown", "html"}, got.Formats)
	assert.True(t, got.OnlyMainContent)

	assert.Equal(t, "Green4 Charger - Forklift Parts", page.Metadata.Title)
	assert.Equal(t, "https://cdn.example.com/g4.jpg", page.Metadata.OGImage)
	assert.Contains(t, page.Markdown, "Price: $1,299.00")
}

func TestFetchNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"success": false, "error": "Insufficient credits"}`))
	})

	_, err := client.Fetch(context.Background(), "https://supplier.example.com/p/1")
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusPaymentRequired, fe.StatusCode)
	assert.Equal(t, "Insufficient credits", fe.Message)
}

func TestFetchExplicitFailureFlag(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "page blocked"}`))
	})

	_, err := client.Fetch(context.Background(), "https://supplier.example.com/p/1")
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
	assert.Contains(t, err.Error(), "page blocked")
}

func TestFetchFallsBackToLocalMarkdown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"markdown": "", "html": "<html><body><nav>menu</nav><main><h1>Charger</h1><p>SKU: ABC-123-XYZ</p></main></body></html>", "metadata": {}}}`))
	})

	page, err := client.Fetch(context.Background(), "https://supplier.example.com/p/1")
	require.NoError(t, err)
	assert.Contains(t, page.Markdown, "SKU: ABC-123-XYZ")
	assert.NotContains(t, page.Markdown, "menu")
}
