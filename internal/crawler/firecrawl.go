package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    *struct {
		Markdown string   `json:"markdown"`
		HTML     string   `json:"html"`
		Metadata Metadata `json:"metadata"`
	} `json:"data"`
}

// FirecrawlClient calls the Firecrawl scrape endpoint.
type FirecrawlClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *logrus.Entry
}

func NewFirecrawlClient(baseURL, apiKey string, logger *logrus.Entry) *FirecrawlClient {
	return &FirecrawlClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: defaultHTTPClient,
		Logger:     logger,
	}
}

func (c *FirecrawlClient) Fetch(ctx context.Context, url string) (*Page, error) {
	body, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown", "html"},
		OnlyMainContent: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scrape response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed scrapeResponse
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &parsed) == nil && parsed.Error != "" {
			msg = parsed.Error
		}
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Message: msg}
	}

	var result scrapeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode scrape response: %w", err)
	}
	if !result.Success || result.Data == nil {
		msg := result.Error
		if msg == "" {
			msg = "scrape reported success=false"
		}
		return nil, &FetchError{URL: url, Message: msg}
	}

	page := &Page{
		URL:      url,
		Markdown: result.Data.Markdown,
		HTML:     result.Data.HTML,
		Metadata: result.Data.Metadata,
	}

	if strings.TrimSpace(page.Markdown) == "" && page.HTML != "" {
		md, err := HTMLToMarkdown(page.HTML)
		if err != nil {
			c.log().WithError(err).Warn("markdown fallback failed")
		} else {
			page.Markdown = md
		}
	}

	c.log().WithFields(logrus.Fields{
		"url":           url,
		"markdown_size": len(page.Markdown),
		"html_size":     len(page.HTML),
	}).Debug("page scraped")

	return page, nil
}

func (c *FirecrawlClient) log() *logrus.Entry {
	if c.Logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return c.Logger
}
