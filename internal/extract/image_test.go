package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partsimport/internal/crawler"
)

func imageCandidate(t *testing.T, ogImage, html string) Candidate {
	t.Helper()
	page := &crawler.Page{HTML: html, Metadata: crawler.Metadata{OGImage: ogImage}}
	return NewCandidate(page, "Charger", mustURL(t, "https://supplier.example.com/c/p"))
}

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name    string
		ogImage string
		html    string
		want    string
	}{
		{
			name:    "metadata og image first",
			ogImage: "https://cdn.example.com/og.jpg",
			html:    `<html><head><meta property="og:image" content="https://cdn.example.com/other.jpg"></head></html>`,
			want:    "https://cdn.example.com/og.jpg",
		},
		{
			name: "html og meta resolved against origin",
			html: `<html><head><meta property="og:image" content="/img/og.png"></head><body></body></html>`,
			want: "https://supplier.example.com/img/og.png",
		},
		{
			name: "gallery thumbnail upsized",
			html: `<html><body><img src="https://cdn11.bigcommerce.com/s-abc/images/stencil/100x100/products/123/456/charger__12345.1600000000.jpg?c=2"></body></html>`,
			want: "https://cdn11.bigcommerce.com/s-abc/images/stencil/1280x1280/products/123/456/charger__12345.1600000000.jpg",
		},
		{
			name: "first img with image extension",
			html: `<html><body><img src="/assets/logo.svg"><img src="photos/charger.JPG"><img src="/second.png"></body></html>`,
			want: "https://supplier.example.com/photos/charger.JPG",
		},
		{
			name: "protocol relative img",
			html: `<html><body><img data-src="//cdn.example.com/lazy.webp"></body></html>`,
			want: "https://cdn.example.com/lazy.webp",
		},
		{
			name: "nothing found",
			html: `<html><body><p>No pictures</p><img src="data:image/png;base64,AAAA"></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := imageCandidate(t, tt.ogImage, tt.html)
			assert.Equal(t, tt.want, ResolveImage(c, DefaultImageStrategies()))
		})
	}
}
