package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ImageStrategy proposes a product image URL.
type ImageStrategy struct {
	Name string
	Find func(Candidate) (string, bool)
}

const galleryRendition = "1280x1280"

var (
	// BigCommerce stencil thumbnails: .../images/stencil/100x100/products/...
	galleryThumb = regexp.MustCompile(`https?://[^\s"'()<>]+/images/stencil/[^/\s"'()<>]+/[^\s"'()<>]+?\.(?:jpe?g|png|webp|gif)`)
	gallerySize  = regexp.MustCompile(`/images/stencil/[^/]+/`)
	imageExt     = regexp.MustCompile(`(?i)\.(?:jpe?g|png|webp|gif)(?:$|[?#])`)
)

func DefaultImageStrategies() []ImageStrategy {
	return []ImageStrategy{
		{Name: "metadata", Find: imageFromMetadata},
		{Name: "og_meta", Find: imageFromOGMeta},
		{Name: "gallery", Find: imageFromGallery},
		{Name: "img_tag", Find: imageFromImgTag},
	}
}

// ResolveImage returns the first image a strategy finds, or "".
func ResolveImage(c Candidate, strategies []ImageStrategy) string {
	for _, s := range strategies {
		if u, ok := s.Find(c); ok && u != "" {
			return u
		}
	}
	return ""
}

func imageFromMetadata(c Candidate) (string, bool) {
	return absolute(c.SourceURL, c.OGImage)
}

func imageFromOGMeta(c Candidate) (string, bool) {
	if c.doc == nil {
		return "", false
	}
	content, ok := c.doc.Find(`meta[property="og:image"]`).First().Attr("content")
	if !ok {
		return "", false
	}
	return absolute(c.SourceURL, content)
}

func imageFromGallery(c Candidate) (string, bool) {
	m := galleryThumb.FindString(c.HTML)
	if m == "" {
		m = galleryThumb.FindString(c.Text)
	}
	if m == "" {
		return "", false
	}
	return gallerySize.ReplaceAllString(m, "/images/stencil/"+galleryRendition+"/"), true
}

func imageFromImgTag(c Candidate) (string, bool) {
	if c.doc == nil {
		return "", false
	}
	var found string
	c.doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"src", "data-src"} {
			src, ok := s.Attr(attr)
			src = strings.TrimSpace(src)
			if !ok || !imageExt.MatchString(src) {
				continue
			}
			if u, ok := absolute(c.SourceURL, src); ok {
				found = u
				return false
			}
		}
		return true
	})
	return found, found != ""
}

// absolute resolves ref against the origin of the source page.
func absolute(source *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		return u.String(), true
	}
	if source == nil {
		return "", false
	}
	origin := &url.URL{Scheme: source.Scheme, Host: source.Host, Path: "/"}
	resolved := origin.ResolveReference(u)
	return resolved.String(), true
}
