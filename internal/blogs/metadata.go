package blogs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// authorSelectors is tried in order; the first element found wins.
var authorSelectors = []string{
	".author",
	".post-author",
	".entry-author",
	`[rel="author"]`,
	".byline",
}

// dateSelectors is tried in order. Unlike authors, a match that fails to
// parse does not end the chain: the next selector gets a chance.
var dateSelectors = []string{
	"time[datetime]",
	".published",
	".post-date",
	".entry-date",
}

// ExtractMetadata derives title, author, published date and category from
// a parsed blog post page. Every field is best-effort; a missing or
// malformed element means an absent field, never an error.
func ExtractMetadata(doc *goquery.Document, sourceURL string) Metadata {
	meta := Metadata{SourceURL: sourceURL}

	if title := doc.Find("h1").First(); title.Length() > 0 {
		meta.Title = strings.TrimSpace(title.Text())
	} else if title := doc.Find("title").First(); title.Length() > 0 {
		meta.Title = strings.TrimSpace(title.Text())
	}

	for _, sel := range authorSelectors {
		if elem := doc.Find(sel).First(); elem.Length() > 0 {
			meta.Author = strings.TrimSpace(elem.Text())
			break
		}
	}

	for _, sel := range dateSelectors {
		elem := doc.Find(sel).First()
		if elem.Length() == 0 {
			continue
		}
		candidate, ok := elem.Attr("datetime")
		if !ok || candidate == "" {
			candidate = strings.TrimSpace(elem.Text())
		}
		if t, ok := ParseDate(candidate); ok {
			meta.PublishedAt = &t
			break
		}
	}

	meta.Category = categoryFromURL(sourceURL)

	return meta
}

// categoryFromURL resolves the URL path segment following the blogs root
// against the registry and returns the display name, or "" if the segment
// is not a known category.
func categoryFromURL(sourceURL string) string {
	_, after, found := strings.Cut(sourceURL, "/blogs/")
	if !found {
		return ""
	}
	segment, _, _ := strings.Cut(after, "/")
	if cat, ok := Lookup(segment); ok {
		return cat.Name
	}
	return ""
}
