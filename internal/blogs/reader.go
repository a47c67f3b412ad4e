package blogs

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// fallbackTitle heads the metadata block when no title could be extracted.
const fallbackTitle = "AWS Blog Post"

// ReadPost fetches a blog post, converts it to markdown with a metadata
// header, and returns the requested pagination window. Every failure is
// reported as a literal error-description string; this function never
// returns a protocol-level fault for content or network variability.
func (s *Service) ReadPost(ctx context.Context, rawURL string, maxLength, startIndex int) string {
	if !strings.HasPrefix(rawURL, s.baseURL) {
		return "Error reading blog post: URL must be from aws.amazon.com/blogs domain"
	}

	s.logger.Info("fetching blog post", logger.String("url", rawURL))

	html, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		s.logger.Error("blog post fetch failed",
			logger.String("url", rawURL),
			logger.Err(err),
		)
		return fmt.Sprintf("Error reading blog post: %v", err)
	}

	var meta Metadata
	if doc, derr := goquery.NewDocumentFromReader(strings.NewReader(html)); derr == nil {
		meta = ExtractMetadata(doc, rawURL)
	}
	s.recoverMetadata(&meta, html, rawURL)

	full := buildMetadataHeader(meta, rawURL) + Normalize(html)

	return Paginate(full, startIndex, maxLength)
}

// recoverMetadata fills title and author from a readability pass when the
// selector chains found neither. Still best-effort: a readability failure
// just leaves the fields absent.
func (s *Service) recoverMetadata(meta *Metadata, html, rawURL string) {
	if meta.Title != "" && meta.Author != "" {
		return
	}
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(article.Title)
	}
	if meta.Author == "" {
		meta.Author = strings.TrimSpace(article.Byline)
	}
}

// buildMetadataHeader renders the title/author/published/category/URL
// block prepended to the normalized body. Optional lines are emitted only
// when the field is present. The header counts toward pagination offsets
// like any other content.
func buildMetadataHeader(meta Metadata, rawURL string) string {
	title := meta.Title
	if title == "" {
		title = fallbackTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if meta.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s\n", meta.Author)
	}
	if meta.PublishedAt != nil {
		fmt.Fprintf(&b, "**Published:** %s\n", meta.PublishedAt.Format("January 2, 2006"))
	}
	if meta.Category != "" {
		fmt.Fprintf(&b, "**Category:** %s\n", meta.Category)
	}
	fmt.Fprintf(&b, "**URL:** %s\n\n---\n\n", rawURL)
	return b.String()
}
