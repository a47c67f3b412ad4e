package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonesrussell/mcp-aws-blogs/internal/blogs"
)

const (
	categoriesResourceURI = "awsblogs://docs/categories"
	paginationResourceURI = "awsblogs://docs/pagination"
	searchTipsResourceURI = "awsblogs://docs/search-tips"
)

type resourceReadParams struct {
	URI string `json:"uri"`
}

func (s *Server) resources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         categoriesResourceURI,
			Name:        "Blog categories",
			Description: "The AWS blog categories this server can read, with their feed URLs.",
			MimeType:    "text/markdown",
		},
		{
			URI:         paginationResourceURI,
			Name:        "Pagination guide",
			Description: "How to read long blog posts in chunks with max_length and start_index.",
			MimeType:    "text/markdown",
		},
		{
			URI:         searchTipsResourceURI,
			Name:        "Search tips",
			Description: "How search_blog_posts ranks results and when to filter by category.",
			MimeType:    "text/markdown",
		},
	}
}

func (s *Server) handleResourcesList(req *Request) *Response {
	return successResponse(req.ID, map[string]any{"resources": s.resources()})
}

func (s *Server) handleResourcesRead(req *Request) *Response {
	var params resourceReadParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, InvalidParams, "Invalid resource parameters")
	}

	text, err := resourceText(params.URI)
	if err != nil {
		return errorResponse(req.ID, ResourceNotFound, err.Error())
	}

	result := map[string]any{
		"contents": []ResourceContent{
			{URI: params.URI, MimeType: "text/markdown", Text: text},
		},
	}
	return successResponse(req.ID, result)
}

func resourceText(uri string) (string, error) {
	switch uri {
	case categoriesResourceURI:
		return categoriesDoc(), nil
	case paginationResourceURI:
		return paginationDoc, nil
	case searchTipsResourceURI:
		return searchTipsDoc, nil
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func categoriesDoc() string {
	var b strings.Builder
	b.WriteString("# AWS blog categories\n\n")
	b.WriteString("| Slug | Name | RSS feed |\n|---|---|---|\n")
	for _, cat := range blogs.All() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cat.Key, cat.Name, cat.FeedURL)
	}
	return b.String()
}

const paginationDoc = `# Reading long posts

read_blog_post returns at most max_length characters (default 5000) starting
at start_index (default 0). When a post is truncated, the returned text ends
with a notice naming the start_index to pass for the next chunk. Keep calling
with the suggested start_index until the notice disappears. A start_index at
or past the end of the post returns "No more content available."
`

const searchTipsDoc = `# Search tips

search_blog_posts scans recent feed entries for your keywords. A match in a
post title counts more than a match in its summary, and posts matching
neither are dropped. Pass a category slug to search a single blog; without
one the search fans out across categories, so per-category depth is shallower.
Use list_blog_categories to discover valid slugs.
`
