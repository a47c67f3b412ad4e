package mcp

// tools returns the full tool catalogue exposed via tools/list.
func (s *Server) tools() []Tool {
	return []Tool{
		{
			Name: "read_blog_post",
			Description: "Fetch an AWS blog post and return it as markdown with a metadata header. " +
				"Long posts are paginated; follow the truncation notice with start_index to continue reading.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url": map[string]any{
						"type":        "string",
						"description": "Full URL of the blog post (must be under aws.amazon.com/blogs)",
					},
					"max_length": map[string]any{
						"type":        "integer",
						"description": "Maximum number of characters to return (default 5000)",
						"minimum":     1,
						"maximum":     999999,
					},
					"start_index": map[string]any{
						"type":        "integer",
						"description": "Character offset to start reading from (default 0)",
						"minimum":     0,
					},
				},
				"required": []string{"url"},
			},
		},
		{
			Name: "search_blog_posts",
			Description: "Search recent AWS blog posts by keyword. Title matches rank above summary matches. " +
				"Optionally restrict the search to a single category.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Keywords to search for",
					},
					"category": map[string]any{
						"type":        "string",
						"description": "Category slug to search within (omit to search across categories)",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results (default 10)",
						"minimum":     1,
						"maximum":     50,
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        "list_blog_categories",
			Description: "List the available AWS blog categories with their page and RSS feed URLs.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name: "get_recent_posts",
			Description: "Get the most recent AWS blog posts, newest first. " +
				"Optionally restrict to a single category; otherwise posts are merged across categories.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Category slug to read from (omit to merge across categories)",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of posts (default 10)",
						"minimum":     1,
						"maximum":     50,
					},
				},
			},
		},
		{
			Name:        "get_rss_feed",
			Description: "Fetch the raw RSS feed entries for a single AWS blog category, in feed order.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Category slug of the feed to fetch",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of entries (default 20)",
						"minimum":     1,
						"maximum":     100,
					},
				},
				"required": []string{"category"},
			},
		},
	}
}
