package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonesrussell/mcp-aws-blogs/internal/blogs"
	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

const (
	defaultReadMaxLength = 5000
	maxReadLength        = 999999
	defaultSearchLimit   = 10
	maxSearchLimit       = 50
	defaultRecentLimit   = 10
	maxRecentLimit       = 50
	defaultFeedLimit     = 20
	maxFeedLimit         = 100
)

type readPostArgs struct {
	URL        string `json:"url"`
	MaxLength  *int   `json:"max_length"`
	StartIndex *int   `json:"start_index"`
}

type searchArgs struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

type recentPostsArgs struct {
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

type rssFeedArgs struct {
	Category string `json:"category"`
	Limit    *int   `json:"limit"`
}

func (s *Server) routeToolCall(ctx context.Context, id any, params ToolCallParams) *Response {
	s.logger.Info("tool call", logger.String("tool", params.Name))

	switch params.Name {
	case "read_blog_post":
		return s.handleReadBlogPost(ctx, id, params.Arguments)
	case "search_blog_posts":
		return s.handleSearchBlogPosts(ctx, id, params.Arguments)
	case "list_blog_categories":
		return s.handleListBlogCategories(id)
	case "get_recent_posts":
		return s.handleGetRecentPosts(ctx, id, params.Arguments)
	case "get_rss_feed":
		return s.handleGetRSSFeed(ctx, id, params.Arguments)
	default:
		return errorResponse(id, MethodNotFound, "Unknown tool: "+params.Name)
	}
}

func (s *Server) handleReadBlogPost(ctx context.Context, id any, args json.RawMessage) *Response {
	var a readPostArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return errorResponse(id, InvalidParams, "Invalid arguments for read_blog_post")
	}
	if a.URL == "" {
		return errorResponse(id, InvalidParams, "url is required")
	}
	maxLength, err := boundedInt(a.MaxLength, defaultReadMaxLength, 1, maxReadLength, "max_length")
	if err != nil {
		return errorResponse(id, InvalidParams, err.Error())
	}
	startIndex := 0
	if a.StartIndex != nil {
		if *a.StartIndex < 0 {
			return errorResponse(id, InvalidParams, "start_index must not be negative")
		}
		startIndex = *a.StartIndex
	}

	text := s.service.ReadPost(ctx, a.URL, maxLength, startIndex)
	return textResponse(id, text)
}

func (s *Server) handleSearchBlogPosts(ctx context.Context, id any, args json.RawMessage) *Response {
	var a searchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return errorResponse(id, InvalidParams, "Invalid arguments for search_blog_posts")
	}
	if a.Query == "" {
		return errorResponse(id, InvalidParams, "query is required")
	}
	limit, err := boundedInt(a.Limit, defaultSearchLimit, 1, maxSearchLimit, "limit")
	if err != nil {
		return errorResponse(id, InvalidParams, err.Error())
	}

	results := s.service.Search(ctx, a.Query, a.Category, limit)
	return jsonResponse(id, map[string]any{
		"query":   a.Query,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleListBlogCategories(id any) *Response {
	cats := blogs.All()
	return jsonResponse(id, map[string]any{
		"count":      len(cats),
		"categories": cats,
	})
}

func (s *Server) handleGetRecentPosts(ctx context.Context, id any, args json.RawMessage) *Response {
	var a recentPostsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return errorResponse(id, InvalidParams, "Invalid arguments for get_recent_posts")
		}
	}
	limit, err := boundedInt(a.Limit, defaultRecentLimit, 1, maxRecentLimit, "limit")
	if err != nil {
		return errorResponse(id, InvalidParams, err.Error())
	}

	posts := s.service.RecentPosts(ctx, a.Category, limit)
	return jsonResponse(id, map[string]any{
		"count": len(posts),
		"posts": posts,
	})
}

func (s *Server) handleGetRSSFeed(ctx context.Context, id any, args json.RawMessage) *Response {
	var a rssFeedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return errorResponse(id, InvalidParams, "Invalid arguments for get_rss_feed")
	}
	if a.Category == "" {
		return errorResponse(id, InvalidParams, "category is required")
	}
	limit, err := boundedInt(a.Limit, defaultFeedLimit, 1, maxFeedLimit, "limit")
	if err != nil {
		return errorResponse(id, InvalidParams, err.Error())
	}

	posts, err := s.service.GetFeed(ctx, a.Category, limit)
	if err != nil {
		return errorResponse(id, InvalidParams, err.Error())
	}
	return jsonResponse(id, map[string]any{
		"category": a.Category,
		"count":    len(posts),
		"entries":  posts,
	})
}

// boundedInt applies the default when the argument is absent and rejects
// values outside [minVal, maxVal].
func boundedInt(v *int, def, minVal, maxVal int, name string) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v < minVal || *v > maxVal {
		return 0, fmt.Errorf("%s must be between %d and %d", name, minVal, maxVal)
	}
	return *v, nil
}

// textResponse wraps plain text in the tool result content envelope.
func textResponse(id any, text string) *Response {
	result := map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
	return successResponse(id, result)
}

// jsonResponse pretty-prints a payload into a text content block.
func jsonResponse(id any, payload any) *Response {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResponse(id, InternalError, "Failed to encode tool result")
	}
	return textResponse(id, string(data))
}
