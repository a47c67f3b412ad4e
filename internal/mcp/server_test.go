package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonesrussell/mcp-aws-blogs/internal/blogs"
	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

// stubService records calls and returns canned data.
type stubService struct {
	readPostText string
	readURL      string
	readMax      int
	readStart    int

	searchQuery    string
	searchCategory string
	searchLimit    int
	searchResults  []blogs.SearchResult

	recentCategory string
	recentLimit    int
	recentPosts    []blogs.Post

	feedCategory string
	feedLimit    int
	feedPosts    []blogs.Post
	feedErr      error
}

func (s *stubService) ReadPost(_ context.Context, rawURL string, maxLength, startIndex int) string {
	s.readURL = rawURL
	s.readMax = maxLength
	s.readStart = startIndex
	return s.readPostText
}

func (s *stubService) Search(_ context.Context, query, categoryKey string, limit int) []blogs.SearchResult {
	s.searchQuery = query
	s.searchCategory = categoryKey
	s.searchLimit = limit
	return s.searchResults
}

func (s *stubService) RecentPosts(_ context.Context, categoryKey string, limit int) []blogs.Post {
	s.recentCategory = categoryKey
	s.recentLimit = limit
	return s.recentPosts
}

func (s *stubService) GetFeed(_ context.Context, categoryKey string, limit int) ([]blogs.Post, error) {
	s.feedCategory = categoryKey
	s.feedLimit = limit
	return s.feedPosts, s.feedErr
}

func newTestServer() (*Server, *stubService) {
	stub := &stubService{}
	return NewServer(stub, logger.NewNop()), stub
}

func makeRequest(t *testing.T, id any, method string, params any) *Request {
	t.Helper()
	req := &Request{JSONRPC: "2.0", ID: id, Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshal params: %v", err)
		}
		req.Params = raw
	}
	return req
}

func toolCall(t *testing.T, id any, name string, args any) *Request {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal arguments: %v", err)
	}
	return makeRequest(t, id, "tools/call", ToolCallParams{Name: name, Arguments: raw})
}

// resultText extracts the first text content block from a tool response.
func resultText(t *testing.T, resp *Response) string {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected error response: %+v", resp.Error)
	}
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Fatalf("expected text content, got %q", result.Content[0].Type)
	}
	return result.Content[0].Text
}

func TestHandleRequest_Initialize(t *testing.T) {
	srv, _ := newTestServer()

	resp := srv.HandleRequest(context.Background(), makeRequest(t, 1, "initialize", nil))
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected success, got %+v", resp)
	}

	var result struct {
		ProtocolVersion string                    `json:"protocolVersion"`
		Capabilities    map[string]map[string]any `json:"capabilities"`
		ServerInfo      struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.ProtocolVersion != protocolVersion {
		t.Errorf("protocolVersion = %q, want %q", result.ProtocolVersion, protocolVersion)
	}
	if result.ServerInfo.Name != serverName {
		t.Errorf("server name = %q, want %q", result.ServerInfo.Name, serverName)
	}
	for _, capability := range []string{"tools", "prompts", "resources"} {
		if _, ok := result.Capabilities[capability]; !ok {
			t.Errorf("missing capability %q", capability)
		}
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	srv, _ := newTestServer()
	resp := srv.HandleRequest(context.Background(), makeRequest(t, "ping-1", "ping", nil))
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.ID != "ping-1" {
		t.Errorf("response ID = %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_NotificationReturnsNil(t *testing.T) {
	srv, _ := newTestServer()
	req := makeRequest(t, nil, "notifications/initialized", nil)
	if resp := srv.HandleRequest(context.Background(), req); resp != nil {
		t.Fatalf("expected nil response for notification, got %+v", resp)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	srv, _ := newTestServer()
	resp := srv.HandleRequest(context.Background(), makeRequest(t, 7, "bogus/method", nil))
	if resp.Error == nil || resp.Error.Code != MethodNotFound {
		t.Fatalf("expected MethodNotFound, got %+v", resp.Error)
	}
}

func TestToolsList(t *testing.T) {
	srv, _ := newTestServer()
	resp := srv.HandleRequest(context.Background(), makeRequest(t, 2, "tools/list", nil))
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	var result struct {
		Tools []Tool `json:"tools"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}

	want := []string{
		"read_blog_post",
		"search_blog_posts",
		"list_blog_categories",
		"get_recent_posts",
		"get_rss_feed",
	}
	if len(result.Tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(result.Tools), len(want))
	}
	for i, name := range want {
		if result.Tools[i].Name != name {
			t.Errorf("tool[%d] = %q, want %q", i, result.Tools[i].Name, name)
		}
		if result.Tools[i].Description == "" {
			t.Errorf("tool %q has empty description", name)
		}
		if result.Tools[i].InputSchema == nil {
			t.Errorf("tool %q has nil input schema", name)
		}
	}
}

func TestToolCall_UnknownTool(t *testing.T) {
	srv, _ := newTestServer()
	resp := srv.HandleRequest(context.Background(), toolCall(t, 3, "delete_blog_post", map[string]any{}))
	if resp.Error == nil || resp.Error.Code != MethodNotFound {
		t.Fatalf("expected MethodNotFound, got %+v", resp.Error)
	}
	if !strings.Contains(resp.Error.Message, "Unknown tool") {
		t.Errorf("message = %q, want it to name the unknown tool", resp.Error.Message)
	}
}

func TestReadBlogPost_Defaults(t *testing.T) {
	srv, stub := newTestServer()
	stub.readPostText = "# Hello\n\nbody"

	resp := srv.HandleRequest(context.Background(), toolCall(t, 4, "read_blog_post", map[string]any{
		"url": "https://aws.amazon.com/blogs/aws/hello/",
	}))

	if got := resultText(t, resp); got != "# Hello\n\nbody" {
		t.Errorf("text = %q", got)
	}
	if stub.readURL != "https://aws.amazon.com/blogs/aws/hello/" {
		t.Errorf("url = %q", stub.readURL)
	}
	if stub.readMax != defaultReadMaxLength {
		t.Errorf("max_length = %d, want %d", stub.readMax, defaultReadMaxLength)
	}
	if stub.readStart != 0 {
		t.Errorf("start_index = %d, want 0", stub.readStart)
	}
}

func TestReadBlogPost_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing url", map[string]any{}},
		{"max_length zero", map[string]any{"url": "https://aws.amazon.com/blogs/aws/x/", "max_length": 0}},
		{"max_length too large", map[string]any{"url": "https://aws.amazon.com/blogs/aws/x/", "max_length": 1000000}},
		{"negative start_index", map[string]any{"url": "https://aws.amazon.com/blogs/aws/x/", "start_index": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer()
			resp := srv.HandleRequest(context.Background(), toolCall(t, 5, "read_blog_post", tt.args))
			if resp.Error == nil || resp.Error.Code != InvalidParams {
				t.Fatalf("expected InvalidParams, got %+v", resp.Error)
			}
		})
	}
}

func TestSearchBlogPosts(t *testing.T) {
	srv, stub := newTestServer()
	published := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	stub.searchResults = []blogs.SearchResult{
		{
			Title:       "Scaling containers",
			URL:         "https://aws.amazon.com/blogs/containers/scaling/",
			PublishedAt: &published,
			Category:    "containers",
			Relevance:   3,
		},
	}

	resp := srv.HandleRequest(context.Background(), toolCall(t, 6, "search_blog_posts", map[string]any{
		"query":    "containers",
		"category": "containers",
		"limit":    5,
	}))

	text := resultText(t, resp)
	if stub.searchQuery != "containers" || stub.searchCategory != "containers" || stub.searchLimit != 5 {
		t.Errorf("service called with (%q, %q, %d)", stub.searchQuery, stub.searchCategory, stub.searchLimit)
	}
	var payload struct {
		Query   string               `json:"query"`
		Count   int                  `json:"count"`
		Results []blogs.SearchResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Count != 1 || len(payload.Results) != 1 {
		t.Fatalf("count = %d, results = %d", payload.Count, len(payload.Results))
	}
	if payload.Results[0].Relevance != 3 {
		t.Errorf("relevance = %d, want 3", payload.Results[0].Relevance)
	}
}

func TestSearchBlogPosts_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing query", map[string]any{}},
		{"limit zero", map[string]any{"query": "x", "limit": 0}},
		{"limit too large", map[string]any{"query": "x", "limit": 51}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer()
			resp := srv.HandleRequest(context.Background(), toolCall(t, 8, "search_blog_posts", tt.args))
			if resp.Error == nil || resp.Error.Code != InvalidParams {
				t.Fatalf("expected InvalidParams, got %+v", resp.Error)
			}
		})
	}
}

func TestListBlogCategories(t *testing.T) {
	srv, _ := newTestServer()
	resp := srv.HandleRequest(context.Background(), toolCall(t, 9, "list_blog_categories", map[string]any{}))

	text := resultText(t, resp)
	var payload struct {
		Count      int              `json:"count"`
		Categories []blogs.Category `json:"categories"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Count != len(blogs.All()) {
		t.Errorf("count = %d, want %d", payload.Count, len(blogs.All()))
	}
	if payload.Categories[0].Key != "aws" {
		t.Errorf("first category = %q, want aws", payload.Categories[0].Key)
	}
	for _, cat := range payload.Categories {
		if cat.FeedURL == "" {
			t.Errorf("category %q has empty feed URL", cat.Key)
		}
	}
}

func TestGetRecentPosts_Defaults(t *testing.T) {
	srv, stub := newTestServer()
	stub.recentPosts = []blogs.Post{{Title: "One"}, {Title: "Two"}}

	resp := srv.HandleRequest(context.Background(), toolCall(t, 10, "get_recent_posts", map[string]any{}))

	text := resultText(t, resp)
	if stub.recentCategory != "" || stub.recentLimit != defaultRecentLimit {
		t.Errorf("service called with (%q, %d)", stub.recentCategory, stub.recentLimit)
	}
	var payload struct {
		Count int          `json:"count"`
		Posts []blogs.Post `json:"posts"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Count != 2 {
		t.Errorf("count = %d, want 2", payload.Count)
	}
}

func TestGetRSSFeed(t *testing.T) {
	srv, stub := newTestServer()
	stub.feedPosts = []blogs.Post{{Title: "Feed entry", Category: "compute"}}

	resp := srv.HandleRequest(context.Background(), toolCall(t, 11, "get_rss_feed", map[string]any{
		"category": "compute",
	}))

	text := resultText(t, resp)
	if stub.feedCategory != "compute" || stub.feedLimit != defaultFeedLimit {
		t.Errorf("service called with (%q, %d)", stub.feedCategory, stub.feedLimit)
	}
	var payload struct {
		Category string       `json:"category"`
		Count    int          `json:"count"`
		Entries  []blogs.Post `json:"entries"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Category != "compute" || payload.Count != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGetRSSFeed_Validation(t *testing.T) {
	srv, stub := newTestServer()
	stub.feedErr = nil

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing category", map[string]any{}},
		{"limit too large", map[string]any{"category": "compute", "limit": 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.HandleRequest(context.Background(), toolCall(t, 12, "get_rss_feed", tt.args))
			if resp.Error == nil || resp.Error.Code != InvalidParams {
				t.Fatalf("expected InvalidParams, got %+v", resp.Error)
			}
		})
	}
}

func TestGetRSSFeed_UnknownCategory(t *testing.T) {
	srv, stub := newTestServer()
	stub.feedErr = errors.New("unknown category: nonsense")

	resp := srv.HandleRequest(context.Background(), toolCall(t, 13, "get_rss_feed", map[string]any{
		"category": "nonsense",
	}))
	if resp.Error == nil || resp.Error.Code != InvalidParams {
		t.Fatalf("expected InvalidParams, got %+v", resp.Error)
	}
}
