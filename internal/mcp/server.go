package mcp

import (
	"context"
	"encoding/json"

	"github.com/jonesrussell/mcp-aws-blogs/internal/blogs"
	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
)

const (
	serverName      = "mcp-aws-blogs"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// BlogService is the blog operations surface the server dispatches onto.
type BlogService interface {
	ReadPost(ctx context.Context, rawURL string, maxLength, startIndex int) string
	Search(ctx context.Context, query, categoryKey string, limit int) []blogs.SearchResult
	RecentPosts(ctx context.Context, categoryKey string, limit int) []blogs.Post
	GetFeed(ctx context.Context, categoryKey string, limit int) ([]blogs.Post, error)
}

// Server handles MCP protocol requests for the AWS blogs tools.
type Server struct {
	service BlogService
	logger  logger.Logger
}

// NewServer creates a new MCP server backed by the given blog service.
func NewServer(service BlogService, log logger.Logger) *Server {
	return &Server{
		service: service,
		logger:  log,
	}
}

// HandleRequest processes a single MCP request and returns the response.
// Notifications (requests without an ID) return nil.
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	s.logger.Debug("handling request", logger.String("method", req.Method))

	if req.ID == nil {
		// Notifications get no response.
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return successResponse(req.ID, map[string]any{})
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "prompts/list":
		return s.handlePromptsList(req)
	case "prompts/get":
		return s.handlePromptsGet(req)
	case "resources/list":
		return s.handleResourcesList(req)
	case "resources/read":
		return s.handleResourcesRead(req)
	default:
		return errorResponse(req.ID, MethodNotFound, "Method not found: "+req.Method)
	}
}

func (s *Server) handleInitialize(req *Request) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
	return successResponse(req.ID, result)
}

func (s *Server) handleToolsList(req *Request) *Response {
	return successResponse(req.ID, map[string]any{"tools": s.tools()})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, InvalidParams, "Invalid tool call parameters")
	}
	return s.routeToolCall(ctx, req.ID, params)
}

func successResponse(id any, result any) *Response {
	raw, err := json.Marshal(result)
	if err != nil {
		return errorResponse(id, InternalError, "Failed to encode result")
	}
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  raw,
	}
}

func errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}
