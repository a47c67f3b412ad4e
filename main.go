package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonesrussell/mcp-aws-blogs/internal/blogs"
	"github.com/jonesrussell/mcp-aws-blogs/internal/config"
	"github.com/jonesrussell/mcp-aws-blogs/internal/fetch"
	"github.com/jonesrussell/mcp-aws-blogs/internal/logger"
	"github.com/jonesrussell/mcp-aws-blogs/internal/mcp"
)

func main() {
	// Read from stdin, write to stdout.
	// IMPORTANT: Only JSON goes to stdout for the MCP protocol;
	// all logging goes to stderr.
	reader := bufio.NewReader(os.Stdin)
	writer := os.Stdout

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}
	cfg := config.LoadOrDefault(configPath)

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	fetcher := fetch.New(
		time.Duration(cfg.Client.HTTPTimeoutSeconds)*time.Second,
		cfg.Client.UserAgent,
		log,
	)
	service := blogs.NewService(fetcher, log, cfg.Blogs.MaxFanoutCategories)
	server := mcp.NewServer(service, log)

	log.Info("server started",
		logger.String("config", configPath),
		logger.Int("http_timeout_seconds", cfg.Client.HTTPTimeoutSeconds),
	)

	ctx := context.Background()

	// MCP clients expect compact JSON, so no SetIndent on the encoder.
	decoder := json.NewDecoder(reader)
	encoder := json.NewEncoder(writer)

	for {
		var request mcp.Request
		if err := decoder.Decode(&request); err != nil {
			if err == io.EOF {
				break
			}
			// A parse failure leaves no usable request ID; JSON-RPC wants a
			// string or number, so fall back to 0.
			sendError(encoder, 0, mcp.ParseError, "Failed to parse request")
			continue
		}

		// Notifications (no ID) get no response.
		response := server.HandleRequest(ctx, &request)
		if response == nil {
			continue
		}
		if err := encoder.Encode(response); err != nil {
			log.Error("failed to encode response", logger.Err(err))
		}
	}

	log.Info("server stopped")
}

func sendError(encoder *json.Encoder, id any, code int, message string) {
	response := mcp.Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &mcp.ErrorObject{
			Code:    code,
			Message: message,
		},
	}
	if err := encoder.Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode error response: %v\n", err)
	}
}
