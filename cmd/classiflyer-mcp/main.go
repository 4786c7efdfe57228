package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "classiflyer/internal/adapters/mcp"
	"classiflyer/internal/adapters/sqlite"
	"classiflyer/internal/adapters/vault"
	"classiflyer/internal/config"
	"classiflyer/internal/logging"
)

func main() {
	rootFlag := flag.String("root", config.RootPath(), "path to the managed root directory")
	flag.Parse()

	if err := config.Bootstrap(*rootFlag); err != nil {
		log.Fatalf("classiflyer-mcp: bootstrap root: %v", err)
	}

	// Logs go to stderr: stdout carries the protocol.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	store := vault.New(*rootFlag, vault.WithLogger(logger))

	index := sqlite.NewIndex()
	if err := index.Open(*rootFlag); err != nil {
		log.Fatalf("classiflyer-mcp: open search index: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"classiflyer-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, index)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("classiflyer-mcp: %v", err)
	}
}
