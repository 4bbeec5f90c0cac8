// PokeAPI MCP Server - A Model Context Protocol server exposing Pokemon data
// from the public PokeAPI as four read-only tools over stdio.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/tools"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "pokeapi-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing (disabled unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment
	config := pokeapi.LoadConfig()

	// Create PokeAPI client
	client := pokeapi.NewClient(config, pokeapi.WithLogger(logger))

	// Optional Prometheus endpoint; stdio stays the only required surface
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `PokeAPI MCP Server provides read-only Pokemon data from the public PokeAPI.

Available tools:
- get_pokemon_list: Browse the Pokemon index with limit/offset pagination
- get_pokemon_details: Full details for one Pokemon by name
- get_pokemon_by_id: Full details for one Pokemon by Pokedex ID
- search_pokemon: Find Pokemon whose name contains a fragment

All tools return either the upstream JSON or an object with a single
"error" key carrying a human-readable message.

Configure via environment variables:
- POKEAPI_BASE_URL: API endpoint (default: https://pokeapi.co/api/v2)
- POKEAPI_TIMEOUT: Request timeout in seconds (default: 10)
- METRICS_ADDR: Optional address for a Prometheus /metrics listener`,
	})

	// Register all tools from the declarative registry
	tools.NewHandlerRegistry(client, logger).RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting PokeAPI MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", client.BaseURL(),
		"timeout", config.Timeout,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics on the given address.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Serving Prometheus metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}
