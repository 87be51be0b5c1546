package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gbstox/leaf-mcp/internal/common"
	"github.com/gbstox/leaf-mcp/internal/config"
	"github.com/gbstox/leaf-mcp/internal/mcpsrv"
)

func main() {
	configFile := flag.String("config", "leaf-mcp.toml", "Path to config file")
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	port := flag.Int("port", 0, "Port for the http transport (overrides config)")
	listTools := flag.Bool("list-tools", false, "Print the tool catalogue as JSON and exit")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *stdio {
		cfg.Server.Transport = config.TransportStdio
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	if *listTools {
		// Diagnostic mode: no credential required, no network activity.
		_, listing, err := mcpsrv.Build(cfg, common.NewSilentLogger())
		if err != nil {
			log.Fatalf("Failed to build tool catalogue: %v", err)
		}
		if err := mcpsrv.WriteListing(os.Stdout, listing); err != nil {
			log.Fatalf("Failed to write tool listing: %v", err)
		}
		return
	}

	// Validate before any tool registration: a blank credential in
	// single-tenant mode must fail here, not mid-flight.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	srv, listing, err := mcpsrv.Build(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build MCP server: %v", err)
	}

	switch cfg.Server.Transport {
	case config.TransportStdio:
		logger.Info().Int("tools", len(listing)).Msg("serving MCP over stdio")
		if err := server.ServeStdio(srv); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}

	case config.TransportHTTP:
		handler := mcpsrv.NewHandler(srv, logger)
		addr := ":" + strconv.Itoa(cfg.Server.Port)
		logger.Info().Str("addr", addr).Int("tools", len(listing)).Msg("serving MCP over streamable HTTP")
		if err := http.ListenAndServe(addr, handler); err != nil {
			fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
			os.Exit(1)
		}
	}
}
