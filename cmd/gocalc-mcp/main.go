package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/cli"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

func main() {
	var (
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-mcp v%s\n", cli.Version)
		fmt.Println("Model Context Protocol server for the gocalc calculator")
		os.Exit(0)
	}

	// Stdout carries the protocol, so logs go to stderr.
	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := internalmcp.NewMCPServer(logger)
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "gocalc", Version: cli.Version}, nil)
	internalmcp.RegisterAllTools(server, state)

	logger.Info("starting MCP server", "transport", "stdio")
	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
