// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/baseline"
	"github.com/pagelens/pagelens/internal/contract"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Pagelens MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Pagelens Accessibility Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		scanner: core.NewScanner(baseline.NewBuiltinEngine(), baseCfg.Weights, baseCfg.HistoryLimit),
	}

	// --- 1. Tool: scan_document ---
	s.AddTool(mcp.NewTool("scan_document",
		mcp.WithDescription("Run a full accessibility scan over an HTML document and return the scored report."),
		mcp.WithString("path", mcp.Description("Path to the HTML document to scan."), mcp.Required()),
		mcp.WithString("level", mcp.Description("WCAG conformance level (A, AA, AAA). Defaults to the configured level."), mcp.Enum("A", "AA", "AAA")),
		mcp.WithBoolean("advanced", mcp.Description("Include the structural detection pass. Defaults to true.")),
		mcp.WithBoolean("semantic", mcp.Description("Include the semantic detection pass. Defaults to true.")),
	), h.handleScanDocument)

	// --- 2. Tool: compare_documents ---
	s.AddTool(mcp.NewTool("compare_documents",
		mcp.WithDescription("Scan two HTML documents with identical settings and report the score movement between them."),
		mcp.WithString("base_path", mcp.Description("Path to the base document."), mcp.Required()),
		mcp.WithString("target_path", mcp.Description("Path to the target document."), mcp.Required()),
		mcp.WithString("level", mcp.Description("WCAG conformance level (A, AA, AAA)."), mcp.Enum("A", "AA", "AAA")),
	), h.handleCompareDocuments)

	// --- 3. Tool: get_scan_history ---
	s.AddTool(mcp.NewTool("get_scan_history",
		mcp.WithDescription("Return the most recent scans performed by this server, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of scans to return.")),
	), h.handleGetScanHistory)

	return s
}

// StartMCPServer starts the Pagelens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
