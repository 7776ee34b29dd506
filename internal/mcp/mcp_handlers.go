package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pagelens/pagelens/core"
	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers. The
// scanner persists across calls so history accrues within a session.
type toolHandler struct {
	baseCfg *contract.Config
	scanner *core.Scanner
}

// optionsForRequest derives scan options from the base configuration
// plus per-request overrides.
func (h *toolHandler) optionsForRequest(request mcp.CallToolRequest) (core.ScanOptions, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetString("level", ""); l != "" {
		level := schema.WCAGLevel(l)
		if _, ok := schema.ValidWCAGLevels[level]; !ok {
			return core.ScanOptions{}, fmt.Errorf("invalid WCAG level %q", l)
		}
		cfg.Level = level
	}
	return core.ScanOptions{
		Level:           cfg.Level,
		Tags:            cfg.Tags,
		IncludeAdvanced: request.GetBool("advanced", cfg.IncludeAdvanced),
		IncludeSemantic: request.GetBool("semantic", cfg.IncludeSemantic),
		IncludeInsight:  cfg.IncludeAI,
	}, nil
}

func (h *toolHandler) handleScanDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	opts, err := h.optionsForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := domdoc.ParseFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot load document: %v", err)), nil
	}
	report, err := h.scanner.Scan(ctx, doc, path, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	basePath := request.GetString("base_path", "")
	targetPath := request.GetString("target_path", "")
	if basePath == "" || targetPath == "" {
		return mcp.NewToolResultError("base_path and target_path are required"), nil
	}
	opts, err := h.optionsForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	baseDoc, err := domdoc.ParseFile(basePath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot load base document: %v", err)), nil
	}
	baseReport, err := h.scanner.Scan(ctx, baseDoc, basePath, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("base scan failed: %v", err)), nil
	}

	targetDoc, err := domdoc.ParseFile(targetPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot load target document: %v", err)), nil
	}
	targetReport, err := h.scanner.Scan(ctx, targetDoc, targetPath, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("target scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.CompareReports(baseReport, targetReport), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScanHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	reports := h.scanner.History().Recent(limit)

	// Summarize history entries instead of dumping full reports.
	type historyEntry struct {
		Address    string                 `json:"address"`
		Timestamp  string                 `json:"timestamp"`
		Overall    float64                `json:"overall"`
		Compliance schema.ComplianceLevel `json:"compliance"`
		Findings   int                    `json:"findings"`
	}
	entries := make([]historyEntry, len(reports))
	for i, r := range reports {
		entries[i] = historyEntry{
			Address:    r.Address,
			Timestamp:  r.Timestamp.Format(contract.DateTimeFormat),
			Overall:    r.Scores.Overall,
			Compliance: r.Compliance.Level,
			Findings:   r.TotalFindings(),
		}
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
