package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configloader "github.com/smellhound/smellhound/internal/adapters/outbound/config"
	"github.com/smellhound/smellhound/internal/adapters/outbound/gitinfo"
	"github.com/smellhound/smellhound/internal/adapters/outbound/scanner"
	"github.com/smellhound/smellhound/internal/adapters/outbound/tui"
	"github.com/smellhound/smellhound/internal/application"
	"github.com/smellhound/smellhound/internal/domain"
)

// registerTools registers all smellhound MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("smellhound_scan",
			mcplib.WithDescription("Scan the project for code smells and return confidence-scored alerts as JSON"),
			mcplib.WithNumber("threshold", mcplib.Description("Confidence threshold override (0.0-1.0)")),
		),
		handleScan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("smellhound_scan_magic",
			mcplib.WithDescription("Scan the project for magic numbers and hardcoded thresholds and return alerts as JSON"),
			mcplib.WithNumber("threshold", mcplib.Description("Confidence threshold override (0.0-1.0)")),
		),
		handleScanMagic(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("smellhound_report",
			mcplib.WithDescription("Generate a per-file magic-number report in markdown"),
		),
		handleReport(projectPath),
	)
}

func newScanService() *application.ScanService {
	return application.NewScanService(scanner.New(), configloader.New(), nil)
}

func loadConfig(svc *application.ScanService, projectPath string, request mcplib.CallToolRequest) (domain.ScanConfig, error) {
	cfg, err := svc.Config(projectPath)
	if err != nil {
		return domain.ScanConfig{}, err
	}
	if threshold, ok := request.GetArguments()["threshold"].(float64); ok {
		cfg.Detect.ConfidenceThreshold = threshold
		cfg.Magic.ConfidenceThreshold = threshold
	}
	return cfg, nil
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newScanService()
		cfg, err := loadConfig(svc, projectPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		alerts, err := svc.ScanSmells(projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(alerts)
	}
}

func handleScanMagic(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newScanService()
		cfg, err := loadConfig(svc, projectPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		alerts, err := svc.ScanMagic(projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(alerts)
	}
}

func handleReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		scans := newScanService()
		svc := application.NewReportService(scans, gitinfo.New())

		cfg, err := scans.Config(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		report, err := svc.BuildReport(projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("report failed: %v", err)), nil
		}
		return textResult(tui.RenderMarkdownReport(report)), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
