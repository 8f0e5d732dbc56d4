package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/WojciechSzmit/wcag/internal/application"
	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

func registerTools(s *server.MCPServer, svc *application.AnalyzeService, detect domain.TypeDetector) {
	s.AddTool(
		mcplib.NewTool("wcag_analyze",
			mcplib.WithDescription("Analyze a DOCX or PDF document for accessibility problems and return the report as JSON. Pass either path or content."),
			mcplib.WithString("path", mcplib.Description("Path of the document on the local filesystem")),
			mcplib.WithString("content", mcplib.Description("Base64-encoded document bytes")),
			mcplib.WithString("name", mcplib.Description("File name reported for base64 content (default: document)")),
			mcplib.WithString("mime_type", mcplib.Description("MIME type of the document; detected from the bytes when omitted")),
		),
		handleAnalyze(svc, detect),
	)

	s.AddTool(
		mcplib.NewTool("wcag_list_checks",
			mcplib.WithDescription("List the accessibility checks with their WCAG criterion, impact and remediation help"),
			mcplib.WithString("file_type", mcplib.Description("Restrict to one file type: pdf or docx")),
		),
		handleListChecks(),
	)
}

func handleAnalyze(svc *application.AnalyzeService, detect domain.TypeDetector) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := request.GetString("path", "")
		content := request.GetString("content", "")

		var (
			name string
			data []byte
			err  error
		)
		switch {
		case path != "" && content != "":
			return errorResult("pass either path or content, not both"), nil
		case path != "":
			data, err = os.ReadFile(path)
			if err != nil {
				return errorResult(fmt.Sprintf("reading %s: %v", path, err)), nil
			}
			name = filepath.Base(path)
		case content != "":
			data, err = base64.StdEncoding.DecodeString(content)
			if err != nil {
				return errorResult(fmt.Sprintf("content is not valid base64: %v", err)), nil
			}
			name = request.GetString("name", "document")
		default:
			return errorResult("one of path or content is required"), nil
		}

		mimeType := detect.Resolve(request.GetString("mime_type", ""), name, data)
		report, err := svc.Analyze(ctx, name, mimeType, data)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListChecks() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		list, err := checksFor(request.GetString("file_type", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(list)
	}
}

func checksFor(fileType string) ([]rules.Rule, error) {
	switch ft := domain.FileType(strings.ToLower(strings.TrimSpace(fileType))); ft {
	case "":
		return rules.All(), nil
	case domain.FileTypePDF, domain.FileTypeDOCX:
		return rules.ForType(ft), nil
	default:
		return nil, fmt.Errorf("unknown file type %q (use pdf or docx)", fileType)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
