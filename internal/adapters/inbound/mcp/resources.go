package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const checksURI = "wcag://checks"

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			checksURI,
			"Check Catalog",
			mcplib.WithResourceDescription("Every accessibility check with its WCAG criterion and impact"),
			mcplib.WithMIMEType("application/json"),
		),
		func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			return checksResource(request.Params.URI, "")
		},
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			checksURI+"/{fileType}",
			"Checks by File Type",
			mcplib.WithTemplateDescription("Accessibility checks that apply to pdf or docx"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleChecksTemplate,
	)
}

func handleChecksTemplate(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	fileType := templateArg(request.Params.Arguments["fileType"])
	if fileType == "" {
		return nil, fmt.Errorf("file type is required")
	}
	return checksResource(request.Params.URI, fileType)
}

// templateArg unwraps a template variable, which the server may deliver as a
// string or a single-element slice.
func templateArg(v interface{}) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func checksResource(uri, fileType string) ([]mcplib.ResourceContents, error) {
	list, err := checksFor(fileType)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling checks: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
