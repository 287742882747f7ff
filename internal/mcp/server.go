// Package mcp exposes project file operations and consolidation as MCP
// tools over stdio, so editor agents can drive a scriv project.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/scriv/internal/agent"
	"github.com/kalambet/scriv/internal/config"
	"github.com/kalambet/scriv/internal/consolidate"
	"github.com/kalambet/scriv/internal/markdown"
)

// Deps holds dependencies for the MCP server.
type Deps struct {
	ProjectPath string
	Project     config.Project
	// Translator is optional; when nil the consolidate tool refuses
	// translation requests.
	Translator consolidate.Translator
}

// NewServer creates an MCP server with all scriv tools registered.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"scriv",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("scriv — markdown authoring project for books and papers. Tools operate on files relative to the project root."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("read_section",
			mcp.WithDescription("Read a markdown file from the project."),
			mcp.WithString("folder", mcp.Description("Folder relative to the project root (e.g. chapters, sections)"), mcp.Required()),
			mcp.WithString("file", mcp.Description("File name within the folder"), mcp.Required()),
		),
		mcpReadSection(deps),
	)

	s.AddTool(
		mcp.NewTool("save_section",
			mcp.WithDescription("Write a markdown file, backing up any existing content first."),
			mcp.WithString("file", mcp.Description("Path relative to the project root (e.g. chapters/chapter-2.md)"), mcp.Required()),
			mcp.WithString("header", mcp.Description("Title written as the leading # header"), mcp.Required()),
			mcp.WithString("content", mcp.Description("Markdown body to write"), mcp.Required()),
		),
		mcpSaveSection(deps),
	)

	s.AddTool(
		mcp.NewTool("append_section",
			mcp.WithDescription("Append markdown content to an existing file."),
			mcp.WithString("folder", mcp.Description("Folder relative to the project root"), mcp.Required()),
			mcp.WithString("file", mcp.Description("File name within the folder"), mcp.Required()),
			mcp.WithString("content", mcp.Description("Markdown content to append"), mcp.Required()),
		),
		mcpAppendSection(deps),
	)

	s.AddTool(
		mcp.NewTool("list_files",
			mcp.WithDescription("List all markdown files in the project."),
		),
		mcpListFiles(deps),
	)

	s.AddTool(
		mcp.NewTool("consolidate",
			mcp.WithDescription("Consolidate the project's chapters or sections into a single markdown document."),
			mcp.WithString("translate", mcp.Description("Optional target language code; translates each unit before writing")),
		),
		mcpConsolidate(deps),
	)

	return s
}

func mcpReadSection(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder, err := req.RequireString("folder")
		if err != nil {
			return mcpError("folder is required"), nil
		}
		file, err := req.RequireString("file")
		if err != nil {
			return mcpError("file is required"), nil
		}

		content, err := markdown.Read(deps.ProjectPath, folder, file)
		if err != nil {
			if errors.Is(err, markdown.ErrNotFound) {
				return mcpError(fmt.Sprintf("no such file: %s/%s", folder, file)), nil
			}
			return mcpError(fmt.Sprintf("read failed: %v", err)), nil
		}
		return mcpText(content), nil
	}
}

func mcpSaveSection(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file, err := req.RequireString("file")
		if err != nil {
			return mcpError("file is required"), nil
		}
		header, err := req.RequireString("header")
		if err != nil {
			return mcpError("header is required"), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcpError("content is required"), nil
		}

		path, err := markdown.Save(deps.ProjectPath, file, header, content)
		if err != nil {
			return mcpError(fmt.Sprintf("save failed: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Saved %s", path)), nil
	}
}

func mcpAppendSection(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folder, err := req.RequireString("folder")
		if err != nil {
			return mcpError("folder is required"), nil
		}
		file, err := req.RequireString("file")
		if err != nil {
			return mcpError("file is required"), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcpError("content is required"), nil
		}

		if err := markdown.Append(deps.ProjectPath, folder, file, content); err != nil {
			if errors.Is(err, markdown.ErrNotFound) {
				return mcpError(fmt.Sprintf("no such file: %s/%s", folder, file)), nil
			}
			return mcpError(fmt.Sprintf("append failed: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Appended to %s/%s", folder, file)), nil
	}
}

func mcpListFiles(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files, err := agent.ListMarkdownFiles(deps.ProjectPath)
		if err != nil {
			return mcpError(fmt.Sprintf("listing files: %v", err)), nil
		}
		b, err := json.Marshal(files)
		if err != nil {
			return mcpError(fmt.Sprintf("marshaling file list: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpConsolidate(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		translate := req.GetString("translate", "")
		if translate != "" && deps.Translator == nil {
			return mcpError("translation is not available: no provider configured"), nil
		}

		opts := consolidate.Options{
			PrimaryLanguage: deps.Project.PrimaryLanguage,
			TranslateTo:     translate,
			Translator:      deps.Translator,
		}

		var out string
		var err error
		switch deps.Project.Type {
		case config.TypePaper:
			out, err = consolidate.Paper(ctx, deps.ProjectPath, deps.Project, opts)
		default:
			out, err = consolidate.Book(ctx, deps.ProjectPath, opts)
		}
		if err != nil {
			return mcpError(fmt.Sprintf("consolidation failed: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Consolidated to %s", out)), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
