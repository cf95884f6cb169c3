// Package mcp exposes the translation engine to LLM tooling over the
// Model Context Protocol. It communicates via JSON-RPC over stdio
// using the official go-sdk, for integration with Claude Desktop,
// Cursor, and other MCP clients.
package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
)

// TranslateInput is the input schema for the translate_instruction tool.
type TranslateInput struct {
	Instruction string `json:"instruction" jsonschema:"Natural-language instruction to translate, e.g. \"print numbers from 1 to 5\" or \"create list 1,2,3\""`
}

// TranslateOutput is the output schema for the translate_instruction tool.
type TranslateOutput struct {
	Code       string `json:"code"`
	Recognized bool   `json:"recognized"`
}

// ListCommandsInput is the input schema for the list_commands tool.
type ListCommandsInput struct{}

// ListCommandsOutput is the output schema for the list_commands tool.
type ListCommandsOutput struct {
	Commands []engine.CommandDoc `json:"commands"`
}

// Server is an MCP server wrapping one translation engine.
type Server struct {
	engine  *engine.Engine
	version string
}

// NewServer creates a new MCP server instance.
func NewServer(e *engine.Engine, version string) *Server {
	return &Server{engine: e, version: version}
}

// handleTranslate runs one translation. Malformed instructions come
// back as tool errors; the unrecognized sentinel is a normal result
// with Recognized=false so clients can tell the cases apart.
func (s *Server) handleTranslate(input TranslateInput) (TranslateOutput, error) {
	code, err := s.engine.Translate(input.Instruction)
	if err != nil {
		return TranslateOutput{}, err
	}
	return TranslateOutput{
		Code:       code,
		Recognized: code != engine.Unrecognized && code != engine.EmptyInstruction,
	}, nil
}

// handleListCommands returns the instruction catalog.
func (s *Server) handleListCommands() ListCommandsOutput {
	return ListCommandsOutput{Commands: s.engine.Catalog()}
}

// Run serves MCP over stdio until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "nlpy",
		Version: s.version,
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "translate_instruction",
		Description: "Translate a constrained natural-language instruction into a Python snippet. Returns recognized=false with a sentinel comment when no instruction template matches.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input TranslateInput) (*sdkmcp.CallToolResult, TranslateOutput, error) {
		out, err := s.handleTranslate(input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, TranslateOutput{}, err
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_commands",
		Description: "List every supported instruction template with a usage string, summary, and literal example.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListCommandsInput) (*sdkmcp.CallToolResult, ListCommandsOutput, error) {
		return nil, s.handleListCommands(), nil
	})

	return server.Run(ctx, &sdkmcp.StdioTransport{})
}
