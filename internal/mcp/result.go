package mcp

import (
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

// ResultOutput is the structured output of every computing tool.
type ResultOutput struct {
	Operation     string      `json:"operation"`
	Result        calc.Number `json:"result"`
	HistoryLength int         `json:"history_length"`
}

// MemoryOutput is the structured output of the memory tools.
type MemoryOutput struct {
	Memory calc.Number `json:"memory"`
}

// ErrorOutput is the body of a tool result that signals an error.
type ErrorOutput struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// textResult is a convenience that marshals v to JSON and wraps it in a
// CallToolResult with a single TextContent block. An encoding failure is
// reported as an error result rather than an empty success.
func textResult(v any) *mcpsdk.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errResult(fmt.Errorf("encode result: %w", err))
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a CallToolResult that signals an error. Domain and input
// errors are reported to the client, never as protocol failures.
func errResult(err error) *mcpsdk.CallToolResult {
	r := textResult(ErrorOutput{Kind: errorKind(err), Message: err.Error()})
	r.IsError = true
	return r
}

func errorKind(err error) string {
	switch {
	case calc.IsDomainError(err):
		return "domain"
	case repl.IsInputError(err):
		return "input"
	default:
		return "internal"
	}
}
