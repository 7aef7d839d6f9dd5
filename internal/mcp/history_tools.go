package mcp

import (
	"context"
	"encoding/json"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
)

// HistoryResourceURI addresses the calculator state as a readable resource.
const HistoryResourceURI = "calc://history"

// --- last_result ---

type LastResultOutput struct {
	Present bool         `json:"present"`
	Result  *calc.Number `json:"result,omitempty"`
}

// --- evaluate ---

type EvaluateInput struct {
	Line string `json:"line" jsonschema:"one calculator line, e.g. '5 + 3', 'sqrt 16', 'sin 90 deg', '5!'"`
}

type EvaluateOutput struct {
	Result  *calc.Number `json:"result,omitempty"`
	Message string       `json:"message,omitempty"`
}

func registerHistoryTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "history",
		Description: "Return the operation history, the memory register and the last result.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.Snapshot()), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "clear_history",
		Description: "Clear the operation history and the last result. Memory is kept.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		state.ClearHistory()
		return textResult(state.Snapshot()), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "last_result",
		Description: "Return the result of the most recent successful operation, if any.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		out := LastResultOutput{}
		if last := state.Snapshot().LastResult; last != nil {
			v := calc.Number(*last)
			out.Present, out.Result = true, &v
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "reset",
		Description: "Clear memory, history and the last result.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		state.Reset()
		return textResult(state.Snapshot()), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name: "evaluate",
		Description: `Evaluate one line of calculator input, exactly as typed at the gocalc prompt.
Supports infix + - * / ^ ** mod, sqrt, n!, sin/cos/tan with optional deg, ln/log/log10 and the memory commands ms, mr, mc, m+, m-.`,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EvaluateInput) (*mcpsdk.CallToolResult, any, error) {
		res, err := state.Evaluate(in.Line)
		if err != nil {
			return errResult(err), nil, nil
		}
		out := EvaluateOutput{Message: res.Message}
		if res.HasValue {
			v := calc.Number(res.Value)
			out.Result = &v
		}
		return textResult(out), nil, nil
	})
}

func registerHistoryResource(s *mcpsdk.Server, state *MCPServer) {
	s.AddResource(&mcpsdk.Resource{
		URI:         HistoryResourceURI,
		Name:        "history",
		Description: "Operation history, memory register and last result as JSON",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
		data, err := json.MarshalIndent(state.Snapshot(), "", "  ")
		if err != nil {
			return nil, err
		}
		return &mcpsdk.ReadResourceResult{
			Contents: []*mcpsdk.ResourceContents{
				{URI: HistoryResourceURI, MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	})
}
