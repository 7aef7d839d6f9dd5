package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
)

// --- memory_store, memory_add, memory_subtract ---

type ValueInput struct {
	Value float64 `json:"value" jsonschema:"value applied to the memory register"`
}

// --- memory_recall, memory_clear ---

type EmptyInput struct{}

func registerMemoryTools(s *mcpsdk.Server, state *MCPServer) {
	valued := []struct {
		name string
		desc string
		fn   func(c *calc.Calculator, v float64)
	}{
		{"memory_store", "Store value in the memory register.", (*calc.Calculator).MemoryStore},
		{"memory_add", "Add value to the memory register.", (*calc.Calculator).MemoryAdd},
		{"memory_subtract", "Subtract value from the memory register.", (*calc.Calculator).MemorySubtract},
	}
	for _, tool := range valued {
		fn := tool.fn
		mcpsdk.AddTool(s, &mcpsdk.Tool{
			Name:        tool.name,
			Description: tool.desc + " History is not affected.",
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ValueInput) (*mcpsdk.CallToolResult, any, error) {
			out := state.memory(func(c *calc.Calculator) { fn(c, in.Value) })
			return textResult(out), nil, nil
		})
	}

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "memory_recall",
		Description: "Return the value of the memory register.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.memory(func(*calc.Calculator) {})), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "memory_clear",
		Description: "Set the memory register to zero. History is not affected.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EmptyInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.memory((*calc.Calculator).MemoryClear)), nil, nil
	})
}
