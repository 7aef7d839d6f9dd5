package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
)

// --- add, subtract, multiply, divide, modulo ---

type BinaryInput struct {
	A float64 `json:"a" jsonschema:"left operand"`
	B float64 `json:"b" jsonschema:"right operand"`
}

type binaryOp func(c *calc.Calculator, a, b float64) (float64, error)

func infallible(fn func(c *calc.Calculator, a, b float64) float64) binaryOp {
	return func(c *calc.Calculator, a, b float64) (float64, error) {
		return fn(c, a, b), nil
	}
}

func registerArithmeticTools(s *mcpsdk.Server, state *MCPServer) {
	tools := []struct {
		name string
		desc string
		op   binaryOp
	}{
		{"add", "Add b to a and record the operation in history.", infallible((*calc.Calculator).Add)},
		{"subtract", "Subtract b from a and record the operation in history.", infallible((*calc.Calculator).Subtract)},
		{"multiply", "Multiply a by b and record the operation in history.", infallible((*calc.Calculator).Multiply)},
		{"divide", "Divide a by b. Fails with a domain error when b is zero.", (*calc.Calculator).Divide},
		{"modulo", "Floored modulo of a by b; the result takes the sign of b. Fails with a domain error when b is zero.", (*calc.Calculator).Modulo},
	}

	for _, tool := range tools {
		name, op := tool.name, tool.op
		mcpsdk.AddTool(s, &mcpsdk.Tool{
			Name:        name,
			Description: tool.desc,
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in BinaryInput) (*mcpsdk.CallToolResult, any, error) {
			return computeResult(state, name, func(c *calc.Calculator) (float64, error) {
				return op(c, in.A, in.B)
			})
		})
	}
}
