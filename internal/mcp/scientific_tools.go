package mcp

import (
	"context"
	"fmt"
	"math"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/repl"
	"github.com/mamaar/gocalc/pkg/calc"
)

// --- power ---

type PowerInput struct {
	Base     float64 `json:"base" jsonschema:"the base"`
	Exponent float64 `json:"exponent" jsonschema:"the exponent"`
}

// --- sqrt, log10 ---

type UnaryInput struct {
	X float64 `json:"x" jsonschema:"the operand"`
}

// --- factorial ---

type FactorialInput struct {
	N float64 `json:"n" jsonschema:"a non-negative integer no larger than 170"`
}

// --- sin, cos, tan ---

type TrigInput struct {
	Angle float64 `json:"angle" jsonschema:"the angle"`
	Unit  string  `json:"unit,omitempty" jsonschema:"radians (default) or degrees"`
}

// --- log ---

type LogInput struct {
	X    float64  `json:"x" jsonschema:"a positive operand"`
	Base *float64 `json:"base,omitempty" jsonschema:"logarithm base, defaults to e"`
}

func registerScientificTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "power",
		Description: "Raise base to exponent. Fails with a domain error when the result is not a finite real number.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PowerInput) (*mcpsdk.CallToolResult, any, error) {
		return computeResult(state, "power", func(c *calc.Calculator) (float64, error) {
			return c.Power(in.Base, in.Exponent)
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "sqrt",
		Description: "Square root of x. Fails with a domain error when x is negative.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in UnaryInput) (*mcpsdk.CallToolResult, any, error) {
		return computeResult(state, "sqrt", func(c *calc.Calculator) (float64, error) {
			return c.SquareRoot(in.X)
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "factorial",
		Description: "Factorial of n. Fails with a domain error for negative, non-integral or too large n.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in FactorialInput) (*mcpsdk.CallToolResult, any, error) {
		return computeResult(state, "factorial", func(c *calc.Calculator) (float64, error) {
			return c.Factorial(in.N)
		})
	})

	trig := map[string]func(c *calc.Calculator, angle float64, unit calc.AngleUnit) float64{
		"sin": (*calc.Calculator).Sin,
		"cos": (*calc.Calculator).Cos,
		"tan": (*calc.Calculator).Tan,
	}
	for name, fn := range trig {
		name, fn := name, fn
		mcpsdk.AddTool(s, &mcpsdk.Tool{
			Name:        name,
			Description: fmt.Sprintf("Compute %s of an angle given in radians or degrees.", name),
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in TrigInput) (*mcpsdk.CallToolResult, any, error) {
			unit, err := parseUnit(in.Unit)
			if err != nil {
				return errResult(err), nil, nil
			}
			return computeResult(state, name, func(c *calc.Calculator) (float64, error) {
				return fn(c, in.Angle, unit), nil
			})
		})
	}

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "log",
		Description: "Logarithm of x in the given base (natural logarithm by default). Fails with a domain error for x <= 0, base <= 0 or base = 1.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in LogInput) (*mcpsdk.CallToolResult, any, error) {
		base := math.E
		if in.Base != nil {
			base = *in.Base
		}
		return computeResult(state, "log", func(c *calc.Calculator) (float64, error) {
			return c.Log(in.X, base)
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "log10",
		Description: "Base-10 logarithm of x. Fails with a domain error for x <= 0.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in UnaryInput) (*mcpsdk.CallToolResult, any, error) {
		return computeResult(state, "log10", func(c *calc.Calculator) (float64, error) {
			return c.Log10(in.X)
		})
	})
}

func computeResult(state *MCPServer, op string, fn func(c *calc.Calculator) (float64, error)) (*mcpsdk.CallToolResult, any, error) {
	out, err := state.compute(op, fn)
	if err != nil {
		return errResult(err), nil, nil
	}
	return textResult(out), nil, nil
}

func parseUnit(unit string) (calc.AngleUnit, error) {
	switch unit {
	case "", "rad", "radians":
		return calc.Radians, nil
	case "deg", "degrees":
		return calc.Degrees, nil
	}
	return 0, &repl.InputError{Input: unit, Message: "unknown angle unit"}
}
