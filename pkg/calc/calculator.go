// Package calc implements a stateful arithmetic evaluator with a single
// memory register and an append-only log of every successful operation.
//
// A Calculator is owned by one caller. It performs no locking; callers that
// share one across goroutines must serialize access themselves.
package calc

import (
	"math"
	"math/big"
)

// MaxFactorial is the largest argument whose factorial fits in a float64.
const MaxFactorial = 170

// Calculator holds the memory register, the operation history and the
// result of the most recent successful computation.
type Calculator struct {
	memory     float64
	history    []string
	lastResult float64
	hasResult  bool
}

// New returns a Calculator with empty memory and history.
func New() *Calculator {
	return &Calculator{}
}

// record appends one history entry and updates the last result.
func (c *Calculator) record(rendition string, result float64) float64 {
	c.history = append(c.history, entry(rendition, result))
	c.lastResult = result
	c.hasResult = true
	return result
}

// Add returns a+b.
func (c *Calculator) Add(a, b float64) float64 {
	return c.record(infix(a, "+", b), a+b)
}

// Subtract returns a-b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.record(infix(a, "-", b), a-b)
}

// Multiply returns a*b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return c.record(infix(a, "×", b), a*b)
}

// Divide returns a/b. A zero divisor is a DivisionByZero domain error.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domainError(DivisionByZero, "divide", "division by zero is not allowed")
	}
	return c.record(infix(a, "÷", b), a/b), nil
}

// Power returns base^exp. Results that are not finite real numbers are
// rejected: overflow, a negative base with a fractional exponent and a zero
// base with a negative exponent all yield PowerOutOfRange.
func (c *Calculator) Power(base, exp float64) (float64, error) {
	if base < 0 && exp != math.Trunc(exp) && !math.IsInf(exp, 0) {
		return 0, domainError(PowerOutOfRange, "power",
			"negative base %s with fractional exponent %s has no real result", FormatNumber(base), FormatNumber(exp))
	}
	if base == 0 && exp < 0 {
		return 0, domainError(PowerOutOfRange, "power", "zero cannot be raised to a negative power")
	}
	result := math.Pow(base, exp)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, domainError(PowerOutOfRange, "power",
			"%s ^ %s is out of range", FormatNumber(base), FormatNumber(exp))
	}
	return c.record(infix(base, "^", exp), result), nil
}

// SquareRoot returns √x. A negative x is a NegativeOperand domain error.
func (c *Calculator) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, domainError(NegativeOperand, "sqrt", "cannot calculate square root of negative number %s", FormatNumber(x))
	}
	return c.record("√"+FormatNumber(x), math.Sqrt(x)), nil
}

// Modulo returns a mod b using floored division, so a non-zero result has
// the sign of b: Modulo(-7, 3) is 2 and Modulo(7, -3) is -2.
func (c *Calculator) Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domainError(ModuloByZero, "modulo", "modulo by zero is not allowed")
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return c.record(infix(a, "mod", b), r), nil
}

// Factorial returns n! for an integral n in [0, MaxFactorial]. Non-integral
// values are rejected rather than truncated.
func (c *Calculator) Factorial(n float64) (float64, error) {
	switch {
	case math.IsNaN(n) || n != math.Trunc(n):
		return 0, domainError(InvalidFactorial, "factorial", "factorial is only defined for non-negative integers, got %s", FormatNumber(n))
	case n < 0:
		return 0, domainError(InvalidFactorial, "factorial", "factorial is only defined for non-negative integers, got %s", FormatNumber(n))
	case n > MaxFactorial:
		return 0, domainError(InvalidFactorial, "factorial", "%s is too large for factorial calculation (max %d)", FormatNumber(n), MaxFactorial)
	}
	result, _ := new(big.Float).SetInt(factorial(int64(n))).Float64()
	return c.record(FormatNumber(n)+"!", result), nil
}

func factorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(2, n)
}

// Sin returns the sine of angle in the given unit.
func (c *Calculator) Sin(angle float64, unit AngleUnit) float64 {
	return c.record(trig("sin", angle, unit), math.Sin(toRadians(angle, unit)))
}

// Cos returns the cosine of angle in the given unit.
func (c *Calculator) Cos(angle float64, unit AngleUnit) float64 {
	return c.record(trig("cos", angle, unit), math.Cos(toRadians(angle, unit)))
}

// Tan returns the tangent of angle. Values near an asymptote are returned
// as computed, which may be very large.
func (c *Calculator) Tan(angle float64, unit AngleUnit) float64 {
	return c.record(trig("tan", angle, unit), math.Tan(toRadians(angle, unit)))
}

func toRadians(angle float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return angle * math.Pi / 180
	}
	return angle
}

// Ln returns the natural logarithm of x.
func (c *Calculator) Ln(x float64) (float64, error) {
	return c.Log(x, math.E)
}

// Log returns the logarithm of x in the given base. x and base must be
// positive and base must not be 1.
func (c *Calculator) Log(x, base float64) (float64, error) {
	if !(x > 0) {
		return 0, domainError(InvalidLogarithm, "log", "logarithm is only defined for positive numbers, got %s", FormatNumber(x))
	}
	if !(base > 0) || base == 1 {
		return 0, domainError(InvalidLogBase, "log", "logarithm base must be positive and not equal to 1, got %s", FormatNumber(base))
	}
	var result float64
	switch base {
	case math.E:
		result = math.Log(x)
	case 2:
		result = math.Log2(x)
	case 10:
		result = math.Log10(x)
	default:
		result = math.Log(x) / math.Log(base)
	}
	return c.record(logRendition(x, base), snapLog(x, base, result)), nil
}

// snapLog returns the exact exponent when x is an integral power of base,
// so that log(1000, 10) is 3 rather than 2.9999999999999996.
func snapLog(x, base, approx float64) float64 {
	k := math.Round(approx)
	if k != approx && math.Abs(approx-k) < 1e-9 && math.Pow(base, k) == x {
		return k
	}
	return approx
}

// Log10 returns the base-10 logarithm of x.
func (c *Calculator) Log10(x float64) (float64, error) {
	if !(x > 0) {
		return 0, domainError(InvalidLogarithm, "log10", "logarithm is only defined for positive numbers, got %s", FormatNumber(x))
	}
	return c.record(logRendition(x, 10), snapLog(x, 10, math.Log10(x))), nil
}

// Memory operations touch only the register.

// MemoryStore replaces the register with v.
func (c *Calculator) MemoryStore(v float64) {
	c.memory = v
}

// MemoryRecall returns the register.
func (c *Calculator) MemoryRecall() float64 {
	return c.memory
}

// MemoryClear sets the register to zero.
func (c *Calculator) MemoryClear() {
	c.memory = 0
}

// MemoryAdd adds v to the register.
func (c *Calculator) MemoryAdd(v float64) {
	c.memory += v
}

// MemorySubtract subtracts v from the register.
func (c *Calculator) MemorySubtract(v float64) {
	c.memory -= v
}

// ClearHistory empties the history and forgets the last result. Memory is kept.
func (c *Calculator) ClearHistory() {
	c.history = nil
	c.lastResult = 0
	c.hasResult = false
}

// History returns a copy of the operation log, oldest entry first.
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// LastResult returns the most recent successful result, if any.
func (c *Calculator) LastResult() (float64, bool) {
	return c.lastResult, c.hasResult
}

// Reset clears memory, history and the last result.
func (c *Calculator) Reset() {
	c.MemoryClear()
	c.ClearHistory()
}

// Snapshot is a point-in-time copy of the calculator state. Its JSON form
// has the keys memory, history and last_result (omitted when unset).
type Snapshot struct {
	Memory     float64
	History    []string
	LastResult *float64
}

// Snapshot copies the current state. Mutating the result does not affect c.
func (c *Calculator) Snapshot() Snapshot {
	s := Snapshot{Memory: c.memory, History: c.History()}
	if v, ok := c.LastResult(); ok {
		s.LastResult = &v
	}
	return s
}
