package calc

import (
	"fmt"
	"math"
	"strconv"
)

// AngleUnit selects how trigonometric arguments are interpreted.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

func (u AngleUnit) String() string {
	if u == Degrees {
		return "deg"
	}
	return "rad"
}

// FormatNumber renders v in the shortest form that round-trips.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func entry(rendition string, result float64) string {
	return rendition + " = " + FormatNumber(result)
}

func infix(a float64, sym string, b float64) string {
	return FormatNumber(a) + " " + sym + " " + FormatNumber(b)
}

func trig(name string, angle float64, unit AngleUnit) string {
	if unit == Degrees {
		return fmt.Sprintf("%s(%s°)", name, FormatNumber(angle))
	}
	return fmt.Sprintf("%s(%s rad)", name, FormatNumber(angle))
}

func logRendition(x, base float64) string {
	switch base {
	case math.E:
		return "ln(" + FormatNumber(x) + ")"
	case 10:
		return "log₁₀(" + FormatNumber(x) + ")"
	}
	return "log_" + FormatNumber(base) + "(" + FormatNumber(x) + ")"
}
