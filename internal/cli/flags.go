package cli

import (
	"flag"
	"time"
)

// Flags holds all command line flags
type Flags struct {
	Version  *bool
	Json     *bool
	Verbose  *bool
	Debounce *time.Duration
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags initializes all command line flags
func InitFlags() *Flags {
	return &Flags{
		Version:  flag.Bool("version", false, "Show version information"),
		Json:     flag.Bool("json", false, "Print the final calculator state as JSON (eval, run)"),
		Verbose:  flag.Bool("verbose", false, "Enable debug logging on stderr"),
		Debounce: flag.Duration("debounce", 200*time.Millisecond, "Delay before re-running a watched script after a change"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags()
	}
	flag.Usage = usage
	flag.Parse()
}
