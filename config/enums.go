package config

import (
	"fmt"
	"strings"
)

// Specification of requested build output.
type OutputFmt int

const (
	// OutputFmtCSS renders full rules as stylesheet text.
	OutputFmtCSS OutputFmt = iota
	// OutputFmtList prints one selector per line, declarations ignored.
	OutputFmtList
)

func (o OutputFmt) String() string {
	switch o {
	case OutputFmtCSS:
		return "css"
	case OutputFmtList:
		return "list"
	default:
		// this should never happen
		panic("unsupported output format requested")
	}
}

// ParseOutputFmt converts textual format specification to OutputFmt.
func ParseOutputFmt(s string) (OutputFmt, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return OutputFmtCSS, nil
	case "list":
		return OutputFmtList, nil
	default:
		return OutputFmtCSS, fmt.Errorf("unknown output format %q", s)
	}
}

// OutputFmtNames lists supported output format names for help text.
func OutputFmtNames() []string {
	return []string{OutputFmtCSS.String(), OutputFmtList.String()}
}
