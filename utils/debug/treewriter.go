// Package debug provides helpers for human readable inspection output.
package debug

import (
	"strconv"
	"strings"
)

// TreeWriter accumulates labeled values as indented lines, two spaces per
// depth level. Values are quoted so whitespace and control characters stay
// visible; an empty value is left unquoted.
type TreeWriter struct {
	sb strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return new(TreeWriter)
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// TextBlock writes a single "label: value" line at the given depth.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	for range depth {
		tw.sb.WriteString("  ")
	}
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	if value != "" {
		tw.sb.WriteString(strconv.Quote(value))
	}
	tw.sb.WriteByte('\n')
}
