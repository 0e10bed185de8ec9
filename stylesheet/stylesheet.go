// Package stylesheet assembles CSS rules from built selectors and renders
// them as stylesheet text. It is output only - parsing stylesheets is not
// this program's business.
package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"csb/selector"
)

// Declaration is a single "property: value" pair. Source order is
// preserved in the output, values are written verbatim.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one CSS rule. Selector text is captured when the rule is created
// because builders are single-use and would drain on a second render.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// NewRule renders each selector immediately, consuming builder state, and
// keeps the results for repeated output. Grouped selectors are joined with
// ", " in the rule header.
func NewRule(decls []Declaration, sels ...selector.Stringifier) Rule {
	r := Rule{Declarations: decls}
	for _, s := range sels {
		r.Selectors = append(r.Selectors, s.Stringify())
	}
	return r
}

// Stylesheet is an ordered collection of rules.
type Stylesheet struct {
	Indent int // spaces per level, 2 when not set
	Rules  []Rule
}

// Add appends a rule keeping source order.
func (s *Stylesheet) Add(r Rule) {
	s.Rules = append(s.Rules, r)
}

// Selectors returns the selector text of every rule in source order,
// grouped selectors flattened.
func (s *Stylesheet) Selectors() []string {
	var out []string
	for _, r := range s.Rules {
		out = append(out, r.Selectors...)
	}
	return out
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo. Rules are separated by a blank line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	indent := strings.Repeat(" ", s.indentWidth())

	var total int64
	for i, rule := range s.Rules {
		n, err := fmt.Fprintf(w, "%s {\n", strings.Join(rule.Selectors, ", "))
		total += int64(n)
		if err != nil {
			return total, err
		}

		for _, d := range rule.Declarations {
			n, err = fmt.Fprintf(w, "%s%s: %s;\n", indent, d.Property, d.Value)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}

		n, err = fmt.Fprint(w, "}\n")
		total += int64(n)
		if err != nil {
			return total, err
		}

		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func (s *Stylesheet) indentWidth() int {
	if s.Indent <= 0 {
		return 2
	}
	return s.Indent
}
