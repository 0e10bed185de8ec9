package selector_test

import (
	"errors"
	"strings"
	"testing"

	"csb/selector"
)

func TestParse_Compound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"element", "div", "div"},
		{"universal", "*", "*"},
		{"id", "#main", "#main"},
		{"class", ".note", ".note"},
		{"element with id and classes", "a#x.b.c", "a#x.b.c"},
		{"attribute", `a[href$=".png"]`, `a[href$=".png"]`},
		{"attribute with spaces inside", `input[type = "radio"]`, `input[type = "radio"]`},
		{"pseudo class", "a:hover", "a:hover"},
		{"functional pseudo class", "li:nth-child(2n+1)", "li:nth-child(2n+1)"},
		{"functional pseudo class with nested parens", "p:not(:first-child)", "p:not(:first-child)"},
		{"pseudo element", "p::before", "p::before"},
		{"everything", `a#x.b.c[href$=".png"]:focus::before`, `a#x.b.c[href$=".png"]:focus::before`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := selector.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := sel.Stringify(); got != tt.expected {
				t.Errorf("Stringify() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_Complex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"child", "nav > ul", "nav > ul"},
		{"adjacent", "div#main + table#data", "div#main + table#data"},
		{"general sibling", "h1 ~ p", "h1 ~ p"},
		{"child without spaces", "nav>ul", "nav > ul"},
		{"three operands fold left", "a > b + c", "a > b + c"},
		// the descendant combinator is re-joined through Combine and so
		// renders in the padded form
		{"descendant", "ul li", "ul   li"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := selector.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := sel.Stringify(); got != tt.expected {
				t.Errorf("Stringify() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_ViolationsSurface(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"element after attribute", "[checked]div", selector.ErrOutOfOrder},
		{"class before id", ".x#main", selector.ErrOutOfOrder},
		{"double id", "#a#b", selector.ErrDuplicate},
		{"double pseudo element", "p::before::after", selector.ErrDuplicate},
		{"pseudo class after pseudo element", "p::before:hover", selector.ErrOutOfOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selector.Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hint  string
	}{
		{"empty", "", "empty selector"},
		{"blank", "   ", "empty selector"},
		{"leading combinator", "> a", "without left operand"},
		{"trailing combinator", "a >", "trailing combinator"},
		{"consecutive combinators", "a > > b", "consecutive combinators"},
		{"unterminated attribute", "a[href", "unterminated attribute"},
		{"dangling colon", "a:", "dangling ':'"},
		{"dot without class", "a.", "class name expected"},
		{"group", "a, b", "selector groups are not supported"},
		{"unterminated function", "li:nth-child(2", "unterminated pseudo-class arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selector.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("Parse(%q) error = %q, want it to mention %q", tt.input, err, tt.hint)
			}
		})
	}
}

func TestParse_SingleCompoundIsBuilder(t *testing.T) {
	sel, err := selector.Parse("div#main")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := sel.(*selector.Builder); !ok {
		t.Fatalf("Parse() returned %T, want *selector.Builder", sel)
	}
	// builder semantics apply: second Stringify drains it
	if got := sel.Stringify(); got != "div#main" {
		t.Fatalf("Stringify() = %q, want %q", got, "div#main")
	}
	if got := sel.Stringify(); got != "" {
		t.Errorf("second Stringify() = %q, want empty string", got)
	}
}
