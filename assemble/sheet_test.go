package assemble

import (
	"errors"
	"strings"
	"testing"

	"csb/selector"
)

func TestDecodeSheet(t *testing.T) {
	data := []byte(`rules:
  - selectors:
      - element: div
        id: main
        classes: [container, wide]
    declarations:
      - property: color
        value: red
  - selectors:
      - raw: "nav > ul"
`)

	sheet, err := DecodeSheet(data)
	if err != nil {
		t.Fatalf("DecodeSheet() error = %v", err)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("decoded %d rules, want 2", len(sheet.Rules))
	}
	if sheet.Rules[0].Selectors[0].ID != "main" {
		t.Errorf("first selector id = %q, want %q", sheet.Rules[0].Selectors[0].ID, "main")
	}
	if sheet.Rules[1].Selectors[0].Raw != "nav > ul" {
		t.Errorf("second selector raw = %q, want %q", sheet.Rules[1].Selectors[0].Raw, "nav > ul")
	}
}

func TestDecodeSheet_UnknownField(t *testing.T) {
	data := []byte(`rules:
  - selectors:
      - elemment: div
`)
	if _, err := DecodeSheet(data); err == nil {
		t.Fatal("DecodeSheet() expected error for unknown field")
	}
}

func TestSelectorSpec_Build(t *testing.T) {
	tests := []struct {
		name     string
		spec     SelectorSpec
		expected string
	}{
		{
			name: "structured full",
			spec: SelectorSpec{
				Element:       "a",
				ID:            "x",
				Classes:       []string{"b", "c"},
				Attrs:         []string{`href$=".png"`},
				PseudoClasses: []string{"focus"},
				PseudoElement: "before",
			},
			expected: `a#x.b.c[href$=".png"]:focus::before`,
		},
		{
			name:     "structured classes only",
			spec:     SelectorSpec{Classes: []string{"x", "y"}},
			expected: ".x.y",
		},
		{
			name:     "raw compound",
			spec:     SelectorSpec{Raw: "div#main.wide"},
			expected: "div#main.wide",
		},
		{
			name:     "raw complex",
			spec:     SelectorSpec{Raw: "div#main + table#data"},
			expected: "div#main + table#data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.spec.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := sel.Stringify(); got != tt.expected {
				t.Errorf("Stringify() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSelectorSpec_BuildErrors(t *testing.T) {
	tests := []struct {
		name string
		spec SelectorSpec
		hint string
	}{
		{"empty", SelectorSpec{}, "empty selector"},
		{"mixed raw and structured", SelectorSpec{Raw: "div", ID: "main"}, "both raw and structured"},
		{"raw with violation", SelectorSpec{Raw: ".x#main"}, selector.ErrOutOfOrder.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Build()
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("Build() error = %q, want it to mention %q", err, tt.hint)
			}
		})
	}
}

func TestSheet_Compile(t *testing.T) {
	sheet := &Sheet{
		Rules: []RuleSpec{
			{
				Selectors: []SelectorSpec{{Element: "p"}},
				Declarations: []DeclarationSpec{
					{Property: "text-indent", Value: "1em"},
				},
			},
			{
				Selectors: []SelectorSpec{{Element: "h1"}, {Element: "h2"}},
				Declarations: []DeclarationSpec{
					{Property: "font-weight", Value: "bold"},
				},
			},
		},
	}

	out, err := sheet.Compile(2)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := `p {
  text-indent: 1em;
}

h1, h2 {
  font-weight: bold;
}
`
	if got := out.String(); got != want {
		t.Errorf("Compile() output = %q, want %q", got, want)
	}
}

func TestSheet_CompileCollectsErrors(t *testing.T) {
	sheet := &Sheet{
		Rules: []RuleSpec{
			{Selectors: []SelectorSpec{{Raw: "#a#b"}}},
			{},
			{Selectors: []SelectorSpec{{Element: "p"}}},
		},
	}

	_, err := sheet.Compile(2)
	if err == nil {
		t.Fatal("Compile() expected error")
	}
	if !errors.Is(err, selector.ErrDuplicate) {
		t.Errorf("Compile() error = %v, want it to wrap %v", err, selector.ErrDuplicate)
	}
	if !strings.Contains(err.Error(), "rule 2 has no selectors") {
		t.Errorf("Compile() error = %q, want it to mention the empty rule", err)
	}
}
