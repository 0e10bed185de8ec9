// Package assemble implements the build subcommand: it turns YAML sheet
// descriptions into selector strings and stylesheet text.
package assemble

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"csb/selector"
	"csb/stylesheet"
)

// Sheet is the on-disk YAML description of rules to build.
type Sheet struct {
	Rules []RuleSpec `yaml:"rules"`
}

type RuleSpec struct {
	Selectors    []SelectorSpec    `yaml:"selectors"`
	Declarations []DeclarationSpec `yaml:"declarations,omitempty"`
}

type DeclarationSpec struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// SelectorSpec describes one selector either as raw selector text or as
// structured fragments. The two forms are mutually exclusive. Structured
// fragments are applied in category order, so only cardinality can be
// violated here; raw text goes through selector.Parse and is subject to
// the full ordering rules.
type SelectorSpec struct {
	Raw string `yaml:"raw,omitempty"`

	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attrs         []string `yaml:"attrs,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
}

func (s SelectorSpec) structured() bool {
	return s.Element != "" || s.ID != "" || len(s.Classes) > 0 ||
		len(s.Attrs) > 0 || len(s.PseudoClasses) > 0 || s.PseudoElement != ""
}

// Build converts the spec to a stringifiable selector.
func (s SelectorSpec) Build() (selector.Stringifier, error) {
	if s.Raw != "" {
		if s.structured() {
			return nil, errors.New("selector cannot be both raw and structured")
		}
		return selector.Parse(s.Raw)
	}
	if !s.structured() {
		return nil, errors.New("empty selector")
	}

	b := new(selector.Builder)
	if s.Element != "" {
		b.Element(s.Element)
	}
	if s.ID != "" {
		b.ID(s.ID)
	}
	for _, c := range s.Classes {
		b.Class(c)
	}
	for _, a := range s.Attrs {
		b.Attr(a)
	}
	for _, p := range s.PseudoClasses {
		b.PseudoClass(p)
	}
	if s.PseudoElement != "" {
		b.PseudoElement(s.PseudoElement)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadSheet reads and decodes a sheet file. Unknown fields are rejected to
// catch typos in hand written sheets early.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet file: %w", err)
	}
	return DecodeSheet(data)
}

// DecodeSheet decodes sheet YAML.
func DecodeSheet(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("unable to decode sheet: %w", err)
	}
	return &sheet, nil
}

// Compile builds every rule of the sheet into css. Failures are collected
// per selector so a single bad entry does not hide the rest; on any
// failure the partial result is discarded.
func (s *Sheet) Compile(indent int) (*stylesheet.Stylesheet, error) {
	out := &stylesheet.Stylesheet{Indent: indent}

	var errs error
	for i, rule := range s.Rules {
		if len(rule.Selectors) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("rule %d has no selectors", i+1))
			continue
		}

		var (
			sels []selector.Stringifier
			bad  bool
		)
		for j, spec := range rule.Selectors {
			sel, err := spec.Build()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("rule %d, selector %d: %w", i+1, j+1, err))
				bad = true
				continue
			}
			sels = append(sels, sel)
		}
		if bad {
			continue
		}

		decls := make([]stylesheet.Declaration, 0, len(rule.Declarations))
		for _, d := range rule.Declarations {
			decls = append(decls, stylesheet.Declaration{Property: d.Property, Value: d.Value})
		}
		out.Add(stylesheet.NewRule(decls, sels...))
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}
