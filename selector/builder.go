// Package selector assembles CSS selector strings from ordered fragments
// and enforces the part ordering and singleton rules of the selector
// grammar. Fragment content is never validated - only its position and
// cardinality.
package selector

import (
	"errors"
	"strings"
)

// Category identifies the grammar position of a selector fragment.
type Category int

const (
	CategoryElement Category = iota
	CategoryID
	CategoryClass
	CategoryAttr
	CategoryPseudoClass
	CategoryPseudoElement
)

// String returns the human readable category name as used in error
// messages and inspection output.
func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttr:
		return "attribute"
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// The only two failure conditions in this package. Both leave the failed
// builder fully reset, so no partial state survives a bad call.
var (
	ErrOutOfOrder = errors.New("selector parts must follow the order: element, id, class, attribute, pseudo-class, pseudo-element")
	ErrDuplicate  = errors.New("element, id and pseudo-element may occur at most once inside a selector")
)

// Builder accumulates selector fragments through chained calls and renders
// them with Stringify. A builder is single-use: Stringify consumes the
// accumulated state, and a failed fragment call clears it as well.
//
// A zero Builder is ready to use. Instances are not safe for concurrent
// use.
type Builder struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	tail Category // highest category appended so far
	some bool     // at least one fragment is present
	err  error
}

// Factory entry points, one per category, so a chain can start at any
// category-initial call.

// Element starts a new selector with an element token.
func Element(v string) *Builder { return new(Builder).Element(v) }

// ID starts a new selector with an id token.
func ID(v string) *Builder { return new(Builder).ID(v) }

// Class starts a new selector with a class token.
func Class(v string) *Builder { return new(Builder).Class(v) }

// Attr starts a new selector with an attribute token. The token is the
// literal content to appear between the brackets.
func Attr(v string) *Builder { return new(Builder).Attr(v) }

// PseudoClass starts a new selector with a pseudo-class token.
func PseudoClass(v string) *Builder { return new(Builder).PseudoClass(v) }

// PseudoElement starts a new selector with a pseudo-element token.
func PseudoElement(v string) *Builder { return new(Builder).PseudoElement(v) }

// Element sets the element token. Fails if any other category is already
// populated or the element was set before.
func (b *Builder) Element(v string) *Builder {
	if b.push(CategoryElement) {
		b.element, b.hasElement = v, true
	}
	return b
}

// ID sets the id token. Fails if a later category is already populated or
// the id was set before.
func (b *Builder) ID(v string) *Builder {
	if b.push(CategoryID) {
		b.id, b.hasID = v, true
	}
	return b
}

// Class appends a class token. Repeated classes are allowed and keep their
// insertion order in the output.
func (b *Builder) Class(v string) *Builder {
	if b.push(CategoryClass) {
		b.classes = append(b.classes, v)
	}
	return b
}

// Attr appends an attribute token, the literal content to appear between
// the brackets.
func (b *Builder) Attr(v string) *Builder {
	if b.push(CategoryAttr) {
		b.attrs = append(b.attrs, v)
	}
	return b
}

// PseudoClass appends a pseudo-class token.
func (b *Builder) PseudoClass(v string) *Builder {
	if b.push(CategoryPseudoClass) {
		b.pseudoClasses = append(b.pseudoClasses, v)
	}
	return b
}

// PseudoElement sets the pseudo-element token. Fails if it was set before.
func (b *Builder) PseudoElement(v string) *Builder {
	if b.push(CategoryPseudoElement) {
		b.pseudoElement, b.hasPseudoElement = v, true
	}
	return b
}

// Err returns the violation recorded by the most recent fragment call, or
// nil if that call succeeded. The failed call already cleared the
// accumulated state, so the chain may continue from an empty builder; the
// next successful fragment call clears the recorded violation, as does
// Stringify.
func (b *Builder) Err() error {
	return b.err
}

// Stringify renders the accumulated fragments in fixed category order with
// no separators between categories: element, #id, .class per class, [attr]
// per attribute, :pseudo-class per pseudo-class, ::pseudo-element. The
// builder is reset afterwards - a second call without new fragments
// returns the empty string. There is no failure mode.
func (b *Builder) Stringify() string {
	var sb strings.Builder
	if b.hasElement {
		sb.WriteString(b.element)
	}
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, a := range b.attrs {
		sb.WriteByte('[')
		sb.WriteString(a)
		sb.WriteByte(']')
	}
	for _, p := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
	b.reset()
	return sb.String()
}

// Fragment is one accumulated token together with its category, exposed
// for inspection output.
type Fragment struct {
	Category Category
	Value    string
}

// Fragments returns a snapshot of the accumulated fragments in category
// order without consuming the builder.
func (b *Builder) Fragments() []Fragment {
	var out []Fragment
	if b.hasElement {
		out = append(out, Fragment{CategoryElement, b.element})
	}
	if b.hasID {
		out = append(out, Fragment{CategoryID, b.id})
	}
	for _, c := range b.classes {
		out = append(out, Fragment{CategoryClass, c})
	}
	for _, a := range b.attrs {
		out = append(out, Fragment{CategoryAttr, a})
	}
	for _, p := range b.pseudoClasses {
		out = append(out, Fragment{CategoryPseudoClass, p})
	}
	if b.hasPseudoElement {
		out = append(out, Fragment{CategoryPseudoElement, b.pseudoElement})
	}
	return out
}

// push validates that a fragment of category c may be appended and reports
// whether the caller should proceed. On violation the builder is reset
// before the error is recorded.
func (b *Builder) push(c Category) bool {
	if b.some && c < b.tail {
		b.reset()
		b.err = ErrOutOfOrder
		return false
	}
	if b.singletonSet(c) {
		b.reset()
		b.err = ErrDuplicate
		return false
	}
	b.tail = c
	b.some = true
	b.err = nil
	return true
}

func (b *Builder) singletonSet(c Category) bool {
	switch c {
	case CategoryElement:
		return b.hasElement
	case CategoryID:
		return b.hasID
	case CategoryPseudoElement:
		return b.hasPseudoElement
	default:
		return false
	}
}

func (b *Builder) reset() {
	*b = Builder{}
}
