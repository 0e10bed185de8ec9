package selector

// Stringifier is the single capability shared by builders and combined
// selectors: render yourself as selector text.
type Stringifier interface {
	Stringify() string
}

// Standard combinator symbols. Combine accepts any string, these cover the
// grammar.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	General    = "~"
)

// Composite is an immutable combined selector produced by Combine. It only
// implements the Stringify contract and cannot be extended with further
// fragments.
type Composite struct {
	left       string
	combinator string
	right      string
}

// Combine renders left and right (consuming their accumulated state when
// they are builders) and joins the results with the combinator symbol
// padded by exactly one space on each side. The padding applies even when
// the symbol is itself whitespace, so the descendant combinator renders
// with three spaces. Preserved behavior, do not "fix".
func Combine(left Stringifier, combinator string, right Stringifier) Composite {
	return Composite{left: left.Stringify(), combinator: combinator, right: right.Stringify()}
}

// Stringify returns the combined text. The operand texts were fixed when
// the composite was created, so repeated calls return the identical string.
func (c Composite) Stringify() string {
	return c.left + " " + c.combinator + " " + c.right
}

// Accessors for inspection output.

func (c Composite) Left() string       { return c.left }
func (c Composite) Combinator() string { return c.combinator }
func (c Composite) Right() string      { return c.right }
