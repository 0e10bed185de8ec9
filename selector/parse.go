package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse tokenizes selector text and replays its fragments through a
// Builder, so the same ordering and cardinality rules apply to parsed
// selectors as to hand-assembled chains. Complex selectors are split on
// combinators (whitespace, '>', '+', '~') and folded left to right with
// Combine, which means the descendant combinator renders in the padded
// form on the way back out.
//
// Attribute content between '[' and ']' and pseudo-class function
// arguments are captured verbatim - content is not validated. Selector
// groups (commas) are not supported here, split them before calling.
func Parse(s string) (Stringifier, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	var (
		parts []Stringifier
		seps  []string
		cur   *Builder
		sep   string
		firm  bool // sep came from an explicit combinator symbol
	)

	closeCompound := func() {
		if cur != nil {
			parts = append(parts, cur)
			cur = nil
			sep, firm = Descendant, false
		}
	}

	// begin opens a compound for the next fragment, recording the
	// pending combinator that separates it from the previous one.
	begin := func() *Builder {
		if cur == nil {
			cur = new(Builder)
			if len(parts) > 0 {
				seps = append(seps, sep)
			}
		}
		return cur
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.WhitespaceToken:
			closeCompound()

		case css.IdentToken:
			begin().Element(t.data)

		case css.HashToken:
			begin().ID(strings.TrimPrefix(t.data, "#"))

		case css.DelimToken:
			switch t.data {
			case ".":
				if i+1 >= len(toks) || toks[i+1].tt != css.IdentToken {
					return nil, fmt.Errorf("class name expected after '.' in selector %q", s)
				}
				i++
				begin().Class(toks[i].data)
			case "*":
				begin().Element(t.data)
			case Child, Adjacent, General:
				closeCompound()
				if len(parts) == 0 {
					return nil, fmt.Errorf("combinator %q without left operand in selector %q", t.data, s)
				}
				if firm {
					return nil, fmt.Errorf("consecutive combinators in selector %q", s)
				}
				sep, firm = t.data, true
			default:
				return nil, fmt.Errorf("unexpected %q in selector %q", t.data, s)
			}

		case css.LeftBracketToken:
			var raw strings.Builder
			for i++; ; i++ {
				if i >= len(toks) {
					return nil, fmt.Errorf("unterminated attribute in selector %q", s)
				}
				if toks[i].tt == css.RightBracketToken {
					break
				}
				raw.WriteString(toks[i].data)
			}
			begin().Attr(raw.String())

		case css.ColonToken:
			if i+1 >= len(toks) {
				return nil, fmt.Errorf("dangling ':' in selector %q", s)
			}
			i++
			switch toks[i].tt {
			case css.ColonToken:
				if i+1 >= len(toks) || toks[i+1].tt != css.IdentToken {
					return nil, fmt.Errorf("pseudo-element name expected after '::' in selector %q", s)
				}
				i++
				begin().PseudoElement(toks[i].data)
			case css.IdentToken:
				begin().PseudoClass(toks[i].data)
			case css.FunctionToken:
				// function token text includes the opening parenthesis
				var raw strings.Builder
				raw.WriteString(toks[i].data)
				for depth := 1; depth > 0; {
					i++
					if i >= len(toks) {
						return nil, fmt.Errorf("unterminated pseudo-class arguments in selector %q", s)
					}
					switch toks[i].tt {
					case css.FunctionToken, css.LeftParenthesisToken:
						depth++
					case css.RightParenthesisToken:
						depth--
					}
					raw.WriteString(toks[i].data)
				}
				begin().PseudoClass(raw.String())
			default:
				return nil, fmt.Errorf("pseudo-class name expected after ':' in selector %q", s)
			}

		case css.CommaToken:
			return nil, fmt.Errorf("selector groups are not supported: %q", s)

		default:
			return nil, fmt.Errorf("unexpected %q in selector %q", t.data, s)
		}

		if cur != nil {
			if err := cur.Err(); err != nil {
				return nil, err
			}
		}
	}
	closeCompound()

	if len(parts) == 0 {
		return nil, fmt.Errorf("empty selector %q", s)
	}
	if firm {
		return nil, fmt.Errorf("trailing combinator in selector %q", s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	result := parts[0]
	for i, sep := range seps {
		result = Combine(result, sep, parts[i+1])
	}
	return result, nil
}

type token struct {
	tt   css.TokenType
	data string
}

// tokenize runs the CSS tokenizer over the whole input up front. Selector
// strings are short, a slice keeps the scanning logic free of lexer
// lookahead.
func tokenize(s string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(s))

	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to tokenize selector %q: %w", s, err)
			}
			return toks, nil
		case css.CommentToken:
			continue
		default:
			toks = append(toks, token{tt: tt, data: string(data)})
		}
	}
}
