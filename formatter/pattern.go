package formatter

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// TokenKind distinguishes literal text from directives
type TokenKind uint8

const (
	// LiteralToken is a run of text copied verbatim
	LiteralToken TokenKind = iota
	// DirectiveToken is a %-directive with an optional {arg}
	DirectiveToken
)

// Token is one lexical unit of a pattern
type Token struct {
	// Text is the literal text or the directive name
	Text string
	// Arg is the {...} sub-format of a directive
	Arg  string
	Kind TokenKind
}

// PatternError reports a sub-format block that is never closed
type PatternError struct {
	Pattern string
	// Pos is the offset of the % that opened the failing directive
	Pos int
}

// Suffix returns the unparsed remainder of the pattern
func (e *PatternError) Suffix() string {
	return e.Pattern[e.Pos:]
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern parse error: %q - %q: missing '}'", e.Pattern, e.Suffix())
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Tokenize splits pattern into literal and directive tokens in a single
// left-to-right pass.
//
// "%%" is a literal percent. Any other % starts a directive whose name is
// the following run of letters (stray '}' characters are kept in the name,
// so they fail lookup). A '{' right after the name opens a sub-format that
// runs to the next '}'. If that '}' is missing, Tokenize returns the tokens
// collected so far together with a *PatternError and ignores the rest of
// the pattern.
func Tokenize(pattern string) ([]Token, error) {
	var (
		tokens []Token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Text: lit.String(), Kind: LiteralToken})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			lit.WriteByte(pattern[i])
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '%' {
			lit.WriteByte('%')
			i++
			continue
		}

		n := i + 1
		for n < len(pattern) && (isAlpha(pattern[n]) || pattern[n] == '}') {
			n++
		}
		name := pattern[i+1 : n]

		var arg string
		if n < len(pattern) && pattern[n] == '{' {
			end := strings.IndexByte(pattern[n+1:], '}')
			if end < 0 {
				flush()
				return tokens, &PatternError{Pattern: pattern, Pos: i}
			}
			arg = pattern[n+1 : n+1+end]
			n += end + 2
		}

		flush()
		tokens = append(tokens, Token{Text: name, Arg: arg, Kind: DirectiveToken})
		i = n - 1
	}
	flush()
	return tokens, nil
}

// Compile turns a pattern into its ordered item list. The returned items
// are always usable: unknown directives become error markers, and on a
// tokenize error the items cover the well-formed prefix. The error, if any,
// is advisory and may combine several problems.
func Compile(pattern string) ([]Item, error) {
	tokens, err := Tokenize(pattern)
	items := make([]Item, 0, len(tokens))
	for _, tok := range tokens {
		it, itemErr := newItem(tok)
		err = multierr.Append(err, itemErr)
		items = append(items, it)
	}
	return items, err
}

func newItem(tok Token) (Item, error) {
	if tok.Kind == LiteralToken {
		return Item{kind: StringItem, text: tok.Text}, nil
	}
	factory, ok := Lookup(tok.Text)
	if !ok {
		return errorItem("%" + tok.Text), nil
	}
	it, err := factory(tok.Arg)
	if err != nil {
		return errorItem("%" + tok.Text + "{" + tok.Arg + "}"), err
	}
	return it, nil
}
