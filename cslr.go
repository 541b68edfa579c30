package cslr

import (
	"fmt"
	"strings"
)

// --- A general purpose interface for tokens --------------------------------

// Token represents an input token. Tokens are usually produced by a scanner
// and reflect terminals of a grammar.
//
// An example would be a token for an identifier:
//
//    Kind   = "id"        // name of the grammar terminal this token matches
//    Lexeme = "counter"   // lexeme how it appeared in the input stream
//    Span   = 4…5         // occured at token position 4 of the input
//
// For token files the lexeme is identical to the kind.
type Token interface {
	Kind() string
	Lexeme() string
	Span() Span
}

// Lex is a very unsophisticated token type, used as default by scanners
// and parsers of this module.
type Lex struct {
	kind   string
	lexeme string
	span   Span
}

var _ Token = Lex{}

// MakeToken creates a default token.
func MakeToken(kind, lexeme string, span Span) Lex {
	return Lex{kind: kind, lexeme: lexeme, span: span}
}

// Kind is part of interface Token.
func (t Lex) Kind() string {
	return t.kind
}

// Lexeme is part of interface Token.
func (t Lex) Lexeme() string {
	return t.lexeme
}

// Span is part of interface Token.
func (t Lex) Span() Span {
	return t.span
}

func (t Lex) String() string {
	if t.lexeme == t.kind || t.lexeme == "" {
		return t.kind
	}
	return fmt.Sprintf("%s(%s)", t.kind, t.lexeme)
}

// Tokens creates a token sequence from terminal names, with every token
// spanning exactly one input position.
func Tokens(kinds ...string) []Token {
	toks := make([]Token, len(kinds))
	for i, k := range kinds {
		toks[i] = MakeToken(k, k, Span{uint64(i), uint64(i + 1)})
	}
	return toks
}

// Kinds returns the terminal names of a token sequence.
func Kinds(toks []Token) []string {
	kinds := make([]string, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind()
	}
	return kinds
}

// TokenString joins the kinds of a token sequence with blanks.
func TokenString(toks []Token) string {
	return strings.Join(Kinds(toks), " ")
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
