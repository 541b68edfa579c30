package lang

import (
	"github.com/npillmayer/cslr/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes
var literals = []string{"==", "!=", "(", ")", "{", "}", ";", "=", "+", "-", "*", "/", ","}

// The keyword tokens
var keywords = []string{"if", "else", "while", "for", "return"}

// Type names are all lexed as terminal 'type'.
var typeNames = `int|char|void|float|double|long|bool`

// NewLexer creates a lexmachine lexer for source text of the bundled language.
// Whitespace and comments in C style are skipped.
func NewLexer() (*lexmach.LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), lexmach.Skip)
		lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), lexmach.Skip)
		lexer.Add([]byte(typeNames), lexmach.MakeToken("type"))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("id"))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), lexmach.MakeToken("num"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	tracer().Debugf("creating lexer")
	return lexmach.NewLMAdapter(init, literals, keywords)
}
