package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'cslr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Every
// literal and keyword produces tokens of a kind equal to itself.
//
// Literals and keywords are added before the patterns of init, thus
// keywords take precedence over identifier patterns of equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(QuoteLiteral(lit)), MakeToken(lit))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, Error: scanner.LogError, size: len(input)}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface. Token spans are byte offsets into the input.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	size    int
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Unmatched input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() cslr.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return lms.eof()
		}
		lms.scanner.TC = ui.FailTC
		if ui.FailTC <= ui.StartTC {
			lms.scanner.TC = ui.StartTC + 1
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return lms.eof()
	}
	token := tok.(*lexmachine.Token)
	kind, ok := token.Value.(string)
	if !ok {
		kind = fmt.Sprintf("%v", token.Value)
	}
	tracer().Debugf("token %s | %q @%d", kind, token.Lexeme, token.TC)
	return cslr.MakeToken(
		kind,
		string(token.Lexeme),
		cslr.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

func (lms *LMScanner) eof() cslr.Token {
	end := uint64(lms.size)
	return cslr.MakeToken(scanner.EOF, "", cslr.Span{end, end})
}

// ---------------------------------------------------------------------------

// QuoteLiteral escapes the regular expression operators in a literal.
func QuoteLiteral(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of the given kind.
func MakeToken(kind string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, kind, m), nil
	}
}
