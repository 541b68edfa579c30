/*
Package scanner defines an interface for scanners to be used with parsers of package lr.

Two scanner implementations are provided: (1) a token file reader, which reads
whitespace separated terminal names, and (2) an adapter for lexmachine, living
in sub-package `lexmach`.

A token file is a plain text file containing the names of terminals, separated
by whitespace. Lines starting with '#' are ignored. Every token spans exactly one
position of the token sequence:

	# a variable declaration
	type id ;

will produce tokens `type`@0…1, `id`@1…2 and `;`@2…3.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cslr.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.scanner")
}

// EOF is the kind of the token a tokenizer returns at the end of its input.
const EOF = lr.EOFName

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cslr.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// All drains a tokenizer. The final end-of-input token is not included.
func All(t Tokenizer) []cslr.Token {
	var toks []cslr.Token
	for tok := t.NextToken(); tok.Kind() != EOF; tok = t.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

// --- Token files -----------------------------------------------------------

// FieldTokenizer reads whitespace separated terminal names.
// Create one with TokenFile.
type FieldTokenizer struct {
	lines  *bufio.Scanner
	fields []string
	pos    uint64
	done   bool
	Error  func(error) // error handler
}

var _ Tokenizer = (*FieldTokenizer)(nil)

// TokenFile creates a tokenizer for a token file.
func TokenFile(input io.Reader) *FieldTokenizer {
	return &FieldTokenizer{
		lines: bufio.NewScanner(input),
		Error: LogError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *FieldTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = LogError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *FieldTokenizer) NextToken() cslr.Token {
	for len(t.fields) == 0 {
		if t.done || !t.lines.Scan() {
			if !t.done {
				t.done = true
				if err := t.lines.Err(); err != nil {
					t.Error(err)
				}
				tracer().Debugf("token file exhausted after %d tokens", t.pos)
			}
			return cslr.MakeToken(EOF, "", cslr.Span{t.pos, t.pos})
		}
		line := strings.TrimSpace(t.lines.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		t.fields = strings.Fields(line)
	}
	kind := t.fields[0]
	t.fields = t.fields[1:]
	tok := cslr.MakeToken(kind, kind, cslr.Span{t.pos, t.pos + 1})
	t.pos++
	return tok
}

// Split tokenizes a string in token file format.
func Split(input string) []cslr.Token {
	return All(TokenFile(strings.NewReader(input)))
}
