package slr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cslr/lr"
)

// ErrorKind tells user input errors from table defects.
type ErrorKind uint8

// Kinds of parse errors.
const (
	// The ACTION table has no entry for the current state and token.
	UnexpectedToken ErrorKind = iota + 1
	// The GOTO table has no entry after a reduction. This indicates
	// malformed tables, not malformed input.
	MissingGoto
)

// Sentinel errors, to be used with errors.Is.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMissingGoto     = errors.New("missing GOTO entry")
)

// ParseError is the error type returned by Parse. A parse stops at the
// first error.
type ParseError struct {
	Kind     ErrorKind
	Index    int      // 0-based position of the offending token
	Token    string   // kind of the offending token
	Lexeme   string   // lexeme of the offending token
	State    int      // parser state at the time of the error
	Symbol   string   // non-terminal without GOTO entry, for MissingGoto
	Expected []string // terminals with an action in State, for UnexpectedToken
}

func (e *ParseError) Error() string {
	if e.Kind == MissingGoto {
		return fmt.Sprintf("no GOTO entry for state %d and %s, reducing before token %d",
			e.State, e.Symbol, e.Index)
	}
	var msg string
	switch {
	case e.Token == lr.EOFName:
		msg = fmt.Sprintf("unexpected end of input at token %d", e.Index)
	case e.Lexeme != "" && e.Lexeme != e.Token:
		msg = fmt.Sprintf("unexpected token %q (%s) at index %d", e.Lexeme, e.Token, e.Index)
	default:
		msg = fmt.Sprintf("unexpected token %q at index %d", e.Token, e.Index)
	}
	if len(e.Expected) > 0 {
		msg += ", expected one of: " + strings.Join(e.Expected, " ")
	}
	return msg
}

// Is lets errors.Is match a ParseError against the sentinel errors.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrUnexpectedToken:
		return e.Kind == UnexpectedToken
	case ErrMissingGoto:
		return e.Kind == MissingGoto
	}
	return false
}
