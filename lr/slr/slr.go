/*
Package slr provides an SLR(1)-parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The SLR parser
utilizes these tables to create a parse tree for a given token sequence.

This parser is intended for small to moderate grammars, e.g. for configuration
input or small domain-specific languages.

Package slr can only handle SLR(1) grammars. Tables of grammars with conflicts
may be used, but the parser will follow whichever action won the conflict
during table construction.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("id").End()  // Var  ➞ Sign id
	b.LHS("Sign").T("+").End()            // Sign ➞ +
	b.LHS("Sign").T("-").End()            // Sign ➞ -
	b.LHS("Sign").Epsilon()               // Sign ➞ ε
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga := lr.Analysis(g)
	lrgen := lr.NewTableGenerator(ga)
	err = lrgen.CreateTables()
	if lrgen.HasConflicts { ... }

Finally parse some input:

	p := slr.NewParser(lrgen.Tables())
	tree, err := p.ParseKinds([]string{"+", "id"})

The end marker "$" will be appended to the input if it is missing.
Parsing stops at the first token for which the ACTION table has no entry;
the error returned will be a *ParseError telling the index of that token.
A parser holds no state between calls to Parse and may be used from
multiple goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"errors"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr"
	"github.com/npillmayer/cslr/lr/parsetree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cslr.slr'.
func tracer() tracing.Trace {
	return tracing.Select("cslr.slr")
}

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G      *lr.Grammar
	tables parseTables
}

// parseTables is the part of *lr.Tables the driver reads.
type parseTables interface {
	Action(state int, a *lr.Symbol) lr.Action
	Goto(state int, A *lr.Symbol) (int, bool)
	Expected(state int) []*lr.Symbol
}

// We store pairs of states and tree nodes on the parse stack.
type stackitem struct {
	state int             // ID of a CFSM state
	node  *parsetree.Node // tree for the symbol which led to state
}

// NewParser creates an SLR(1) parser for a set of tables.
func NewParser(tables *lr.Tables) *Parser {
	parser := &Parser{}
	if tables != nil {
		parser.G = tables.Grammar()
		parser.tables = tables
	}
	return parser
}

// ParseKinds parses a sequence of terminal names. Every token's lexeme is its
// kind.
func (p *Parser) ParseKinds(kinds []string) (*parsetree.Node, error) {
	return p.Parse(cslr.Tokens(kinds...))
}

// Parse parses a token sequence. On success it returns the parse tree, rooted
// at the start symbol of the grammar. On failure the error is a *ParseError,
// unless the parser has not been initialized.
func (p *Parser) Parse(tokens []cslr.Token) (*parsetree.Node, error) {
	if p.G == nil || p.tables == nil {
		tracer().Errorf("SLR(1)-parser not initialized")
		return nil, errors.New("SLR(1)-parser not initialized")
	}
	input := p.terminate(tokens)
	last := len(input) - 1
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	stack := make([]stackitem, 1, 64)
	stack[0] = stackitem{state: 0}
	pos := 0
	for {
		tos := stack[len(stack)-1]
		token := input[pos]
		if token.Kind() == lr.EOFName && pos < last { // end marker before end of input
			return nil, p.unexpected(pos, token, tos.state)
		}
		var action lr.Action
		if a := p.G.SymbolByName(token.Kind()); a != nil && a.IsTerminal() {
			action = p.tables.Action(tos.state, a)
		}
		tracer().Debugf("action(%d, %s) = %v", tos.state, token.Kind(), action)
		switch action.Kind {
		case lr.ShiftAction:
			stack = append(stack, stackitem{action.State, parsetree.Leaf(token)})
			pos++
		case lr.ReduceAction:
			var next stackitem
			var err error
			if stack, next, err = p.reduce(stack, action.Rule, pos, token); err != nil {
				return nil, err
			}
			stack = append(stack, next)
		case lr.AcceptAction:
			root := stack[len(stack)-1].node
			tracer().Infof("accepted %d tokens, tree root is %s", pos, root.Symbol)
			return root, nil
		default:
			return nil, p.unexpected(pos, token, tos.state)
		}
	}
}

// terminate appends the end marker, if missing. The input slice of the caller
// is not modified.
func (p *Parser) terminate(tokens []cslr.Token) []cslr.Token {
	n := len(tokens)
	if n > 0 && tokens[n-1].Kind() == lr.EOFName {
		return tokens
	}
	var at uint64
	if n > 0 {
		at = tokens[n-1].Span().To()
	}
	input := make([]cslr.Token, n, n+1)
	copy(input, tokens)
	return append(input, cslr.MakeToken(lr.EOFName, "", cslr.Span{at, at}))
}

// reduce performs a reduce action for a rule
//
//    LHS ➞ X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as states
//
//    [TOS]  Sn(Xn) ... S1(X1)  ...
//
// The nodes of X1 … Xn become the children of a new node for LHS. An epsilon
// rule pops nothing and yields a childless node.
func (p *Parser) reduce(stack []stackitem, rule *lr.Rule, pos int, lookahead cslr.Token) (
	[]stackitem, stackitem, error) {
	//
	tracer().Debugf("reduce %v", rule)
	var node *parsetree.Node
	if n := rule.Len(); n == 0 {
		at := lookahead.Span().From()
		node = parsetree.Empty(rule.LHS.Name, rule.Serial, at)
	} else {
		if n >= len(stack) {
			tracer().Errorf("stack underflow reducing %v", rule)
			return stack, stackitem{}, &ParseError{
				Kind:   MissingGoto,
				Index:  pos,
				State:  stack[len(stack)-1].state,
				Symbol: rule.LHS.Name,
			}
		}
		handle := stack[len(stack)-n:]
		children := make([]*parsetree.Node, n)
		for i, item := range handle {
			children[i] = item.node
		}
		stack = stack[:len(stack)-n]
		node = parsetree.Interior(rule.LHS.Name, rule.Serial, children)
	}
	state := stack[len(stack)-1].state
	next, ok := p.tables.Goto(state, rule.LHS)
	if !ok {
		tracer().Errorf("no GOTO entry for state %d and %s", state, rule.LHS)
		return stack, stackitem{}, &ParseError{
			Kind:   MissingGoto,
			Index:  pos,
			State:  state,
			Symbol: rule.LHS.Name,
		}
	}
	tracer().Debugf("reduced to next state = %d", next)
	return stack, stackitem{state: next, node: node}, nil
}

func (p *Parser) unexpected(pos int, token cslr.Token, state int) error {
	err := &ParseError{
		Kind:   UnexpectedToken,
		Index:  pos,
		Token:  token.Kind(),
		Lexeme: token.Lexeme(),
		State:  state,
	}
	for _, a := range p.tables.Expected(state) {
		err.Expected = append(err.Expected, a.Name)
	}
	tracer().Infof("syntax error: %v", err)
	return err
}
