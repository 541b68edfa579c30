package lang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr"
	"github.com/npillmayer/cslr/lr/parsetree"
	"github.com/npillmayer/cslr/lr/scanner"
	"github.com/npillmayer/cslr/lr/scanner/lexmach"
	"github.com/npillmayer/cslr/lr/slr"
)

// Language holds the bundled grammar together with its analysis, its parser
// tables and a parser. A Language is immutable after construction and may be
// used concurrently.
type Language struct {
	Grammar  *lr.Grammar
	Analysis *lr.LRAnalysis
	Tables   *lr.Tables
	parser   *slr.Parser
	lexOnce  sync.Once // monitors one-time creation of the lexer
	lexer    *lexmach.LMAdapter
	lexErr   error
}

// New builds grammar, analysis and SLR(1) tables of the bundled language.
func New() (*Language, error) {
	g, err := Grammar()
	if err != nil {
		return nil, fmt.Errorf("creating grammar: %w", err)
	}
	ga := lr.Analysis(g)
	lrgen := lr.NewTableGenerator(ga)
	if err = lrgen.CreateTables(); err != nil {
		return nil, fmt.Errorf("creating tables for %q: %w", g.Name, err)
	}
	if lrgen.HasConflicts {
		for _, c := range lrgen.Tables().Conflicts() {
			tracer().Errorf("%v", c)
		}
		return nil, fmt.Errorf("grammar %q is not SLR(1): %d conflicts", g.Name,
			len(lrgen.Tables().Conflicts()))
	}
	tracer().Infof("language %q ready, %d states", g.Name, lrgen.Tables().StateCount())
	return &Language{
		Grammar:  g,
		Analysis: ga,
		Tables:   lrgen.Tables(),
		parser:   slr.NewParser(lrgen.Tables()),
	}, nil
}

var defaultLang *Language
var startOnce sync.Once // monitors one-time creation of the default language

// Default returns a shared instance of the bundled language, created on first
// use.
func Default() *Language {
	startOnce.Do(func() {
		var err error
		if defaultLang, err = New(); err != nil {
			panic(fmt.Errorf("cannot create bundled language: %w", err))
		}
	})
	return defaultLang
}

// Parse parses a sequence of terminal names.
func (l *Language) Parse(kinds []string) (*parsetree.Node, error) {
	return l.parser.ParseKinds(kinds)
}

// ParseTokens parses a token sequence, as produced by a scanner.
func (l *Language) ParseTokens(tokens []cslr.Token) (*parsetree.Node, error) {
	return l.parser.Parse(tokens)
}

// ParseSource lexes source text and parses the resulting tokens.
// Spans of tree nodes are byte offsets into src.
func (l *Language) ParseSource(src string) (*parsetree.Node, error) {
	toks, err := l.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return l.parser.Parse(toks)
}

// Tokenize splits source text into tokens. Unrecognized input is skipped,
// but is reported as an error after the complete input has been read.
func (l *Language) Tokenize(src string) ([]cslr.Token, error) {
	l.lexOnce.Do(func() {
		l.lexer, l.lexErr = NewLexer()
	})
	if l.lexErr != nil {
		return nil, l.lexErr
	}
	scan, err := l.lexer.Scanner(src)
	if err != nil {
		return nil, err
	}
	var errs []error
	scan.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	toks := scanner.All(scan)
	if len(errs) > 0 {
		tracer().Infof("%d lexical errors", len(errs))
		return toks, fmt.Errorf("lexical error: %w", errs[0])
	}
	return toks, nil
}

// Declarations returns the top level declarations of a program, in input
// order.
func Declarations(program *parsetree.Node) []*parsetree.Node {
	if program == nil {
		return nil
	}
	return parsetree.FlattenList(program, DeclList)
}

// Format renders a parse tree as an indented S-expression, with
// declaration, statement, parameter and argument lists flattened.
func Format(root *parsetree.Node) string {
	return parsetree.Sexpr(root, parsetree.FlattenLists(ListSymbols...), parsetree.Indent("  "))
}
