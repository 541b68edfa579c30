package slr

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr"
	"github.com/npillmayer/cslr/lr/parsetree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeParser(t *testing.T, b *lr.GrammarBuilder) *Parser {
	t.Helper()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	return NewParser(lrgen.Tables())
}

func signedVarParser(t *testing.T) *Parser {
	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("id").End()
	b.LHS("Sign").T("+").End()
	b.LHS("Sign").T("-").End()
	b.LHS("Sign").Epsilon()
	return makeParser(t, b)
}

func exprParser(t *testing.T) *Parser {
	b := lr.NewGrammarBuilder("Expressions")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	return makeParser(t, b)
}

func tokens(s string) []string {
	return strings.Fields(s)
}

func TestSignedVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.slr")
	defer teardown()
	//
	p := signedVarParser(t)
	tree, err := p.ParseKinds(tokens("+ id"))
	if err != nil {
		t.Fatal(err)
	}
	if s := parsetree.Sexpr(tree); s != "(Var (Sign +) id)" {
		t.Errorf("unexpected tree %s", s)
	}
	tree, err = p.ParseKinds(tokens("id"))
	if err != nil {
		t.Fatal(err)
	}
	if s := parsetree.Sexpr(tree); s != "(Var (Sign) id)" {
		t.Errorf("unexpected tree %s", s)
	}
	if sign := tree.Child(0); !sign.IsEmpty() || sign.Span != (cslr.Span{0, 0}) {
		t.Errorf("expected empty Sign node before token 0, have %v %v", sign, sign.Span)
	}
}

func TestExpressionTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.slr")
	defer teardown()
	//
	p := exprParser(t)
	input := tokens("id + id * ( id )")
	tree, err := p.ParseKinds(input)
	if err != nil {
		t.Fatal(err)
	}
	expected := "(E (E (T (F id))) + (T (T (F id)) * (F ( (E (T (F id))) ))))"
	if s := parsetree.Sexpr(tree); s != expected {
		t.Errorf("unexpected tree %s", s)
	}
	if k := strings.Join(tree.Kinds(), " "); k != strings.Join(input, " ") {
		t.Errorf("leaves %q do not reproduce input", k)
	}
	if tree.Rule != 1 || tree.Span != (cslr.Span{0, 7}) {
		t.Errorf("expected root E ➞ E + T over (0…7), is rule %d over %v", tree.Rule, tree.Span)
	}
}

func TestExplicitEndMarker(t *testing.T) {
	p := exprParser(t)
	if _, err := p.ParseKinds(tokens("id * id $")); err != nil {
		t.Errorf("expected explicit end marker to be accepted, got %v", err)
	}
	_, err := p.ParseKinds(tokens("id $ * id"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Index != 1 || perr.Token != lr.EOFName {
		t.Errorf("expected error at index 1 for inner end marker, got %v", err)
	}
	// an earlier error wins over an inner end marker
	_, err = p.ParseKinds(tokens("+ id $ id"))
	if !errors.As(err, &perr) || perr.Index != 0 || perr.Token != "+" || perr.State != 0 {
		t.Errorf("expected error at index 0 for '+', got %v", err)
	}
	// an inner end marker is reported in the state reached before it
	_, err = p.ParseKinds(tokens("( id $ )"))
	if !errors.As(err, &perr) || perr.Index != 2 || perr.State == 0 {
		t.Errorf("expected error at index 2 in a non-initial state, got %v", err)
	}
}

func TestUnexpectedToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.slr")
	defer teardown()
	//
	p := exprParser(t)
	_, err := p.ParseKinds(tokens("id + * id"))
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected unexpected-token error, got %v", err)
	}
	if errors.Is(err, ErrMissingGoto) {
		t.Errorf("unexpected-token error must not match ErrMissingGoto")
	}
	perr := err.(*ParseError)
	t.Logf("error: %v", perr)
	if perr.Index != 2 || perr.Token != "*" {
		t.Errorf("expected error at index 2 for '*', have %d for %q", perr.Index, perr.Token)
	}
	if e := strings.Join(perr.Expected, " "); e != "( id" {
		t.Errorf("expected '( id' to be expected, have %q", e)
	}
}

func TestUnexpectedEndOfInput(t *testing.T) {
	p := exprParser(t)
	_, err := p.ParseKinds(tokens("( id +"))
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if perr.Index != 3 || perr.Token != lr.EOFName {
		t.Errorf("expected error at end of input (3), have %d for %q", perr.Index, perr.Token)
	}
	if !strings.Contains(perr.Error(), "end of input") {
		t.Errorf("unexpected message %q", perr.Error())
	}
	if _, err = p.ParseKinds(nil); err == nil {
		t.Errorf("expected empty input to be rejected")
	}
}

func TestUnknownTokenKind(t *testing.T) {
	p := exprParser(t)
	toks := []cslr.Token{
		cslr.MakeToken("id", "x", cslr.Span{0, 1}),
		cslr.MakeToken("?", "?", cslr.Span{1, 2}),
	}
	_, err := p.Parse(toks)
	perr, ok := err.(*ParseError)
	if !ok || perr.Index != 1 {
		t.Errorf("expected error at index 1 for unknown token, got %v", err)
	}
}

// withoutGoto hides the GOTO entries of one non-terminal.
type withoutGoto struct {
	*lr.Tables
	lhs string
}

func (w withoutGoto) Goto(state int, A *lr.Symbol) (int, bool) {
	if A.Name == w.lhs {
		return 0, false
	}
	return w.Tables.Goto(state, A)
}

func TestMissingGotoError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.slr")
	defer teardown()
	//
	p := exprParser(t)
	p.tables = withoutGoto{Tables: p.tables.(*lr.Tables), lhs: "F"}
	_, err := p.ParseKinds(tokens("id"))
	if !errors.Is(err, ErrMissingGoto) || errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected missing-goto error, got %v", err)
	}
	perr := err.(*ParseError)
	if perr.Symbol != "F" || perr.State != 0 || perr.Index != 1 {
		t.Errorf("expected F missing in state 0 before token 1, have %s in %d before %d",
			perr.Symbol, perr.State, perr.Index)
	}
	if !strings.Contains(err.Error(), "state 0") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestShiftWinsMakesRightAssociativeTree(t *testing.T) {
	b := lr.NewGrammarBuilder("Ambiguous")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").T("id").End()
	p := makeParser(t, b)
	tree, err := p.ParseKinds(tokens("id + id + id"))
	if err != nil {
		t.Fatal(err)
	}
	if s := parsetree.Sexpr(tree); s != "(E (E id) + (E (E id) + (E id)))" {
		t.Errorf("unexpected tree %s", s)
	}
}

func TestConcurrentParses(t *testing.T) {
	p := exprParser(t)
	inputs := []string{"id", "id + id", "( id * id ) + id", "id * ( id + id )"}
	var wg sync.WaitGroup
	errs := make(chan error, 4*len(inputs))
	for n := 0; n < 4; n++ {
		for _, in := range inputs {
			wg.Add(1)
			go func(in string) {
				defer wg.Done()
				tree, err := p.ParseKinds(tokens(in))
				if err == nil && strings.Join(tree.Kinds(), " ") != in {
					err = errors.New("leaves do not reproduce " + in)
				}
				if err != nil {
					errs <- err
				}
			}(in)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
