package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func namesOf(S *SymbolSet) string {
	return symbolNames(S.Symbols())
}

func TestFirstWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").RHS("a", "B").End()
	b.LHS("A").Epsilon()
	b.LHS("B").RHS("b").End()
	b.LHS("B").Epsilon()
	g := makeGrammar(t, b)
	ga := Analysis(g)
	ga.Dump()
	if f := namesOf(ga.First(g.SymbolByName("A"))); f != "a ε" {
		t.Errorf("expected FIRST(A) = {a, ε}, is {%s}", f)
	}
	if f := namesOf(ga.First(g.SymbolByName("B"))); f != "b ε" {
		t.Errorf("expected FIRST(B) = {b, ε}, is {%s}", f)
	}
	if f := namesOf(ga.First(g.SymbolByName("a"))); f != "a" {
		t.Errorf("expected FIRST(a) = {a}, is {%s}", f)
	}
	if !ga.Nullable(g.SymbolByName("B")) {
		t.Errorf("expected B to be nullable")
	}
}

func TestFollowPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("Program").N("S").End()
	b.LHS("S").N("A").N("S").End()
	b.LHS("S").Epsilon()
	b.LHS("A").T("a").End()
	g := makeGrammar(t, b)
	ga := Analysis(g)
	S, A := g.SymbolByName("S"), g.SymbolByName("A")
	if f := namesOf(ga.Follow(S)); f != "$" {
		t.Errorf("expected FOLLOW(S) = {$}, is {%s}", f)
	}
	followA := ga.Follow(A)
	for _, la := range ga.Follow(S).Symbols() {
		if !followA.Contains(la) {
			t.Errorf("expected FOLLOW(A) to contain %s", la)
		}
	}
	for _, la := range ga.First(S).Symbols() {
		if !la.IsEpsilon() && !followA.Contains(la) {
			t.Errorf("expected FOLLOW(A) to contain %s", la)
		}
	}
	if f := namesOf(ga.Follow(g.Start())); f != "$" {
		t.Errorf("expected FOLLOW(Program) = {$}, is {%s}", f)
	}
}

func TestFirstFollowAreFixedPoints(t *testing.T) {
	g := expressionGrammar(t)
	ga := Analysis(g)
	first := make(map[*Symbol]*SymbolSet)
	follow := make(map[*Symbol]*SymbolSet)
	g.EachNonTerminal(func(A *Symbol) {
		first[A] = ga.First(A)
		follow[A] = ga.Follow(A)
	})
	if ga.firstPass() {
		t.Errorf("expected another FIRST pass to change nothing")
	}
	if ga.followPass() {
		t.Errorf("expected another FOLLOW pass to change nothing")
	}
	again := Analysis(g)
	g.EachNonTerminal(func(A *Symbol) {
		if !first[A].Equals(again.First(A)) || !follow[A].Equals(again.Follow(A)) {
			t.Errorf("analysis of %s is not reproducible", A)
		}
	})
}

func TestEpsilonNeverInFollow(t *testing.T) {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").N("C").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("C").N("A").End()
	g := makeGrammar(t, b)
	ga := Analysis(g)
	g.EachNonTerminal(func(A *Symbol) {
		if ga.Follow(A).Contains(g.Epsilon()) {
			t.Errorf("FOLLOW(%s) contains epsilon", A)
		}
	})
	if f := namesOf(ga.Follow(g.SymbolByName("A"))); f != "$ a b" {
		t.Errorf("expected FOLLOW(A) = {$, a, b}, is {%s}", f)
	}
}

func TestFirstOfSequence(t *testing.T) {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("c").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	g := makeGrammar(t, b)
	ga := Analysis(g)
	A, c := g.SymbolByName("A"), g.SymbolByName("c")
	if f := namesOf(ga.FirstOfSequence([]*Symbol{A, c})); f != "a c" {
		t.Errorf("expected FIRST(A c) = {a, c}, is {%s}", f)
	}
	if f := namesOf(ga.FirstOfSequence([]*Symbol{A, A})); f != "a ε" {
		t.Errorf("expected FIRST(A A) = {a, ε}, is {%s}", f)
	}
	if f := namesOf(ga.FirstOfSequence(nil)); f != "ε" {
		t.Errorf("expected FIRST() = {ε}, is {%s}", f)
	}
}
