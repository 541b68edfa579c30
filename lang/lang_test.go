package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/cslr/lr"
	"github.com/npillmayer/cslr/lr/slr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	g, err := Grammar()
	require.NoError(t, err)
	assert.Equal(t, "Program", g.Start().Name)
	assert.Len(t, g.Terminals(), 21)
	assert.Len(t, g.NonTerminals(), 25)
	assert.Equal(t, len(productions)+1, g.Size(), "rules including the augmented start rule")
	assert.NoError(t, lr.VerifyEBNF(g))
}

func TestFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	L := Default()
	ga, g := L.Analysis, L.Grammar
	names := func(S *lr.SymbolSet) string {
		return strings.Join(S.Names(), " ")
	}
	first := map[string]string{
		"Program":  "type",
		"DeclList": "type ε",
		"Stmt":     "( - for id if num return type while {",
		"Primary":  "( id num",
		"ArgTail":  ", ε",
	}
	for A, f := range first {
		assert.Equal(t, f, names(ga.First(g.SymbolByName(A))), "FIRST(%s)", A)
	}
	follow := map[string]string{
		"Program":   "$",
		"ParamList": ")",
		"Expr":      ") , ;",
		"StmtList":  "}",
		"Decl":      "$ type",
		"Unary":     "!= ) * + , - / ; ==",
	}
	for A, f := range follow {
		assert.Equal(t, f, names(ga.Follow(g.SymbolByName(A))), "FOLLOW(%s)", A)
	}
	for _, A := range []string{"DeclList", "ParamList", "ParamTail", "StmtList", "OptExpr", "ArgList", "ArgTail"} {
		assert.True(t, ga.Nullable(g.SymbolByName(A)), "%s should be nullable", A)
	}
	assert.False(t, ga.Nullable(g.SymbolByName("Program")))
}

func TestTablesConflictFree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	L, err := New()
	require.NoError(t, err)
	assert.Equal(t, 105, L.Tables.StateCount())
	assert.Empty(t, L.Tables.Conflicts())
}

func TestDefaultIsShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	assert.Same(t, Default(), Default())
}

var validPrograms = []string{
	"type id ;",
	"type id ( ) { return num ; }",
	"type id = num ; type id ( type id , type id ) { id = id + num * num ; return id ; }",
	"type id ( ) { while ( id != num ) { id = id - num ; } for ( ; ; ) id ( id , num ) ; if ( id == num ) return num ; else return - num ; }",
	"type id ( type id ) { type id = ( id + num ) / num ; for ( id = num ; id == num ; id = id + num ) if ( id ) return id ( ) ; }",
	"type id ( ) { if ( id ) while ( id ) if ( id ) return num ; else return num ; }",
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	for _, input := range validPrograms {
		kinds := strings.Fields(input)
		tree, err := Default().Parse(kinds)
		if !assert.NoError(t, err, input) {
			continue
		}
		assert.Equal(t, "Program", tree.Symbol)
		assert.Equal(t, kinds, tree.Kinds(), "leaves should reproduce the input")
		assert.Equal(t, cslr.Span{0, uint64(len(kinds))}, tree.Span)
	}
}

func TestDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	tree, err := Default().Parse(strings.Fields(validPrograms[2]))
	require.NoError(t, err)
	decls := Declarations(tree)
	require.Len(t, decls, 2)
	assert.Equal(t, "VarDecl", decls[0].Child(0).Symbol)
	assert.Equal(t, "FunDecl", decls[1].Child(0).Symbol)
	assert.Nil(t, Declarations(nil))
	//
	tree, err = Default().Parse(strings.Fields(validPrograms[1]))
	require.NoError(t, err)
	decls = Declarations(tree)
	require.Len(t, decls, 1)
	assert.Equal(t, "FunDecl", decls[0].Child(0).Symbol)
	ret := tree.Find("ReturnStmt")
	require.NotNil(t, ret)
	assert.Equal(t, []string{"return", "num", ";"}, ret.Kinds())
}

func TestDanglingElse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	input := "type id ( ) { if ( id ) if ( id ) id = num ; else id = num ; }"
	tree, err := Default().Parse(strings.Fields(input))
	require.NoError(t, err)
	outer := tree.Find("Stmt")
	require.NotNil(t, outer)
	unmatched := outer.Child(0)
	assert.Equal(t, "UnmatchedStmt", unmatched.Symbol)
	require.Len(t, unmatched.Children, 5)
	inner := unmatched.Child(4)
	assert.Equal(t, "Stmt", inner.Symbol)
	matched := inner.Child(0)
	assert.Equal(t, "MatchedStmt", matched.Symbol)
	require.Len(t, matched.Children, 7, "else belongs to the inner if")
	assert.Equal(t, "else", matched.Child(5).Symbol)
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	for _, c := range []struct {
		input string
		index int
		token string
	}{
		{"type id ( ) { return ; }", 6, ";"},
		{"type id ( ) { return num }", 7, "}"},
		{"type id ( ) { return num ; } type", 10, lr.EOFName},
		{"type id = = num ;", 3, "="},
	} {
		_, err := Default().Parse(strings.Fields(c.input))
		require.Error(t, err, c.input)
		assert.True(t, errors.Is(err, slr.ErrUnexpectedToken), c.input)
		var perr *slr.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, c.index, perr.Index, c.input)
		assert.Equal(t, c.token, perr.Token, c.input)
		assert.NotEmpty(t, perr.Expected, c.input)
	}
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	tree, err := Default().Parse(strings.Fields("type id ;"))
	require.NoError(t, err)
	expected := "(Program\n  (Decl\n    (VarDecl\n      type\n      id\n      ;)))"
	assert.Equal(t, expected, Format(tree))
}

func TestSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	src := `
	/* computes nothing */
	int limit = 10;
	int count(int from, int to) {
		int n = 0;
		for (n = from; n != to; n = n + 1)
			if (n == limit) return -1; // early exit
		return n;
	}`
	tree, err := Default().ParseSource(src)
	require.NoError(t, err)
	decls := Declarations(tree)
	require.Len(t, decls, 2)
	param := tree.Find("Param")
	require.NotNil(t, param)
	assert.Equal(t, "type[int]", param.Child(0).String())
	assert.Equal(t, "id[from]", param.Child(1).String())
	assert.Len(t, tree.FindAll("ReturnStmt"), 2)
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.lang")
	defer teardown()
	//
	L := Default()
	for src, kinds := range map[string]string{
		"int main() { return 0; }":      "type id ( ) { return num ; }",
		"/* c */ char x; // trailing\n": "type id ;",
		"iffy = elsewhere == integer;":  "id = id == id ;",
		"x=y!=-3.14/z":                  "id = id != - num / id",
	} {
		toks, err := L.Tokenize(src)
		if assert.NoError(t, err, src) {
			assert.Equal(t, kinds, cslr.TokenString(toks), src)
		}
	}
	toks, err := L.Tokenize("int x;")
	require.NoError(t, err)
	assert.Equal(t, cslr.Span{4, 5}, toks[1].Span())
	assert.Equal(t, "x", toks[1].Lexeme())
	_, err = L.Tokenize("int x @ 1;")
	assert.Error(t, err)
}
