package lang

import (
	"strings"

	"github.com/npillmayer/cslr/lr"
)

// Name is the name of the bundled grammar.
const Name = "C-like"

// productions lists the rules of the grammar in order. An empty RHS denotes
// an epsilon production. The first LHS is the start symbol.
var productions = []struct {
	lhs, rhs string
}{
	{"Program", "Decl DeclList"},
	{"DeclList", "Decl DeclList"},
	{"DeclList", ""},
	{"Decl", "VarDecl"},
	{"Decl", "FunDecl"},
	{"VarDecl", "type id ;"},
	{"VarDecl", "type id = Expr ;"},
	{"FunDecl", "type id ( ParamList ) Block"},
	{"ParamList", "Param ParamTail"},
	{"ParamList", ""},
	{"ParamTail", ", Param ParamTail"},
	{"ParamTail", ""},
	{"Param", "type id"},
	{"Block", "{ StmtList }"},
	{"StmtList", "Stmt StmtList"},
	{"StmtList", ""},
	{"Stmt", "MatchedStmt"},
	{"Stmt", "UnmatchedStmt"},
	{"MatchedStmt", "if ( Expr ) MatchedStmt else MatchedStmt"},
	{"MatchedStmt", "while ( Expr ) MatchedStmt"},
	{"MatchedStmt", "for ( OptExpr ; OptExpr ; OptExpr ) MatchedStmt"},
	{"MatchedStmt", "OtherStmt"},
	{"UnmatchedStmt", "if ( Expr ) Stmt"},
	{"UnmatchedStmt", "if ( Expr ) MatchedStmt else UnmatchedStmt"},
	{"UnmatchedStmt", "while ( Expr ) UnmatchedStmt"},
	{"UnmatchedStmt", "for ( OptExpr ; OptExpr ; OptExpr ) UnmatchedStmt"},
	{"OtherStmt", "ExprStmt"},
	{"OtherStmt", "ReturnStmt"},
	{"OtherStmt", "Block"},
	{"OtherStmt", "VarDecl"},
	{"ExprStmt", "Expr ;"},
	{"ReturnStmt", "return Expr ;"},
	{"OptExpr", "Expr"},
	{"OptExpr", ""},
	{"Expr", "id = Expr"},
	{"Expr", "Equality"},
	{"Equality", "Equality == Additive"},
	{"Equality", "Equality != Additive"},
	{"Equality", "Additive"},
	{"Additive", "Additive + Multiplicative"},
	{"Additive", "Additive - Multiplicative"},
	{"Additive", "Multiplicative"},
	{"Multiplicative", "Multiplicative * Unary"},
	{"Multiplicative", "Multiplicative / Unary"},
	{"Multiplicative", "Unary"},
	{"Unary", "- Unary"},
	{"Unary", "Primary"},
	{"Primary", "id"},
	{"Primary", "num"},
	{"Primary", "( Expr )"},
	{"Primary", "id ( ArgList )"},
	{"ArgList", "Expr ArgTail"},
	{"ArgList", ""},
	{"ArgTail", ", Expr ArgTail"},
	{"ArgTail", ""},
}

// List symbols of the grammar. Each of them is right recursive with an
// epsilon alternative.
const (
	DeclList  = "DeclList"
	StmtList  = "StmtList"
	ParamTail = "ParamTail"
	ArgTail   = "ArgTail"
)

// ListSymbols are the non-terminals flattened by Format.
var ListSymbols = []string{DeclList, StmtList, ParamTail, ArgTail}

// Grammar creates the bundled grammar.
func Grammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder(Name)
	for _, p := range productions {
		b.LHS(p.lhs).RHS(strings.Fields(p.rhs)...).End()
	}
	return b.Grammar()
}
