package parsetree

import (
	"fmt"

	"github.com/npillmayer/cslr"
)

// Node is a node of a parse tree.
type Node struct {
	Symbol   string    // terminal kind or non-terminal name
	Lexeme   string    // matched input text, for leaves only
	Span     cslr.Span // input positions covered
	Rule     int       // serial number of the reduced rule, -1 for leaves
	Children []*Node
	leaf     bool
}

// Leaf creates a leaf node for an input token.
func Leaf(tok cslr.Token) *Node {
	return &Node{
		Symbol: tok.Kind(),
		Lexeme: tok.Lexeme(),
		Span:   tok.Span(),
		Rule:   -1,
		leaf:   true,
	}
}

// Interior creates a node for a non-terminal, taking ownership of children.
func Interior(symbol string, rule int, children []*Node) *Node {
	n := &Node{Symbol: symbol, Rule: rule, Children: children}
	for _, ch := range children {
		n.Span = n.Span.Extend(ch.Span)
	}
	return n
}

// Empty creates a childless node for a non-terminal derived by an epsilon
// rule, located just before input position pos.
func Empty(symbol string, rule int, pos uint64) *Node {
	return &Node{Symbol: symbol, Rule: rule, Span: cslr.Span{pos, pos}}
}

// IsLeaf is a predicate: does n hold an input token?
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// IsEmpty is a predicate: is n an interior node without children?
func (n *Node) IsEmpty() bool {
	return !n.leaf && len(n.Children) == 0
}

// Child returns the i-th child of n, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Leaves returns the leaf nodes below n, left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	var collect func(*Node)
	collect = func(m *Node) {
		if m.leaf {
			leaves = append(leaves, m)
			return
		}
		for _, ch := range m.Children {
			collect(ch)
		}
	}
	collect(n)
	return leaves
}

// Kinds returns the token kinds of all leaves below n, left to right.
// For a parse tree, this is the parsed input without the end marker.
func (n *Node) Kinds() []string {
	leaves := n.Leaves()
	kinds := make([]string, len(leaves))
	for i, l := range leaves {
		kinds[i] = l.Symbol
	}
	return kinds
}

// Find returns the first node labeled symbol, searching depth first in
// pre-order and starting with n itself. Returns nil if none is found.
func (n *Node) Find(symbol string) *Node {
	if n.Symbol == symbol {
		return n
	}
	for _, ch := range n.Children {
		if f := ch.Find(symbol); f != nil {
			return f
		}
	}
	return nil
}

// FindAll returns all nodes labeled symbol, in pre-order.
func (n *Node) FindAll(symbol string) []*Node {
	var found []*Node
	var find func(*Node)
	find = func(m *Node) {
		if m.Symbol == symbol {
			found = append(found, m)
		}
		for _, ch := range m.Children {
			find(ch)
		}
	}
	find(n)
	return found
}

func (n *Node) String() string {
	if n.leaf && n.Lexeme != "" && n.Lexeme != n.Symbol {
		return fmt.Sprintf("%s[%s]", n.Symbol, n.Lexeme)
	}
	return n.Symbol
}

// FlattenList collects the elements of a right-recursive list. Children of n
// labeled listSymbol are not returned themselves but replaced by their own
// elements, recursively. For
//
//    Program ➞ Decl DeclList
//    DeclList ➞ Decl DeclList | ε
//
// FlattenList(program, "DeclList") returns all Decl nodes in input order.
func FlattenList(n *Node, listSymbol string) []*Node {
	var elems []*Node
	for _, ch := range n.Children {
		if ch.Symbol == listSymbol && !ch.leaf {
			elems = append(elems, FlattenList(ch, listSymbol)...)
		} else {
			elems = append(elems, ch)
		}
	}
	return elems
}

// --- Traversal -------------------------------------------------------------

// Listener is an interface for walking a parse tree.
//
// EnterRule is called for interior nodes before their children are visited.
// If it returns false, the children are skipped. ExitRule is called after
// the children have been visited. Terminal is called for leaves.
type Listener interface {
	EnterRule(*Node, RuleCtxt) bool
	ExitRule(*Node, RuleCtxt)
	Terminal(*Node, RuleCtxt)
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      cslr.Span // span of input symbols covered by this node
	Level     int       // nesting level, 0 for the root
	RuleIndex int       // -1 for terminals
}

// Walk traverses the tree below n depth first, calling listener l.
func Walk(n *Node, l Listener) {
	walk(n, l, 0)
}

func walk(n *Node, l Listener, level int) {
	ctxt := RuleCtxt{Span: n.Span, Level: level, RuleIndex: n.Rule}
	if n.leaf {
		l.Terminal(n, ctxt)
		return
	}
	if l.EnterRule(n, ctxt) {
		for _, ch := range n.Children {
			walk(ch, l, level+1)
		}
	}
	l.ExitRule(n, ctxt)
}
