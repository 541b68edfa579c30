package parsetree

import (
	"bytes"
	"strings"

	"github.com/pterm/pterm"
)

// Option configures the textual rendering of a tree.
type Option func(*format)

type format struct {
	flatten map[string]bool
	indent  string
}

// FlattenLists lets right-recursive list nodes labeled with one of symbols be
// replaced by their elements, see FlattenList.
func FlattenLists(symbols ...string) Option {
	return func(f *format) {
		for _, sym := range symbols {
			f.flatten[sym] = true
		}
	}
}

// Indent renders every node on a line of its own, indenting children by indent.
func Indent(indent string) Option {
	return func(f *format) {
		f.indent = indent
	}
}

func newFormat(opts []Option) *format {
	f := &format{flatten: make(map[string]bool)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// children returns the children of n as rendered, splicing in the elements of
// flattened list nodes.
func (f *format) children(n *Node) []*Node {
	var children []*Node
	for _, ch := range n.Children {
		if !ch.leaf && f.flatten[ch.Symbol] {
			children = append(children, FlattenList(ch, ch.Symbol)...)
		} else {
			children = append(children, ch)
		}
	}
	return children
}

// Sexpr renders a tree as a nested S-expression:
//
//    (Program (Decl (VarDecl type id ;)) (DeclList))
//
// Leaves are printed by kind, followed by the lexeme in brackets if it differs.
func Sexpr(n *Node, opts ...Option) string {
	f := newFormat(opts)
	var b bytes.Buffer
	f.sexpr(&b, n, 0)
	return b.String()
}

func (f *format) sexpr(b *bytes.Buffer, n *Node, level int) {
	if f.indent != "" && level > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(f.indent, level))
	}
	if n.leaf {
		b.WriteString(n.String())
		return
	}
	b.WriteString("(")
	b.WriteString(n.Symbol)
	for _, ch := range f.children(n) {
		if f.indent == "" {
			b.WriteString(" ")
		}
		f.sexpr(b, ch, level+1)
	}
	b.WriteString(")")
}

// Render renders a tree as a terminal tree, using pterm.
func Render(n *Node, opts ...Option) (string, error) {
	f := newFormat(opts)
	root := f.treeNode(n)
	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		tracer().Errorf("cannot render parse tree: %v", err)
	}
	return out, err
}

func (f *format) treeNode(n *Node) pterm.TreeNode {
	tn := pterm.TreeNode{Text: n.String()}
	if n.leaf {
		return tn
	}
	if len(n.Children) == 0 {
		tn.Text = n.Symbol + " ➞ ε"
		return tn
	}
	for _, ch := range f.children(n) {
		tn.Children = append(tn.Children, f.treeNode(ch))
	}
	return tn
}
