package lr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// --- Graphviz --------------------------------------------------------------

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s)))
	}
	it := c.edges.Iterator()
	for it.Next() {
		edge := it.Value().(*cfsmEdge)
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n",
			edge.from.ID, edge.to.ID, escapeDot(edge.label.Name)))
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *CFSMState) string {
	items := s.Items()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = escapeDot(item.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, "{", `\{`, "}", `\}`,
	"|", `\|`, "<", `\<`, ">", `\>`)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// --- HTML ------------------------------------------------------------------

// ActionTableAsHTML exports the SLR(1) ACTION table in HTML-format.
func ActionTableAsHTML(t *Tables, w io.Writer) error {
	var syms []*Symbol
	t.g.EachTerminal(func(A *Symbol) {
		syms = append(syms, A)
	})
	return parserTableAsHTML(t, "ACTION", syms, w, func(state int, A *Symbol) string {
		a := t.Action(state, A)
		switch a.Kind {
		case ShiftAction:
			return fmt.Sprintf("s%d", a.State)
		case ReduceAction:
			return fmt.Sprintf("r%d", a.Rule.Serial)
		case AcceptAction:
			return "acc"
		}
		return ""
	})
}

// GotoTableAsHTML exports the GOTO table in HTML-format.
func GotoTableAsHTML(t *Tables, w io.Writer) error {
	syms := t.g.NonTerminals()
	return parserTableAsHTML(t, "GOTO", syms, w, func(state int, A *Symbol) string {
		if next, ok := t.Goto(state, A); ok {
			return strconv.Itoa(next)
		}
		return ""
	})
}

func parserTableAsHTML(t *Tables, tname string, syms []*Symbol, w io.Writer,
	cell func(int, *Symbol) string) error {
	//
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("<p>%s table for %s, %d states</p>\n",
		tname, htmlEscape(t.g.Name), t.StateCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range syms {
		b.WriteString(fmt.Sprintf("<td>%s</td>", htmlEscape(A.Name)))
	}
	b.WriteString("</tr>\n")
	for state := 0; state < t.StateCount(); state++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", state))
		for _, A := range syms {
			td := cell(state, A)
			if td == "" {
				td = "&nbsp;"
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}

// --- EBNF ------------------------------------------------------------------

// EBNF writes g in EBNF notation, as understood by golang.org/x/exp/ebnf.
// Terminals are written as quoted tokens. Non-terminals with epsilon rules
// have their remaining alternatives wrapped as an option.
func (g *Grammar) EBNF(w io.Writer) error {
	var b bytes.Buffer
	written := make(map[*Symbol]bool)
	for _, r := range g.rules[1:] {
		A := r.LHS
		if written[A] {
			continue
		}
		written[A] = true
		var alts []string
		nullable := false
		for _, p := range g.productions[A] {
			if p.IsEpsilon() {
				nullable = true
				continue
			}
			syms := make([]string, len(p.rhs))
			for i, X := range p.rhs {
				if X.IsTerminal() {
					syms[i] = strconv.Quote(X.Name)
				} else {
					syms[i] = ebnfName(X)
				}
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		expr := strings.Join(alts, " | ")
		if nullable && len(alts) > 0 {
			expr = "[ " + expr + " ]"
		}
		b.WriteString(fmt.Sprintf("%s = %s .\n", ebnfName(A), expr))
	}
	_, err := w.Write(b.Bytes())
	return err
}

// ebnfName maps a non-terminal to an EBNF production name. Names have to be
// identifiers starting with an upper case letter to be non-lexical.
func ebnfName(A *Symbol) string {
	name := []rune(A.Name)
	for i, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			name[i] = '_'
		}
	}
	if len(name) == 0 || !unicode.IsUpper(name[0]) {
		return "N_" + string(name)
	}
	return string(name)
}

// VerifyEBNF writes g as EBNF, parses it back and verifies it, starting at
// the start symbol. The check reports undefined and unreachable non-terminals.
// Grammars are not required to pass this check to be used for parsing.
func VerifyEBNF(g *Grammar) error {
	var b bytes.Buffer
	if err := g.EBNF(&b); err != nil {
		return err
	}
	tracer().Debugf("EBNF for %s:\n%s", g.Name, b.String())
	eg, err := ebnf.Parse(g.Name, &b)
	if err != nil {
		return fmt.Errorf("grammar %q: %w", g.Name, err)
	}
	if err = ebnf.Verify(eg, ebnfName(g.start)); err != nil {
		return fmt.Errorf("grammar %q: %w", g.Name, err)
	}
	return nil
}
