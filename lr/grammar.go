package lr

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Reserved symbol names.
const (
	EpsilonName = "ε" // the empty word
	EOFName     = "$" // end of input
)

type symbolKind uint8

const (
	terminalSymbol symbolKind = iota
	nonTerminalSymbol
	eofSymbol
	epsilonSymbol
)

// Symbol is a symbol type used for grammars and grammar builders.
// Every symbol of a grammar carries a serial number (Value), unique within the
// grammar. Serial numbers follow the canonical vocabulary order: terminals
// sorted by name, then the end marker, then non-terminals sorted by name.
type Symbol struct {
	Name  string
	Value int
	kind  symbolKind
}

// IsTerminal returns true if this symbol represents a terminal. The end marker
// counts as a terminal, epsilon does not.
func (A *Symbol) IsTerminal() bool {
	return A.kind == terminalSymbol || A.kind == eofSymbol
}

// IsEpsilon is a predicate: is A the empty word?
func (A *Symbol) IsEpsilon() bool {
	return A.kind == epsilonSymbol
}

// IsEOF is a predicate: is A the end marker?
func (A *Symbol) IsEOF() bool {
	return A.kind == eofSymbol
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// A Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int // order number of this rule within a grammar
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. For epsilon rules this is
// a single epsilon symbol.
func (r *Rule) RHS() []*Symbol {
	return append([]*Symbol(nil), r.rhs...)
}

// IsEpsilon is a predicate: is r an epsilon production?
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEpsilon()
}

// Len returns the number of input symbols a reduction by r consumes. This is 0
// for epsilon rules.
func (r *Rule) Len() int {
	if r.IsEpsilon() {
		return 0
	}
	return len(r.rhs)
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ➞")
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a grammar. Usually created using a GrammarBuilder.
// A grammar is immutable after construction and may be shared between
// goroutines.
type Grammar struct {
	Name         string
	rules        []*Rule             // rule 0 is the augmented start rule
	symbols      map[string]*Symbol  // all symbols by name
	productions  map[*Symbol][]*Rule // rules by LHS, in declaration order
	terminals    []*Symbol           // sorted by name, without end marker
	nonterminals []*Symbol           // sorted by name, without augmented start
	vocabulary   []*Symbol           // canonical symbol order
	start        *Symbol
	augStart     *Symbol
	epsilon      *Symbol
	eof          *Symbol
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules of g, the augmented start rule first.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Size returns the number of rules in the grammar, including the
// augmented start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Productions returns the rules for non-terminal A, in declaration order.
func (g *Grammar) Productions(A *Symbol) []*Rule {
	return append([]*Rule(nil), g.productions[A]...)
}

// Start returns the start symbol of g.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// AugmentedStart returns the LHS of rule 0.
func (g *Grammar) AugmentedStart() *Symbol {
	return g.augStart
}

// Epsilon returns the epsilon symbol of g.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// EOF returns the end marker of g.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolByName gets a symbol for a given name, or nil if not found.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// Terminals returns the terminals of g, sorted by name. The end marker is not
// included.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// NonTerminals returns the non-terminals of g, sorted by name. The augmented
// start symbol is not included.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// SymbolCount returns the number of distinct symbols of g, including the
// reserved ones. Serial numbers are below this value.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// EachSymbol iterates over the vocabulary of g in canonical order: terminals,
// end marker, non-terminals.
func (g *Grammar) EachSymbol(mapper func(A *Symbol)) {
	for _, A := range g.vocabulary {
		mapper(A)
	}
}

// EachTerminal iterates over all terminals, including the end marker.
func (g *Grammar) EachTerminal(mapper func(A *Symbol)) {
	for _, A := range g.terminals {
		mapper(A)
	}
	mapper(g.eof)
}

// EachNonTerminal iterates over all non-terminals, excluding the augmented start.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol)) {
	for _, A := range g.nonterminals {
		mapper(A)
	}
}

// Dump is a debugging helper, tracing all rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Grammar Builder -------------------------------------------------------

type declKind uint8

const (
	declImplicit declKind = iota
	declTerminal
	declNonTerminal
)

type rhsEntry struct {
	name string
	decl declKind
}

type ruleDraft struct {
	lhs string
	rhs []rhsEntry
}

// GrammarBuilder is a builder type for grammars. Rules are added one after
// another:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S  ➞  A a
//    b.LHS("A").RHS("b", "A").End()   // A  ➞  b A     (kinds derived from LHS set)
//    b.LHS("A").Epsilon()             // A  ➞  ε
//    g, err := b.Grammar()
//
// The LHS of the first rule is the start symbol.
type GrammarBuilder struct {
	name   string
	drafts []*ruleDraft
}

// RuleBuilder builds the RHS of a single rule.
type RuleBuilder struct {
	gb    *GrammarBuilder
	draft *ruleDraft
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// LHS starts a new rule with non-terminal name as its left hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, draft: &ruleDraft{lhs: name}}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.draft.rhs = append(rb.draft.rhs, rhsEntry{name, declNonTerminal})
	return rb
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.draft.rhs = append(rb.draft.rhs, rhsEntry{name, declTerminal})
	return rb
}

// RHS appends symbols to the RHS. Every symbol which is the LHS of some rule
// will be a non-terminal, all others will be terminals.
func (rb *RuleBuilder) RHS(names ...string) *RuleBuilder {
	for _, name := range names {
		rb.draft.rhs = append(rb.draft.rhs, rhsEntry{name, declImplicit})
	}
	return rb
}

// End completes a rule. A rule without RHS symbols is an epsilon rule.
func (rb *RuleBuilder) End() {
	rb.gb.drafts = append(rb.gb.drafts, rb.draft)
}

// Epsilon completes a rule as an epsilon rule, ignoring RHS symbols added so far.
func (rb *RuleBuilder) Epsilon() {
	rb.draft.rhs = []rhsEntry{{EpsilonName, declImplicit}}
	rb.End()
}

// Grammar returns the grammar built so far. It checks the rules for
// consistency and returns an error if
//
// ▪︎ no rule has been added,
//
// ▪︎ a reserved symbol is used as an LHS or the end marker is used in a RHS,
//
// ▪︎ epsilon is used within a longer RHS,
//
// ▪︎ a symbol declared as a terminal has rules, or a symbol declared as
// a non-terminal has none.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.drafts) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", gb.name)
	}
	lhsNames := make(map[string]bool)
	for _, d := range gb.drafts {
		if d.lhs == "" || d.lhs == EpsilonName || d.lhs == EOFName {
			return nil, fmt.Errorf("grammar %q: illegal LHS %q", gb.name, d.lhs)
		}
		lhsNames[d.lhs] = true
	}
	termNames := make(map[string]bool)
	for _, d := range gb.drafts {
		for _, e := range d.rhs {
			switch {
			case e.name == EpsilonName:
				if len(d.rhs) > 1 {
					return nil, fmt.Errorf("grammar %q: epsilon inside RHS of %s", gb.name, d.lhs)
				}
			case e.name == EOFName:
				return nil, fmt.Errorf("grammar %q: end marker %s in RHS of %s", gb.name, EOFName, d.lhs)
			case e.name == "":
				return nil, fmt.Errorf("grammar %q: empty symbol name in RHS of %s", gb.name, d.lhs)
			case e.decl == declTerminal && lhsNames[e.name]:
				return nil, fmt.Errorf("grammar %q: terminal %s has rules", gb.name, e.name)
			case e.decl == declNonTerminal && !lhsNames[e.name]:
				return nil, fmt.Errorf("grammar %q: missing rule for non-terminal %s", gb.name, e.name)
			case !lhsNames[e.name]:
				termNames[e.name] = true
			}
		}
	}
	g := &Grammar{
		Name:        gb.name,
		symbols:     make(map[string]*Symbol),
		productions: make(map[*Symbol][]*Rule),
	}
	g.createSymbols(gb.drafts[0].lhs, lhsNames, termNames)
	g.rules = append(g.rules, &Rule{Serial: 0, LHS: g.augStart, rhs: []*Symbol{g.start}})
	seen := make(map[string]bool)
	for _, d := range gb.drafts {
		r := &Rule{LHS: g.symbols[d.lhs]}
		if len(d.rhs) == 0 {
			r.rhs = []*Symbol{g.epsilon}
		}
		for _, e := range d.rhs {
			r.rhs = append(r.rhs, g.symbols[e.name])
		}
		if key := r.String(); seen[key] {
			tracer().Infof("grammar %q: dropping duplicate rule %s", gb.name, key)
			continue
		} else {
			seen[key] = true
		}
		r.Serial = len(g.rules)
		g.rules = append(g.rules, r)
		g.productions[r.LHS] = append(g.productions[r.LHS], r)
	}
	g.productions[g.augStart] = []*Rule{g.rules[0]}
	return g, nil
}

// createSymbols sets up the symbols of g and numbers them in canonical order.
func (g *Grammar) createSymbols(start string, lhsNames, termNames map[string]bool) {
	for name := range termNames {
		g.terminals = append(g.terminals, &Symbol{Name: name, kind: terminalSymbol})
	}
	sort.Slice(g.terminals, func(i, j int) bool {
		return g.terminals[i].Name < g.terminals[j].Name
	})
	for name := range lhsNames {
		g.nonterminals = append(g.nonterminals, &Symbol{Name: name, kind: nonTerminalSymbol})
	}
	sort.Slice(g.nonterminals, func(i, j int) bool {
		return g.nonterminals[i].Name < g.nonterminals[j].Name
	})
	g.eof = &Symbol{Name: EOFName, kind: eofSymbol}
	g.epsilon = &Symbol{Name: EpsilonName, kind: epsilonSymbol}
	augName := start + "'"
	for lhsNames[augName] || termNames[augName] {
		augName += "'"
	}
	g.augStart = &Symbol{Name: augName, kind: nonTerminalSymbol}
	g.vocabulary = append(g.vocabulary, g.terminals...)
	g.vocabulary = append(g.vocabulary, g.eof)
	g.vocabulary = append(g.vocabulary, g.nonterminals...)
	serial := 0
	for _, A := range g.vocabulary {
		A.Value = serial
		g.symbols[A.Name] = A
		serial++
	}
	for _, A := range []*Symbol{g.augStart, g.epsilon} {
		A.Value = serial
		g.symbols[A.Name] = A
		serial++
	}
	g.start = g.symbols[start]
}

// symbolNames is a small helper for tracing.
func symbolNames(syms []*Symbol) string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}
