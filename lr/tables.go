package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cslr/lr/iteratable"
	"github.com/npillmayer/cslr/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// === Closure and Goto-Set Operations =======================================

// closure computes the closure of an item set. For epsilon rules, both the
// start item and the completed item are added, making epsilon rules immediately
// reducible.
func (ga *LRAnalysis) closure(S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A := item.PeekSymbol() // get symbol A after dot
		if A == nil || A.IsTerminal() || A.IsEpsilon() {
			continue
		}
		for _, r := range ga.g.productions[A] { // A is non-terminal
			C.Add(StartItem(r))
			if r.IsEpsilon() {
				C.Add(StartItem(r).Advance())
			}
		}
	}
	return C
}

// gotoSet computes goto(S, A): advance the dot over A for every item
//
//     N ➞ … • A …   ⇒   N ➞ … A • …
//
// and take the closure.
func (ga *LRAnalysis) gotoSet(S *iteratable.Set, A *Symbol) *iteratable.Set {
	gotoset := newItemSet()
	S.Each(func(x interface{}) {
		i := asItem(x)
		if i.PeekSymbol() == A {
			gotoset.Add(i.Advance())
		}
	})
	if gotoset.Empty() {
		return gotoset
	}
	gclosure := ga.closure(gotoset)
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracer().Debugf("goto(%s) --%s--> %s", itemSetString(S), A, itemSetString(gclosure))
	}
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int             // serial ID of this state
	items  *iteratable.Set // configuration items within this state
	Accept bool            // does this state contain the completed start rule?
}

// CFSM edge between 2 states, directed and labeled with a grammar symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

type transition struct {
	from  int
	label *Symbol
}

// Items returns the items of state s, in closure order.
func (s *CFSMState) Items() []Item {
	items := make([]Item, 0, s.items.Size())
	s.items.Each(func(x interface{}) {
		items = append(items, asItem(x))
	})
	return items
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, x := range s.items.Values() {
		i := asItem(x)
		if i.rule.Serial == 0 && i.IsComplete() {
			return true
		}
	}
	return false
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g           *Grammar                  // this CFSM is for Grammar g
	states      *arraylist.List           // all the states, by ID
	edges       *arraylist.List           // all the edges between states
	index       map[string][]*CFSMState   // states by item set hash
	transitions map[transition]*CFSMState // goto function
	S0          *CFSMState                // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:           g,
		states:      arraylist.New(),
		edges:       arraylist.New(),
		index:       make(map[string][]*CFSMState),
		transitions: make(map[transition]*CFSMState),
	}
}

// addState adds a state for an item set, if no equal state is present.
// Returns the state and true if it has been created.
func (c *CFSM) addState(iset *iteratable.Set) (*CFSMState, bool) {
	h := itemSetHash(iset)
	for _, s := range c.index[h] {
		if s.items.Equals(iset) {
			return s, false
		}
	}
	s := &CFSMState{ID: c.states.Size(), items: iset}
	s.Accept = s.containsCompletedStartRule()
	c.states.Add(s)
	c.index[h] = append(c.index[h], s)
	return s, true
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) {
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
	c.transitions[transition{s0.ID, sym}] = s1
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if x, ok := c.states.Get(id); ok {
		return x.(*CFSMState)
	}
	return nil
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*CFSMState))
	}
	return states
}

// Goto returns the successor of state s for symbol A, or nil.
func (c *CFSM) Goto(s *CFSMState, A *Symbol) *CFSMState {
	return c.transitions[transition{s.ID, A}]
}

// EdgeCount returns the number of transitions.
func (c *CFSM) EdgeCount() int {
	return c.edges.Size()
}

// === Tables ================================================================

// ActionKind is the type of a parser action.
type ActionKind uint8

// Kinds of parser actions.
const (
	NoAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "<none>"
}

// Action is an entry of the ACTION table.
type Action struct {
	Kind  ActionKind
	State int   // next state for shift actions
	Rule  *Rule // rule for reduce actions
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("shift %d", a.State)
	case ReduceAction:
		return fmt.Sprintf("reduce %d (%s)", a.Rule.Serial, a.Rule)
	}
	return a.Kind.String()
}

// actions are packed into an int32: payload << 2 | kind
func (a Action) encode() int32 {
	switch a.Kind {
	case ShiftAction:
		return int32(a.State)<<2 | int32(ShiftAction)
	case ReduceAction:
		return int32(a.Rule.Serial)<<2 | int32(ReduceAction)
	case AcceptAction:
		return int32(AcceptAction)
	}
	return sparse.DefaultNullValue
}

func decodeAction(v int32, g *Grammar) Action {
	if v == sparse.DefaultNullValue {
		return Action{}
	}
	switch ActionKind(v & 3) {
	case ShiftAction:
		return Action{Kind: ShiftAction, State: int(v >> 2)}
	case ReduceAction:
		return Action{Kind: ReduceAction, Rule: g.Rule(int(v >> 2))}
	case AcceptAction:
		return Action{Kind: AcceptAction}
	}
	return Action{}
}

// ConflictKind tells shift/reduce from reduce/reduce conflicts.
type ConflictKind uint8

// Kinds of table conflicts.
const (
	ShiftReduceConflict ConflictKind = iota + 1
	ReduceReduceConflict
)

func (k ConflictKind) String() string {
	if k == ReduceReduceConflict {
		return "reduce/reduce"
	}
	return "shift/reduce"
}

// Conflict records an ACTION table slot which has been written twice with
// different actions. The later write wins.
type Conflict struct {
	State    int
	Terminal *Symbol
	Previous Action
	Winner   Action
}

// Kind returns the kind of conflict.
func (c Conflict) Kind() ConflictKind {
	if c.Previous.Kind == ReduceAction && c.Winner.Kind == ReduceAction {
		return ReduceReduceConflict
	}
	return ShiftReduceConflict
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %s: %s overwritten by %s",
		c.Kind(), c.State, c.Terminal, c.Previous, c.Winner)
}

// Tables holds the ACTION and GOTO tables of an SLR(1) parser. Tables are
// immutable once built and may be shared between parsers running concurrently.
type Tables struct {
	g         *Grammar
	cfsm      *CFSM
	action    *sparse.IntMatrix
	gotoT     *sparse.IntMatrix
	conflicts []Conflict
}

// Grammar returns the grammar the tables have been built for.
func (t *Tables) Grammar() *Grammar {
	return t.g
}

// CFSM returns the LR(0) automaton the tables are derived from.
func (t *Tables) CFSM() *CFSM {
	return t.cfsm
}

// StateCount returns the number of parser states.
func (t *Tables) StateCount() int {
	return t.cfsm.Size()
}

// Action returns ACTION(state, a). Kind is NoAction for empty slots.
func (t *Tables) Action(state int, a *Symbol) Action {
	if a == nil || state < 0 || state >= t.action.M() || a.Value >= t.action.N() {
		return Action{}
	}
	return decodeAction(t.action.Value(state, a.Value), t.g)
}

// Goto returns GOTO(state, A), if present.
func (t *Tables) Goto(state int, A *Symbol) (int, bool) {
	if A == nil || state < 0 || state >= t.gotoT.M() || A.Value >= t.gotoT.N() {
		return 0, false
	}
	v := t.gotoT.Value(state, A.Value)
	if v == t.gotoT.NullValue() {
		return 0, false
	}
	return int(v), true
}

// Expected returns the terminals with a non-empty action in state, ordered
// by serial number.
func (t *Tables) Expected(state int) []*Symbol {
	if state < 0 || state >= t.action.M() {
		return nil
	}
	cols, _ := t.action.Row(state)
	vocab := t.g.vocabulary
	syms := make([]*Symbol, 0, len(cols))
	for _, j := range cols {
		if j < len(vocab) {
			syms = append(syms, vocab[j])
		}
	}
	return syms
}

// Conflicts returns all conflicts detected during table construction, in
// order of detection.
func (t *Tables) Conflicts() []Conflict {
	return append([]Conflict(nil), t.conflicts...)
}

// ActionCount returns the number of non-empty ACTION slots.
func (t *Tables) ActionCount() int {
	return t.action.ValueCount()
}

// GotoCount returns the number of non-empty GOTO slots.
func (t *Tables) GotoCount() int {
	return t.gotoT.ValueCount()
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an LR-parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LRAnalysis
	dfa          *CFSM
	tables       *Tables
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	lrgen := &TableGenerator{}
	lrgen.g = ga.Grammar()
	lrgen.ga = ga
	return lrgen
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = lrgen.buildCFSM()
	}
	return lrgen.dfa
}

// Tables returns the parser tables, or nil if CreateTables() has not been
// called.
func (lrgen *TableGenerator) Tables() *Tables {
	if lrgen.tables == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.tables
}

// CreateTables creates the necessary data structures for an SLR parser.
func (lrgen *TableGenerator) CreateTables() error {
	dfa := lrgen.CFSM()
	cols := lrgen.g.SymbolCount()
	t := &Tables{
		g:      lrgen.g,
		cfsm:   dfa,
		action: sparse.NewIntMatrix(dfa.Size(), cols, sparse.DefaultNullValue),
		gotoT:  sparse.NewIntMatrix(dfa.Size(), cols, sparse.DefaultNullValue),
	}
	tracer().Infof("%s: %d states, table width %d", lrgen.g.Name, dfa.Size(), cols)
	if err := lrgen.buildGotoTable(t); err != nil {
		return err
	}
	if err := lrgen.buildSLR1ActionTable(t); err != nil {
		return err
	}
	lrgen.tables = t
	lrgen.HasConflicts = len(t.conflicts) > 0
	if lrgen.HasConflicts {
		tracer().Infof("%s: %d conflicts in ACTION table", lrgen.g.Name, len(t.conflicts))
	}
	return nil
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are processed in order of creation, visiting symbols in canonical
// vocabulary order. This assigns the same IDs as repeated passes over all
// states until no new state appears.
func (lrgen *TableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	S := newItemSet()
	S.Add(StartItem(G.rules[0]))
	cfsm.S0, _ = cfsm.addState(lrgen.ga.closure(S))
	cfsm.S0.Dump()
	for n := 0; n < cfsm.states.Size(); n++ {
		s := cfsm.State(n)
		G.EachSymbol(func(A *Symbol) {
			gotoset := lrgen.ga.gotoSet(s.items, A)
			if gotoset.Empty() {
				return
			}
			snew, created := cfsm.addState(gotoset)
			if created {
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
		})
	}
	tracer().Debugf("CFSM has %d states and %d edges", cfsm.Size(), cfsm.EdgeCount())
	return cfsm
}

// buildGotoTable records the non-terminal transitions of the CFSM.
func (lrgen *TableGenerator) buildGotoTable(t *Tables) error {
	it := lrgen.dfa.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.label.IsTerminal() {
			continue
		}
		if _, err := t.gotoT.Set(e.from.ID, e.label.Value, int32(e.to.ID)); err != nil {
			return fmt.Errorf("building GOTO table: %w", err)
		}
	}
	return nil
}

// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the RHS of a rule,
// then we produce a reduce-entry for the rule for each
// terminal from FOLLOW(LHS), or an accept entry for the start rule.
//
// If a slot is already occupied by a different action, the later write wins
// and the conflict is recorded.
func (lrgen *TableGenerator) buildSLR1ActionTable(t *Tables) error {
	verbose := gconf.GetBool("lr.trace-conflicts")
	set := func(state *CFSMState, a *Symbol, action Action) error {
		prev, err := t.action.Set(state.ID, a.Value, action.encode())
		if err != nil {
			return fmt.Errorf("building ACTION table: %w", err)
		}
		if prev != t.action.NullValue() && prev != action.encode() {
			c := Conflict{
				State:    state.ID,
				Terminal: a,
				Previous: decodeAction(prev, lrgen.g),
				Winner:   action,
			}
			t.conflicts = append(t.conflicts, c)
			if verbose {
				tracer().Infof("%s", c)
			} else {
				tracer().Debugf("%s", c)
			}
		}
		return nil
	}
	for _, state := range lrgen.dfa.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items() {
			A := i.PeekSymbol()
			switch {
			case A != nil && A.IsTerminal(): // create a shift entry
				next := lrgen.dfa.Goto(state, A)
				if next == nil {
					return fmt.Errorf("CFSM has no transition from state %d on %s", state.ID, A)
				}
				if err := set(state, A, Action{Kind: ShiftAction, State: next.ID}); err != nil {
					return err
				}
			case A != nil: // non-terminal or epsilon: nothing to do
			case i.rule.Serial == 0: // completed start rule
				if err := set(state, lrgen.g.eof, Action{Kind: AcceptAction}); err != nil {
					return err
				}
			default: // we are at the end of a rule
				for _, la := range lrgen.ga.follow[i.rule.LHS].Symbols() {
					if la.IsEpsilon() {
						continue
					}
					if err := set(state, la, Action{Kind: ReduceAction, Rule: i.rule}); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
