package lr

// LRAnalysis is an object for grammar analysis (computing FIRST- and
// FOLLOW-sets). Create one with Analysis(g). The sets are computed once
// during construction and are read-only afterwards.
type LRAnalysis struct {
	g      *Grammar
	first  map[*Symbol]*SymbolSet
	follow map[*Symbol]*SymbolSet
}

// Analysis creates an analyser for a grammar and computes FIRST and FOLLOW.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{
		g:      g,
		first:  make(map[*Symbol]*SymbolSet),
		follow: make(map[*Symbol]*SymbolSet),
	}
	ga.analyse()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

func (ga *LRAnalysis) analyse() {
	for _, A := range ga.g.symbols {
		if A.IsTerminal() || A.IsEpsilon() {
			ga.first[A] = NewSymbolSet(A)
		} else {
			ga.first[A] = NewSymbolSet()
			ga.follow[A] = NewSymbolSet()
		}
	}
	passes := 1
	for ga.firstPass() {
		passes++
	}
	tracer().Debugf("FIRST sets stable after %d passes", passes)
	ga.follow[ga.g.augStart].Add(ga.g.eof)
	ga.follow[ga.g.start].Add(ga.g.eof)
	passes = 1
	for ga.followPass() {
		passes++
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", passes)
	for A, F := range ga.follow {
		if F.Contains(ga.g.epsilon) {
			tracer().Errorf("FOLLOW(%s) contains epsilon", A)
		}
	}
}

// firstPass performs one pass over all rules, returning true if any FIRST set
// has grown.
func (ga *LRAnalysis) firstPass() bool {
	changed := false
	eps := ga.g.epsilon
	for _, r := range ga.g.rules {
		fA := ga.first[r.LHS]
		if r.IsEpsilon() {
			if fA.Add(eps) {
				changed = true
			}
			continue
		}
		nullable := true
		for _, X := range r.rhs {
			fX := ga.first[X]
			if fA.addAll(fX, eps) {
				changed = true
			}
			if !fX.Contains(eps) {
				nullable = false
				break
			}
		}
		if nullable && fA.Add(eps) {
			changed = true
		}
	}
	return changed
}

// followPass performs one pass over all rules, returning true if any FOLLOW set
// has grown.
func (ga *LRAnalysis) followPass() bool {
	changed := false
	eps := ga.g.epsilon
	for _, r := range ga.g.rules {
		if r.IsEpsilon() {
			continue
		}
		for i, X := range r.rhs {
			if X.IsTerminal() {
				continue
			}
			trailer := ga.firstOfSequence(r.rhs[i+1:])
			if ga.follow[X].addAll(trailer, eps) {
				changed = true
			}
			if trailer.Contains(eps) && ga.follow[X].addAll(ga.follow[r.LHS], eps) {
				changed = true
			}
		}
	}
	return changed
}

func (ga *LRAnalysis) firstOfSequence(syms []*Symbol) *SymbolSet {
	F := NewSymbolSet()
	eps := ga.g.epsilon
	for _, X := range syms {
		fX := ga.first[X]
		F.addAll(fX, eps)
		if !fX.Contains(eps) {
			return F
		}
	}
	F.Add(eps)
	return F
}

// First returns FIRST(A), which contains epsilon if A is nullable. For terminals
// this is {A}. The returned set is a copy.
func (ga *LRAnalysis) First(A *Symbol) *SymbolSet {
	if F, ok := ga.first[A]; ok {
		return F.Copy()
	}
	return NewSymbolSet()
}

// FirstOfSequence returns FIRST of a sequence of symbols. The empty sequence
// yields {ε}.
func (ga *LRAnalysis) FirstOfSequence(syms []*Symbol) *SymbolSet {
	return ga.firstOfSequence(syms)
}

// Follow returns FOLLOW(A) for a non-terminal A. The end marker is part of
// FOLLOW(start), epsilon never is. The returned set is a copy.
func (ga *LRAnalysis) Follow(A *Symbol) *SymbolSet {
	if F, ok := ga.follow[A]; ok {
		return F.Copy()
	}
	return NewSymbolSet()
}

// Nullable is a predicate: does A derive the empty word?
func (ga *LRAnalysis) Nullable(A *Symbol) bool {
	F, ok := ga.first[A]
	return ok && F.Contains(ga.g.epsilon)
}

// Dump traces FIRST and FOLLOW of all non-terminals.
func (ga *LRAnalysis) Dump() {
	ga.g.EachNonTerminal(func(A *Symbol) {
		tracer().Debugf("FIRST(%s) = %v, FOLLOW(%s) = %v", A, ga.first[A], A, ga.follow[A])
	})
}
