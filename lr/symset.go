package lr

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is a set of grammar symbols, ordered by symbol name.
// FIRST and FOLLOW sets are returned as SymbolSets.
type SymbolSet struct {
	set *treeset.Set
}

func symbolComparator(a, b interface{}) int {
	return utils.StringComparator(a.(*Symbol).Name, b.(*Symbol).Name)
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...*Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts A, returning true if S changed.
func (S *SymbolSet) Add(A *Symbol) bool {
	if S.set.Contains(A) {
		return false
	}
	S.set.Add(A)
	return true
}

// addAll inserts all symbols of other except the symbol except (which may be
// nil). Returns true if S changed.
func (S *SymbolSet) addAll(other *SymbolSet, except *Symbol) bool {
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		A := it.Value().(*Symbol)
		if A == except {
			continue
		}
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Contains is a predicate: is A an element of S?
func (S *SymbolSet) Contains(A *Symbol) bool {
	return S.set.Contains(A)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Empty is a predicate: is S the empty set?
func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Symbols returns the elements of S, sorted by name.
func (S *SymbolSet) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, S.set.Size())
	S.set.Each(func(_ int, x interface{}) {
		syms = append(syms, x.(*Symbol))
	})
	return syms
}

// Names returns the names of the elements of S, sorted.
func (S *SymbolSet) Names() []string {
	names := make([]string, 0, S.set.Size())
	S.set.Each(func(_ int, x interface{}) {
		names = append(names, x.(*Symbol).Name)
	})
	return names
}

// Copy creates a copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Symbols()...)
}

// Equals is a predicate: do S and other contain the same symbols?
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	return other.set.All(func(_ int, x interface{}) bool {
		return S.set.Contains(x)
	})
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, name := range S.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	b.WriteString("}")
	return b.String()
}
