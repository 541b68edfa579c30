package lr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/npillmayer/cslr/lr/iteratable"
)

// Item is an LR(0) item: a rule together with a dot position. Items are
// comparable values.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns an item with the dot at the front of rule r.
func StartItem(r *Rule) Item {
	return Item{rule: r}
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position of an item.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, if any. For the start item of an
// epsilon rule this is epsilon.
func (i Item) PeekSymbol() *Symbol {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance moves the dot one position to the right.
func (i Item) Advance() Item {
	if i.dot < len(i.rule.rhs) {
		return Item{rule: i.rule, dot: i.dot + 1}
	}
	return i
}

// IsComplete is a predicate: is the dot behind the RHS?
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" ➞")
	for n, A := range i.rule.rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	return b.String()
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(8)
}

// itemKey is the hashable form of an item.
type itemKey struct {
	Rule int
	Dot  int
}

// itemSetHash computes a content hash of an item set, independent of the
// order of insertion.
func itemSetHash(S *iteratable.Set) string {
	keys := make([]itemKey, 0, S.Size())
	S.Each(func(x interface{}) {
		i := asItem(x)
		keys = append(keys, itemKey{Rule: i.rule.Serial, Dot: i.dot})
	})
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].Rule == keys[b].Rule {
			return keys[a].Dot < keys[b].Dot
		}
		return keys[a].Rule < keys[b].Rule
	})
	h, err := structhash.Hash(keys, 1)
	if err != nil { // cannot happen for slices of plain structs
		tracer().Errorf("cannot hash item set: %v", err)
		return fmt.Sprintf("%v", keys)
	}
	return h
}

// Dump is a debugging helper, tracing an item set.
func Dump(S *iteratable.Set) {
	S.Each(func(x interface{}) {
		tracer().Debugf("   %v", asItem(x))
	})
}

func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	S.Each(func(x interface{}) {
		if b.Len() > 1 {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(asItem(x).String())
	})
	b.WriteString(" }")
	return b.String()
}
