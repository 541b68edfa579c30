package iteratable

import (
	"bytes"
	"fmt"
)

// Set is an insertion-ordered set of comparable values. Iterating over a set
// with IterateOnce and Next will visit elements appended during iteration, too,
// which makes Set suitable as a work list for closure computations.
//
// Sets are not safe for concurrent mutation.
type Set struct {
	items  []interface{}
	member map[interface{}]int
	cursor int
}

// NewSet creates an empty set with initial capacity n.
func NewSet(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{
		items:  make([]interface{}, 0, n),
		member: make(map[interface{}]int, n),
		cursor: -1,
	}
}

// Add appends an element, if not already present. Returns true if the set
// changed.
func (s *Set) Add(item interface{}) bool {
	if _, ok := s.member[item]; ok {
		return false
	}
	s.member[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Contains is a predicate: is item an element of s?
func (s *Set) Contains(item interface{}) bool {
	_, ok := s.member[item]
	return ok
}

// Size returns the number of elements in s.
func (s *Set) Size() int {
	return len(s.items)
}

// Empty is a predicate: is s the empty set?
func (s *Set) Empty() bool {
	return len(s.items) == 0
}

// Values returns the elements of s in insertion order.
func (s *Set) Values() []interface{} {
	return append([]interface{}(nil), s.items...)
}

// Copy creates a shallow copy of s.
func (s *Set) Copy() *Set {
	c := NewSet(len(s.items))
	for _, item := range s.items {
		c.Add(item)
	}
	return c
}

// Each calls f for every element, in insertion order.
func (s *Set) Each(f func(interface{})) {
	for _, item := range s.items {
		f(item)
	}
}

// Equals is a predicate: do s and other contain the same elements,
// regardless of order?
func (s *Set) Equals(other *Set) bool {
	if other == nil {
		return s.Empty()
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IterateOnce starts an iteration over s. Elements added to s during the
// iteration will be visited as well.
//
//     S.IterateOnce()
//     for S.Next() {
//         x := S.Item()
//     }
//
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next advances the iteration cursor.
func (s *Set) Next() bool {
	s.cursor++
	return s.cursor < len(s.items)
}

// Item returns the element at the iteration cursor.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, item := range s.items {
		if i > 0 {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%v", item))
	}
	b.WriteString(" }")
	return b.String()
}
