package ecs

import (
	"fmt"
	"strings"
)

// Type is the sorted, duplicate-free set of component ids an entity holds.
// It is a mutable ordered set backed by a plain slice -- spec.md §4.2 asks
// for strictly-ascending storage with linear insertion/removal, not a
// bitset or tree, so that is exactly what this is.
type Type struct {
	elements []Entity
}

// NewType creates an empty Type. initialCapacity may be zero; it is
// upgraded to 1 lazily on the first Add, per spec.md §4.2.
func NewType(initialCapacity int) Type {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return Type{elements: make([]Entity, 0, initialCapacity)}
}

// Len returns the number of elements.
func (t Type) Len() int { return len(t.elements) }

// At returns the element at sorted position i.
func (t Type) At(i int) Entity { return t.elements[i] }

// IndexOf returns the position of e, or -1 if absent.
func (t Type) IndexOf(e Entity) int {
	for i, x := range t.elements {
		if x == e {
			return i
		}
	}
	return -1
}

// Add inserts e, preserving sort order. Idempotent: adding an id already
// present is a no-op. This is the form spec.md §4.2's Open Question
// resolves correctly: the tail shifts by exactly count-i elements, landing
// e at position i, rather than overshooting past count.
func (t *Type) Add(e Entity) {
	i := 0
	for i < len(t.elements) && t.elements[i] < e {
		i++
	}
	if i < len(t.elements) && t.elements[i] == e {
		return
	}

	t.elements = append(t.elements, noEntity)
	copy(t.elements[i+1:], t.elements[i:len(t.elements)-1])
	t.elements[i] = e
}

// Remove deletes e if present; a no-op otherwise.
func (t *Type) Remove(e Entity) {
	i := t.IndexOf(e)
	if i == -1 {
		return
	}
	copy(t.elements[i:], t.elements[i+1:])
	t.elements = t.elements[:len(t.elements)-1]
}

// Equal short-circuits on identical backing arrays (rare but cheap to
// check) and on length mismatch before comparing elements.
func (t Type) Equal(o Type) bool {
	if len(t.elements) != len(o.elements) {
		return false
	}
	if len(t.elements) > 0 && &t.elements[0] == &o.elements[0] {
		return true
	}
	for i := range t.elements {
		if t.elements[i] != o.elements[i] {
			return false
		}
	}
	return true
}

// IsSuperset reports whether t contains every element of sub. Both are
// sorted, so this is the standard sorted-merge two-pointer algorithm.
func (t Type) IsSuperset(sub Type) bool {
	left, right := 0, 0
	for right < len(sub.elements) {
		if left >= len(t.elements) {
			return false
		}
		switch {
		case t.elements[left] < sub.elements[right]:
			left++
		case t.elements[left] == sub.elements[right]:
			left++
			right++
		default:
			return false
		}
	}
	return true
}

// Copy produces an independent Type with the same elements. The new
// backing array is sized to the source's capacity, not just its length,
// matching spec.md §4.2's explicit edge case.
func (t Type) Copy() Type {
	out := Type{elements: make([]Entity, len(t.elements), cap(t.elements))}
	copy(out.elements, t.elements)
	return out
}

// String renders the type as its sorted element list, for panic messages
// and the debug inspectors.
func (t Type) String() string {
	parts := make([]string, len(t.elements))
	for i, e := range t.elements {
		parts[i] = fmt.Sprintf("%d", e)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// diffOne returns the single id present in superset but not in sub, where
// superset.Len() == sub.Len()+1 and superset is known to be a superset of
// sub. Used by graph.go's insertVertex to label the edge between two
// archetypes one component apart.
func diffOne(superset, sub Type) Entity {
	i, j := 0, 0
	for i < len(superset.elements) {
		if j < len(sub.elements) && superset.elements[i] == sub.elements[j] {
			i++
			j++
			continue
		}
		return superset.elements[i]
	}
	raiseContract("diffOne: superset has no extra element over sub")
	return noEntity
}
