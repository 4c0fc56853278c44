package ecs

//go:generate go run ../internal/gen -out signature_generated.go

// Signature is the ordered, user-chosen tuple of component ids a system
// declares. Its sorted-set projection (AsType) picks the archetype the
// system binds to; its declared order is the column order View exposes.
// Immutable after construction, per spec.md §4.3.
type Signature struct {
	components []Entity
}

// NewSignatureN allocates a Signature of count components with
// uninitialized payload, for callers that fill it in by index (mirrors
// spec.md §4.3's first constructor form).
func NewSignatureN(count int) Signature {
	return Signature{components: make([]Entity, count)}
}

// NewSignature builds a Signature from an explicit, caller-ordered id list.
func NewSignature(ids ...Entity) Signature {
	components := make([]Entity, len(ids))
	copy(components, ids)
	return Signature{components: components}
}

// Set assigns the component id at declared position i -- used together
// with NewSignatureN.
func (s *Signature) Set(i int, id Entity) {
	if i < 0 || i >= len(s.components) {
		raiseBounds("signature index %d out of range [0,%d)", i, len(s.components))
	}
	s.components[i] = id
}

// Len returns the declared component count.
func (s Signature) Len() int { return len(s.components) }

// At returns the component id at declared position i (user order, not
// sorted order).
func (s Signature) At(i int) Entity { return s.components[i] }

// AsType produces a fresh Type containing the signature's components,
// sorted and deduplicated by Type.Add.
func (s Signature) AsType() Type {
	t := NewType(s.Len())
	for _, id := range s.components {
		t.Add(id)
	}
	return t
}
