package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEntityStartsInRootArchetype(t *testing.T) {
	r := NewRegistry()
	e := r.Entity()

	assert.Same(t, r.Root(), r.locate(e).archetype)
}

func TestRegistryComponentRegistersSize(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	size, ok := r.ComponentSize(position)
	require.True(t, ok)
	assert.Equal(t, uintptr(8), size)
}

func TestRegistryAttachMovesEntityToNewArchetype(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)
	e := r.Entity()

	r.Attach(e, position)

	assert.True(t, r.Has(e, position))
	assert.NotSame(t, r.Root(), r.locate(e).archetype)
}

func TestRegistryAttachSameComponentTwicePanics(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)
	e := r.Entity()
	r.Attach(e, position)

	assert.Panics(t, func() {
		r.Attach(e, position)
	})
}

func TestRegistrySetRequiresAttachedComponent(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)
	e := r.Entity()

	assert.Panics(t, func() {
		r.Set(e, position, make([]byte, 8))
	})
}

func TestRegistrySetAndReadBack(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)
	e := r.Entity()
	r.Attach(e, position)

	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r.Set(e, position, payload)

	rec := r.locate(e)
	col := rec.archetype.typ.IndexOf(position.entity())
	ptr := rec.archetype.columnPointer(col, rec.row)
	assert.Equal(t, byte(1), *(*byte)(ptr))
}

func TestRegistryLocateUnknownEntityPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.locate(Entity(999))
	})
}

// TestRegistryArchetypeReuseAcrossAttachOrders exercises spec.md §8 scenario
// 5: entities reaching the same component set via different attach orders
// must land in the same archetype, and the graph must not accumulate more
// than one archetype per distinct combination (at most 2^3 == 8 for three
// components).
func TestRegistryArchetypeReuseAcrossAttachOrders(t *testing.T) {
	r := NewRegistry()
	a := r.Component(4)
	b := r.Component(4)
	c := r.Component(4)

	e1 := r.Entity()
	r.Attach(e1, a)
	r.Attach(e1, b)
	r.Attach(e1, c)

	e2 := r.Entity()
	r.Attach(e2, c)
	r.Attach(e2, b)
	r.Attach(e2, a)

	rec1 := r.locate(e1)
	rec2 := r.locate(e2)
	assert.Same(t, rec1.archetype, rec2.archetype)
	assert.LessOrEqual(t, r.ArchetypeCount(), 8)
}

func TestRegistrySystemBindsArchetypeAtRegistration(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	var seen []Entity
	sig := NewSignature(position.entity())
	r.System(sig, func(v View, row int) {
		seen = append(seen, v.Entity(row))
	})

	e := r.Entity()
	r.Attach(e, position)
	r.Set(e, position, make([]byte, 8))

	r.Step()

	assert.Equal(t, []Entity{e}, seen)
}
