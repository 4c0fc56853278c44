package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistryState() (*HashMap[Entity, uintptr], *HashMap[Type, *Archetype], *HashMap[Entity, record]) {
	sizes := NewHashMap[Entity, uintptr](8, entityHash, entityEqual)
	types := NewHashMap[Type, *Archetype](8, typeHash, typeEqual)
	entities := NewHashMap[Entity, record](8, entityHash, entityEqual)
	return sizes, types, entities
}

func TestNewArchetypeRejectsDuplicateType(t *testing.T) {
	sizes, types, entities := newTestRegistryState()
	ty := NewType(0)

	newArchetype(ty, sizes, types, entities)

	assert.Panics(t, func() {
		newArchetype(ty, sizes, types, entities)
	})
}

func TestArchetypeAddGrowsStorage(t *testing.T) {
	sizes, types, entities := newTestRegistryState()
	sizes.Set(1, 4)

	ty := NewType(0)
	ty.Add(1)
	a := newArchetype(ty, sizes, types, entities)

	for i := 0; i < archetypeInitialRowCapacity+5; i++ {
		e := Entity(i + 1)
		row := a.add(e)
		a.writeColumn(0, row, []byte{1, 2, 3, 4})
	}

	assert.Equal(t, archetypeInitialRowCapacity+5, a.Count())
	assert.True(t, a.rowCapacity >= a.Count())
}

func TestArchetypeWriteColumnRejectsWrongSize(t *testing.T) {
	sizes, types, entities := newTestRegistryState()
	sizes.Set(1, 4)

	ty := NewType(0)
	ty.Add(1)
	a := newArchetype(ty, sizes, types, entities)
	row := a.add(1)

	assert.Panics(t, func() {
		a.writeColumn(0, row, []byte{1, 2})
	})
}

func TestMoveEntityRightPreservesColumnDataAndRecords(t *testing.T) {
	sizes, types, entities := newTestRegistryState()
	sizes.Set(1, 4)
	sizes.Set(2, 4)

	tA := NewType(0)
	tA.Add(1)
	left := newArchetype(tA, sizes, types, entities)

	tAB := NewType(0)
	tAB.Add(1)
	tAB.Add(2)
	right := newArchetype(tAB, sizes, types, entities)
	makeEdges(left, right, 2)

	e1 := Entity(1)
	e2 := Entity(2)
	row1 := left.add(e1)
	left.writeColumn(0, row1, []byte{10, 0, 0, 0})
	row2 := left.add(e2)
	left.writeColumn(0, row2, []byte{20, 0, 0, 0})

	newRow := moveEntityRight(left, right, row1)

	assert.Equal(t, 1, left.Count())
	assert.Equal(t, 1, right.Count())

	// e1's component-1 bytes must have survived the move.
	col := right.columnPointer(right.typ.IndexOf(1), newRow)
	assert.Equal(t, byte(10), *(*byte)(col))

	// e2 (the tail-swap victim) must now be at row1 in left, with its
	// registry record repatched to match.
	rec, ok := entities.Get(e2)
	require.True(t, ok)
	assert.Same(t, left, rec.archetype)
	assert.Equal(t, row1, rec.row)
	assert.Equal(t, e2, left.EntityAt(row1))

	recMoved, ok := entities.Get(e1)
	require.True(t, ok)
	assert.Same(t, right, recMoved.archetype)
	assert.Equal(t, newRow, recMoved.row)
}

func TestRowCacheInvalidatesOnStructuralChange(t *testing.T) {
	sizes, types, entities := newTestRegistryState()
	sizes.Set(1, 4)

	ty := NewType(0)
	ty.Add(1)
	a := newArchetype(ty, sizes, types, entities)

	e := Entity(42)
	row := a.add(e)

	got, ok := a.RowOf(e)
	require.True(t, ok)
	assert.Equal(t, row, got)

	e2 := Entity(43)
	a.add(e2)

	got2, ok := a.RowOf(e2)
	require.True(t, ok)
	assert.Equal(t, 1, got2)
}
