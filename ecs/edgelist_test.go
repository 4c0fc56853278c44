package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeListAddAndFind(t *testing.T) {
	var l EdgeList
	x := &Archetype{}
	y := &Archetype{}

	l.Add(1, x)
	l.Add(2, y)

	assert.Equal(t, 2, l.Len())
	assert.Same(t, x, l.Find(1))
	assert.Same(t, y, l.Find(2))
	assert.Nil(t, l.Find(99))
}

func TestEdgeListRemoveSwapsWithLastAndClearsTail(t *testing.T) {
	var l EdgeList
	a := &Archetype{}
	b := &Archetype{}
	c := &Archetype{}

	l.Add(1, a)
	l.Add(2, b)
	l.Add(3, c)

	l.Remove(1)

	require.Equal(t, 2, l.Len())
	assert.Nil(t, l.Find(1))
	assert.Same(t, c, l.Find(3))
	assert.Same(t, b, l.Find(2))

	// the vacated tail slot must not resurrect a stale edge if Add grows
	// the backing array again
	l.Add(4, a)
	component, neighbor := l.At(2)
	assert.Equal(t, Entity(4), component)
	assert.Same(t, a, neighbor)
}

func TestEdgeListRemoveMissingIsNoop(t *testing.T) {
	var l EdgeList
	l.Add(1, &Archetype{})

	l.Remove(99)

	assert.Equal(t, 1, l.Len())
}

func TestEdgeListAt(t *testing.T) {
	var l EdgeList
	a := &Archetype{}
	l.Add(5, a)

	component, neighbor := l.At(0)
	assert.Equal(t, Entity(5), component)
	assert.Same(t, a, neighbor)
}
