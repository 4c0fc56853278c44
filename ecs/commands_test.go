package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsFlushAttachesAndSets(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	e := r.Entity()

	cmds := NewCommands()
	cmds.Attach(e, position)
	cmds.Set(e, position, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	cmds.Flush(r)

	assert.True(t, r.Has(e, position))
}

func TestCommandsSpawnQueuesEntityUntilFlush(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	cmds := NewCommands()
	pending := cmds.Spawn(Value(position, []byte{9, 9, 9, 9, 9, 9, 9, 9}))

	assert.False(t, pending.ready)

	cmds.Flush(r)

	require.True(t, pending.ready)
	assert.True(t, r.Has(pending.resolved, position))
}

func TestCommandsSpawnThenAttachInSameBuffer(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)
	velocity := r.Component(8)

	cmds := NewCommands()
	pending := cmds.Spawn(Value(position, []byte{1, 0, 0, 0, 0, 0, 0, 0}))
	cmds.Attach(pending, velocity)
	cmds.Set(pending, velocity, []byte{2, 0, 0, 0, 0, 0, 0, 0})
	cmds.Flush(r)

	e := pending.resolved
	assert.True(t, r.Has(e, position))
	assert.True(t, r.Has(e, velocity))
}

func TestCommandsDeferRunsAfterOtherCommands(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	var observedHas bool

	cmds := NewCommands()
	e := r.Entity()
	cmds.Attach(e, position)
	cmds.Defer(func() {
		observedHas = r.Has(e, position)
	})
	cmds.Flush(r)

	assert.True(t, observedHas)
}

func TestCommandsFlushClearsBufferForReuse(t *testing.T) {
	r := NewRegistry()
	position := r.Component(8)

	cmds := NewCommands()
	e := r.Entity()
	cmds.Attach(e, position)
	cmds.Flush(r)

	before := r.ArchetypeCount()

	// flushing an empty buffer a second time must be a no-op
	cmds.Flush(r)

	assert.Equal(t, before, r.ArchetypeCount())
}

func TestPendingEntityResolveBeforeFlushPanics(t *testing.T) {
	pending := &PendingEntity{}
	assert.Panics(t, func() {
		pending.resolveEntity()
	})
}
