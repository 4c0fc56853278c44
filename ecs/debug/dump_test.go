package debug_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archkit-go/archkit/ecs"
	"github.com/archkit-go/archkit/ecs/debug"
)

func TestDumpRegistryIncludesArchetypesAndSystems(t *testing.T) {
	r := ecs.NewRegistry()
	position := r.Component(8)
	e := r.Entity()
	r.Attach(e, position)
	r.System(ecs.NewSignature(ecs.Entity(position)), func(v ecs.View, row int) {})

	var buf bytes.Buffer
	debug.DumpRegistry(&buf, r)

	out := buf.String()
	assert.Contains(t, out, "2 archetype(s)")
	assert.Contains(t, out, "1 system(s)")
}

func TestDumpEntitiesListsRowsInOrder(t *testing.T) {
	r := ecs.NewRegistry()
	position := r.Component(8)
	e1 := r.Entity()
	r.Attach(e1, position)
	e2 := r.Entity()
	r.Attach(e2, position)

	var archetype *ecs.Archetype
	for _, a := range r.Archetypes() {
		if a.Type().Len() == 1 {
			archetype = a
		}
	}

	var buf bytes.Buffer
	debug.DumpEntities(&buf, archetype)

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("%d: row 0\n", e1))
	assert.Contains(t, out, fmt.Sprintf("%d: row 1\n", e2))
}

func TestLocateEntityFindsRowViaCache(t *testing.T) {
	r := ecs.NewRegistry()
	position := r.Component(8)
	e1 := r.Entity()
	r.Attach(e1, position)
	e2 := r.Entity()
	r.Attach(e2, position)

	var archetype *ecs.Archetype
	for _, a := range r.Archetypes() {
		if a.Type().Len() == 1 {
			archetype = a
		}
	}

	row, ok := debug.LocateEntity(archetype, e2)
	assert.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestLocateEntityMissingReturnsFalse(t *testing.T) {
	r := ecs.NewRegistry()
	position := r.Component(8)
	e := r.Entity()
	r.Attach(e, position)

	_, ok := debug.LocateEntity(r.Root(), e)
	assert.False(t, ok)
}
