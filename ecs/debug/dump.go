// Package debug provides human-readable dumps of a registry's archetype
// graph (each archetype's type, row count, edges, and entities) plus a
// single-entity row lookup; it has no dump of the hash maps themselves --
// spec.md §2 row 9, "Debug inspectors
// (conditional)". It imports only the exported surface of ecs, the same
// boundary the teacher's own debugui package observes against Storage.
package debug

import (
	"fmt"
	"io"

	"github.com/archkit-go/archkit/ecs"
)

// DumpRegistry writes a summary of every archetype in r to w: its type,
// row count, and edges. Intended for interactive debugging sessions, not
// for parsing.
func DumpRegistry(w io.Writer, r *ecs.Registry) {
	archetypes := r.Archetypes()
	fmt.Fprintf(w, "registry: %d archetype(s), %d system(s)\n", len(archetypes), r.SystemCount())
	for _, a := range archetypes {
		DumpArchetype(w, a)
	}
}

// DumpArchetype writes one archetype's type, row count, and edges.
func DumpArchetype(w io.Writer, a *ecs.Archetype) {
	fmt.Fprintf(w, "  archetype %s: %d row(s)\n", a.Type(), a.Count())

	for i := 0; i < a.RightEdgeCount(); i++ {
		component, neighbor := a.RightEdgeAt(i)
		fmt.Fprintf(w, "    +%d -> %s\n", component, neighbor.Type())
	}
	for i := 0; i < a.LeftEdgeCount(); i++ {
		component, neighbor := a.LeftEdgeAt(i)
		fmt.Fprintf(w, "    -%d -> %s\n", component, neighbor.Type())
	}
}

// DumpEntities writes every entity id currently stored in a, one per line,
// in row order.
func DumpEntities(w io.Writer, a *ecs.Archetype) {
	for row := 0; row < a.Count(); row++ {
		fmt.Fprintf(w, "%d: row %d\n", a.EntityAt(row), row)
	}
}

// LocateEntity answers "what row is entity E at in this archetype" via
// Archetype.RowOf's cached lookup, for interactive debugging sessions that
// already know which archetype to look in and want a single entity's row
// without scanning every row DumpEntities would print.
func LocateEntity(a *ecs.Archetype, e ecs.Entity) (row int, ok bool) {
	return a.RowOf(e)
}
