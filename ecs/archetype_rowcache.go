package ecs

import "github.com/kamstrup/intmap"

// rowCache is the debug-inspector convenience index described in
// SPEC_FULL.md §B: a dense map from entity to row, built lazily and thrown
// away on the next structural mutation. It exists purely so ecs/debug
// (LocateEntity) can answer "what row is entity E at" in O(1) without walking
// entityIDs; nothing on the move-entity hot path reads or writes it. This
// is the same job kamstrup/intmap does for the teacher's Archetype.refs,
// just repurposed from a weak-pointer table to a plain row lookup since
// this module has no entity-ref GC concern.
type rowCache struct {
	rows  *intmap.Map[Entity, int]
	valid bool
}

func (c *rowCache) invalidate() {
	c.valid = false
}

func (c *rowCache) ensure(a *Archetype) *intmap.Map[Entity, int] {
	if c.valid && c.rows != nil {
		return c.rows
	}
	c.rows = intmap.New[Entity, int](a.count + 1)
	for row := 0; row < a.count; row++ {
		c.rows.Put(a.entityIDs[row], row)
	}
	c.valid = true
	return c.rows
}

// RowOf returns the row entity e occupies in this archetype, for debug
// inspectors only -- core code always resolves rows through the registry's
// entity index (see Registry.locate), never through this cache.
func (a *Archetype) RowOf(e Entity) (int, bool) {
	rows := a.rowCache.ensure(a)
	return rows.Get(e)
}
