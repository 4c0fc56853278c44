package ecs

import "unsafe"

// record names where an entity currently lives: which archetype, and at
// which row.
type record struct {
	archetype *Archetype
	row       int
}

// Archetype is a table storing every entity of one exact component set,
// column-major by component, plus the left/right edges that make it a
// vertex of the archetype graph. It exclusively owns its Type, its row of
// entity ids, its column byte arrays, and its two edge lists -- spec.md
// §4.5.
type Archetype struct {
	typ Type

	sizes   []uintptr // parallel to typ.elements
	columns [][]byte  // parallel to typ.elements; column i holds count rows of sizes[i] bytes

	entityIDs   []Entity
	count       int
	rowCapacity int

	left  EdgeList
	right EdgeList

	// entityIndex is borrowed from the owning Registry, not owned here --
	// every archetype writes through it on Add/moveEntityRight so a
	// record always names the archetype that actually holds the row.
	entityIndex *HashMap[Entity, record]

	// rowCache is a read-through convenience index (entity -> row) used
	// only by the debug inspector ecs/debug (LocateEntity) to answer
	// "what row is entity E at" in O(1) without scanning entityIDs. It is
	// never consulted by the move protocol itself -- entityIndex remains
	// the single source of truth -- and is rebuilt lazily so a stale
	// cache can never corrupt a structural operation. See
	// archetype_rowcache.go.
	rowCache rowCache
}

// newArchetype constructs the archetype for typ, installing it into
// typeIndex. Asserts no archetype already exists for typ -- canonicalization
// is enforced here, once, at construction.
func newArchetype(typ Type, componentSizes *HashMap[Entity, uintptr], typeIndex *HashMap[Type, *Archetype], entityIndex *HashMap[Entity, record]) *Archetype {
	if _, exists := typeIndex.Get(typ); exists {
		raiseContract("archetype already exists for this type")
	}

	a := &Archetype{
		typ:         typ,
		sizes:       make([]uintptr, typ.Len()),
		columns:     make([][]byte, typ.Len()),
		entityIDs:   make([]Entity, archetypeInitialRowCapacity),
		rowCapacity: archetypeInitialRowCapacity,
		entityIndex: entityIndex,
	}

	for i := 0; i < typ.Len(); i++ {
		size, ok := componentSizes.Get(typ.At(i))
		if !ok {
			raiseLookup("component %d has no registered size", typ.At(i))
		}
		a.sizes[i] = *size
		a.columns[i] = make([]byte, *size*archetypeInitialRowCapacity)
	}

	typeIndex.Set(typ, a)
	return a
}

// Type returns the archetype's component set.
func (a *Archetype) Type() Type { return a.typ }

// Count returns the number of live rows.
func (a *Archetype) Count() int { return a.count }

// EntityAt returns the entity stored at row.
func (a *Archetype) EntityAt(row int) Entity { return a.entityIDs[row] }

// RightEdgeCount and RightEdgeAt expose the "add component" edges for the
// debug inspectors and for callers walking the graph themselves.
func (a *Archetype) RightEdgeCount() int { return a.right.Len() }
func (a *Archetype) RightEdgeAt(i int) (Entity, *Archetype) { return a.right.At(i) }

// LeftEdgeCount and LeftEdgeAt expose the "remove component" edges.
func (a *Archetype) LeftEdgeCount() int { return a.left.Len() }
func (a *Archetype) LeftEdgeAt(i int) (Entity, *Archetype) { return a.left.At(i) }

func (a *Archetype) grow() {
	newCapacity := a.rowCapacity * hashMapGrowthFactor

	newEntityIDs := make([]Entity, newCapacity)
	copy(newEntityIDs, a.entityIDs)
	a.entityIDs = newEntityIDs

	for i := range a.columns {
		newCol := make([]byte, a.sizes[i]*uintptr(newCapacity))
		copy(newCol, a.columns[i])
		a.columns[i] = newCol
	}

	a.rowCapacity = newCapacity
}

// add places entity at the next free row, growing storage if full, and
// records (this, row) in the shared entity index. Column data for the row
// is left uninitialized; the caller populates it via writeColumn or
// moveEntityRight.
func (a *Archetype) add(e Entity) int {
	if a.count == a.rowCapacity {
		a.grow()
	}
	row := a.count
	a.entityIDs[row] = e
	a.entityIndex.Set(e, record{archetype: a, row: row})
	a.count++
	a.rowCache.invalidate()
	return row
}

// columnOffset returns the byte range for (col, row).
func (a *Archetype) columnOffset(col, row int) (start, end uintptr) {
	size := a.sizes[col]
	start = size * uintptr(row)
	return start, start + size
}

// writeColumn copies data (exactly sizes[col] bytes) into (col, row).
func (a *Archetype) writeColumn(col, row int, data []byte) {
	if uintptr(len(data)) != a.sizes[col] {
		raiseContract("component payload size %d does not match registered size %d", len(data), a.sizes[col])
	}
	start, end := a.columnOffset(col, row)
	copy(a.columns[col][start:end], data)
}

// columnPointer returns a pointer to the first byte of (col, row)'s
// payload, valid only until the next structural mutation of this
// archetype.
func (a *Archetype) columnPointer(col, row int) unsafe.Pointer {
	start, _ := a.columnOffset(col, row)
	return unsafe.Pointer(&a.columns[col][start])
}

func (a *Archetype) copyColumnRow(col int, srcRow int, dst *Archetype, dstCol int, dstRow int) {
	srcStart, srcEnd := a.columnOffset(col, srcRow)
	dstStart, dstEnd := dst.columnOffset(dstCol, dstRow)
	copy(dst.columns[dstCol][dstStart:dstEnd], a.columns[col][srcStart:srcEnd])
}

// moveEntityRight is the central relocation primitive used by attach: it
// relocates the entity at left's leftRow into right (whose type must be
// left's type plus exactly one component), preserving every previously-held
// component's bytes and the packed-row invariant on both sides.
//
// spec.md §9's Open Question on this routine: one source variant patches
// only the moved entity's record, not the tail-swap victim's. This
// implementation repatches both, which the invariant in spec.md §4.5
// ("for every row r < count, entity_ids[r] is an entity whose registry
// record points back to (this, r)") requires.
func moveEntityRight(left, right *Archetype, leftRow int) int {
	e := left.entityIDs[leftRow]
	tailRow := left.count - 1
	tailEntity := left.entityIDs[tailRow]
	left.entityIDs[leftRow] = tailEntity

	rightRow := right.add(e)

	i, j := 0, 0
	for i < left.typ.Len() {
		for left.typ.At(i) != right.typ.At(j) {
			j++
		}
		left.copyColumnRow(i, leftRow, right, j, rightRow)
		// swap-back: the vacated left row takes the tail row's bytes for
		// this column, mirroring the entity-id tail swap above.
		left.copyColumnRow(i, tailRow, left, i, leftRow)
		i++
		j++
	}

	left.count--
	left.rowCache.invalidate()

	if tailRow != leftRow {
		left.entityIndex.Set(tailEntity, record{archetype: left, row: leftRow})
	}

	return rightRow
}
