package ecs

// systemEntry is what Registry.System stores: the archetype a system is
// bound to, its declared signature, and the callback Step invokes.
type systemEntry struct {
	archetype *Archetype
	signature Signature
	fn        SystemFunc
}

// Registry is the root object owning all state for one ECS world: the
// four indices (entity->record, component->size, system->entry,
// type->archetype), the empty-type root archetype, and the monotonic
// entity id counter. spec.md §3 "Registry".
type Registry struct {
	entityIndex    *HashMap[Entity, record]
	componentIndex *HashMap[Entity, uintptr]
	systemIndex    *HashMap[Entity, systemEntry]
	typeIndex      *HashMap[Type, *Archetype]

	root *Archetype

	nextEntityID Entity
	stepping     bool
}

// NewRegistry creates a registry with its root (empty-type) archetype
// already installed in the type index. spec.md §6 "init".
func NewRegistry() *Registry {
	r := &Registry{
		nextEntityID: 1,
	}
	r.entityIndex = NewHashMap[Entity, record](entityIndexInitialCapacity, entityHash, entityEqual)
	r.componentIndex = NewHashMap[Entity, uintptr](componentIndexInitialCapacity, entityHash, entityEqual)
	r.systemIndex = NewHashMap[Entity, systemEntry](systemIndexInitialCapacity, entityHash, entityEqual)
	r.typeIndex = NewHashMap[Type, *Archetype](typeIndexInitialCapacity, typeHash, typeEqual)

	r.root = newArchetype(NewType(0), r.componentIndex, r.typeIndex, r.entityIndex)
	return r
}

// Destroy releases the registry's state. Archetypes, maps, and the
// registry itself are ordinary garbage-collected Go values; Destroy exists
// to give callers the same explicit teardown point spec.md §6 names, and
// to make reuse-after-destroy a detectable programming error rather than a
// silent continuation.
func (r *Registry) Destroy() {
	r.entityIndex = nil
	r.componentIndex = nil
	r.systemIndex = nil
	r.typeIndex = nil
	r.root = nil
}

func (r *Registry) allocEntity() Entity {
	id := r.nextEntityID
	r.nextEntityID++
	return id
}

func (r *Registry) guardNotStepping(op string) {
	if debugChecks && r.stepping {
		raiseContract("%s called from within a system callback during Step", op)
	}
}

// Entity creates a new entity, placed into the empty-type root archetype.
func (r *Registry) Entity() Entity {
	r.guardNotStepping("Entity")
	e := r.allocEntity()
	r.root.add(e)
	return e
}

// Component registers a new component kind of the given byte size and
// returns its id. A component is an entity: it draws from the same id
// space and is itself eligible to be attached to other entities (spec.md
// §3).
func (r *Registry) Component(size uintptr) ComponentID {
	id := r.allocEntity()
	r.componentIndex.Set(id, size)
	return ComponentID(id)
}

// System registers fn to run once per row of every archetype whose type is
// a superset of sig's sorted projection, traversing/creating the bound
// archetype as needed.
func (r *Registry) System(sig Signature, fn SystemFunc) SystemID {
	id := r.allocEntity()
	target := sig.AsType()
	arch := traverseAndCreate(r.root, target, r.componentIndex, r.typeIndex, r.entityIndex)
	r.systemIndex.Set(id, systemEntry{archetype: arch, signature: sig, fn: fn})
	return SystemID(id)
}

// locate resolves e's current record, aborting if e is unknown.
func (r *Registry) locate(e Entity) record {
	rec, ok := r.entityIndex.Get(e)
	if !ok {
		raiseContract("unknown entity %d", e)
	}
	return *rec
}

// Attach moves e into the archetype for its current type plus component,
// creating that archetype if it doesn't exist yet. Attaching a component e
// already has is a contract violation (spec.md §4.7 declines to define it
// any other way, to avoid silently corrupting state).
func (r *Registry) Attach(e Entity, component ComponentID) {
	r.guardNotStepping("Attach")

	rec := r.locate(e)
	comp := component.entity()

	left := rec.archetype
	if left.typ.IndexOf(comp) != -1 {
		raiseContract("entity %d already has component %d", e, comp)
	}

	rightType := left.typ.Copy()
	rightType.Add(comp)

	right, exists := r.typeIndex.Get(rightType)
	var rightArchetype *Archetype
	if exists {
		rightArchetype = *right
	} else {
		rightArchetype = insertVertex(r.root, left, rightType, comp, r.componentIndex, r.typeIndex, r.entityIndex)
	}

	moveEntityRight(left, rightArchetype, rec.row)
}

// Set copies size(component) bytes into e's column for component. Aborts
// if e doesn't currently hold component.
func (r *Registry) Set(e Entity, component ComponentID, data []byte) {
	r.guardNotStepping("Set")

	rec := r.locate(e)
	comp := component.entity()

	col := rec.archetype.typ.IndexOf(comp)
	if col == -1 {
		raiseContract("entity %d lacks component %d", e, comp)
	}
	rec.archetype.writeColumn(col, rec.row, data)
}

// Has reports whether e currently holds component.
func (r *Registry) Has(e Entity, component ComponentID) bool {
	rec := r.locate(e)
	return rec.archetype.typ.IndexOf(component.entity()) != -1
}

// ArchetypeCount returns the number of distinct archetypes currently
// installed -- used by the debug inspectors and by the archetype-reuse
// test scenario in spec.md §8.
func (r *Registry) ArchetypeCount() int {
	return r.typeIndex.Len()
}

// Archetypes returns every archetype currently installed, root included.
// Exposed for the debug inspectors (ecs/debug, ecs/debugui); core
// dispatch never iterates this list -- it always walks the graph's edges.
func (r *Registry) Archetypes() []*Archetype {
	return r.typeIndex.Values()
}

// Root returns the empty-type root archetype.
func (r *Registry) Root() *Archetype { return r.root }

// ComponentSize returns the registered byte size for a component id.
func (r *Registry) ComponentSize(c ComponentID) (uintptr, bool) {
	size, ok := r.componentIndex.Get(c.entity())
	if !ok {
		return 0, false
	}
	return *size, true
}

// SystemCount returns the number of registered systems.
func (r *Registry) SystemCount() int { return r.systemIndex.Len() }

