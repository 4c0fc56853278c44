package ecs

// Commands is the optional, additive command buffer SPEC_FULL.md §D.4
// describes: it queues Spawn/Attach/Set/Defer calls and applies them in
// one pass via Flush. The core's own attach/set/entity remain immediate,
// exactly as spec.md's Non-goals require -- Commands never calls into a
// Registry except from inside Flush, and nothing in the core depends on
// it existing.
//
// Grounded on the teacher's ecs/commands.go (spawns/adds/removes/defers
// queued, flushed in one pass at the end of a tick); unlike the teacher,
// no entity-id remap table is needed across a flush, because spec.md's
// Entity never changes across an attach -- only the Record it resolves to
// does (see SPEC_FULL.md §D.4).
type Commands struct {
	spawns   []*spawnCmd
	attaches []attachCmd
	sets     []setCmd
	defers   []func()
}

// entityRef is anything Attach/Set can target: a concrete Entity, or a
// PendingEntity naming one not yet created when the command was queued.
type entityRef interface {
	resolveEntity() Entity
}

func (e Entity) resolveEntity() Entity { return e }

// PendingEntity names an entity that a queued Spawn will create. It
// resolves to a real Entity once Flush processes that Spawn -- queueing an
// Attach/Set against it before that point is fine; resolving it before
// Flush runs is a contract violation.
type PendingEntity struct {
	resolved Entity
	ready    bool
}

func (p *PendingEntity) resolveEntity() Entity {
	if !p.ready {
		raiseContract("pending entity referenced before its spawn command was flushed")
	}
	return p.resolved
}

// ComponentValue pairs a component id with the payload bytes Spawn should
// write for it.
type ComponentValue struct {
	component ComponentID
	data      []byte
}

// Value builds a ComponentValue for use with Commands.Spawn.
func Value(component ComponentID, data []byte) ComponentValue {
	return ComponentValue{component: component, data: data}
}

type spawnCmd struct {
	pending    *PendingEntity
	components []ComponentValue
}

type attachCmd struct {
	target    entityRef
	component ComponentID
}

type setCmd struct {
	target    entityRef
	component ComponentID
	data      []byte
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues creation of a new entity carrying the given components,
// returning a handle other commands in the same buffer can target before
// the entity actually exists.
func (c *Commands) Spawn(components ...ComponentValue) *PendingEntity {
	pending := &PendingEntity{}
	c.spawns = append(c.spawns, &spawnCmd{pending: pending, components: components})
	return pending
}

// Attach queues a component attachment against target (a concrete Entity
// or a *PendingEntity from this same buffer).
func (c *Commands) Attach(target entityRef, component ComponentID) {
	c.attaches = append(c.attaches, attachCmd{target: target, component: component})
}

// Set queues a component write against target.
func (c *Commands) Set(target entityRef, component ComponentID, data []byte) {
	c.sets = append(c.sets, setCmd{target: target, component: component, data: data})
}

// Defer queues an arbitrary function to run once, after every other queued
// command in this buffer has applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies every queued command to r, in order: spawns (each creating
// its entity and attaching/setting its initial components), attaches,
// sets, then defers. Spawns come first so Attach/Set commands aimed at a
// PendingEntity find it resolved. There is no removal step (the core has
// no component-removal operation) and no remap pass, since ids here are
// stable across attach.
func (c *Commands) Flush(r *Registry) {
	for _, s := range c.spawns {
		e := r.Entity()
		s.pending.resolved = e
		s.pending.ready = true
		for _, cv := range s.components {
			r.Attach(e, cv.component)
			r.Set(e, cv.component, cv.data)
		}
	}

	for _, a := range c.attaches {
		r.Attach(a.target.resolveEntity(), a.component)
	}

	for _, st := range c.sets {
		r.Set(st.target.resolveEntity(), st.component, st.data)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.attaches = c.attaches[:0]
	c.sets = c.sets[:0]
	c.defers = c.defers[:0]
}
