package ecs

// Entity names a logical "thing" in the world. Components and systems are
// entities too -- ComponentID and SystemID are distinct types over the same
// underlying integer so the compiler catches a component id handed where an
// entity was expected, even though internally a component *is* an entity.
type Entity uint64

// ComponentID is the entity id returned by Registry.Component. It is stored
// inside a Type exactly like any other entity id.
type ComponentID Entity

// SystemID is the entity id returned by Registry.System.
type SystemID Entity

// noEntity is the reserved zero value: never issued by Registry.Entity,
// and returned where a lookup has no entity to give back. HashMap's own
// "empty bucket" sentinel is its emptySlot index, not this value.
const noEntity Entity = 0

func (c ComponentID) entity() Entity { return Entity(c) }
