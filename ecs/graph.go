package ecs

// makeEdges wires a right-edge a->b and the matching left-edge b->a, both
// labeled component. spec.md §4.6.
func makeEdges(a, b *Archetype, component Entity) {
	a.right.Add(component, b)
	b.left.Add(component, a)
}

// insertVertex creates the archetype for newType, wires it to leftNeighbor
// via componentForEdge, and then links it to every other existing archetype
// exactly one component short of newType, and to every existing archetype
// exactly one component larger than it, that the graph's root can reach.
// spec.md §4.6, with the descent policy spec.md §9 resolves: only
// right-edges from root are followed, which suffices because root has the
// empty type and every archetype is reachable from it in exactly
// len(type) right-edge hops.
func insertVertex(root, leftNeighbor *Archetype, newType Type, componentForEdge Entity, componentSizes *HashMap[Entity, uintptr], typeIndex *HashMap[Type, *Archetype], entityIndex *HashMap[Entity, record]) *Archetype {
	vertex := newArchetype(newType, componentSizes, typeIndex, entityIndex)
	makeEdges(leftNeighbor, vertex, componentForEdge)
	linkSiblings(root, vertex, newType)
	return vertex
}

// linkSiblings walks the graph from root over right-edges, wiring any
// archetype whose type is exactly one component short of newType (and a
// subset of it) to vertex, and vertex to any archetype exactly one
// component larger (and a superset of it). Each edge runs from the smaller
// archetype to the bigger one, per the invariant that a right edge (A,c)->B
// always has B.type == A.type ∪ {c}; a pair that is already linked (such as
// leftNeighbor, or a node reached along two paths) is not linked again.
func linkSiblings(node *Archetype, vertex *Archetype, newType Type) {
	target := newType.Len() - 1

	switch {
	case node.typ.Len() > target+2:
		return
	case node.typ.Len() == target+2:
		if node.typ.IsSuperset(newType) {
			if c := diffOne(node.typ, newType); vertex.right.Find(c) == nil {
				makeEdges(vertex, node, c)
			}
		}
		return
	case node.typ.Len() == target && newType.IsSuperset(node.typ):
		if c := diffOne(newType, node.typ); node.right.Find(c) == nil {
			makeEdges(node, vertex, c)
		}
	}

	for i := 0; i < node.right.Len(); i++ {
		_, neighbor := node.right.At(i)
		linkSiblings(neighbor, vertex, newType)
	}
}

// traverseAndCreate reaches (or creates, lazily, one hop at a time) the
// archetype for targetType by walking right-edges whose component lies in
// targetType, falling back to insertVertex whenever the graph doesn't
// already have the next hop. spec.md §4.6.
func traverseAndCreate(root *Archetype, targetType Type, componentSizes *HashMap[Entity, uintptr], typeIndex *HashMap[Type, *Archetype], entityIndex *HashMap[Entity, record]) *Archetype {
	current := root
	accumulated := NewType(targetType.Len())

	for accumulated.Len() < targetType.Len() {
		if c, neighbor, ok := firstUsableRightEdge(current, accumulated, targetType); ok {
			current = neighbor
			accumulated.Add(c)
			continue
		}

		next := nextUnconsumed(accumulated, targetType)
		accumulated.Add(next)
		nextType := accumulated.Copy()
		current = insertVertex(root, current, nextType, next, componentSizes, typeIndex, entityIndex)
	}

	return current
}

// firstUsableRightEdge scans current's right edges for one whose component
// both lies in targetType and hasn't already been consumed.
func firstUsableRightEdge(current *Archetype, accumulated, targetType Type) (Entity, *Archetype, bool) {
	for i := 0; i < current.right.Len(); i++ {
		c, neighbor := current.right.At(i)
		if targetType.IndexOf(c) != -1 && accumulated.IndexOf(c) == -1 {
			return c, neighbor, true
		}
	}
	return noEntity, nil, false
}

// nextUnconsumed returns the first id in targetType not yet present in
// accumulated. targetType is sorted, so this is well-defined and
// deterministic.
func nextUnconsumed(accumulated, targetType Type) Entity {
	for i := 0; i < targetType.Len(); i++ {
		id := targetType.At(i)
		if accumulated.IndexOf(id) == -1 {
			return id
		}
	}
	raiseContract("nextUnconsumed: accumulated already covers targetType")
	return noEntity
}
