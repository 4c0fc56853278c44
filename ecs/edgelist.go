package ecs

// edge is a (component, neighbor archetype) pair. Left edges at an
// archetype labeled c point at typ \ {c}; right edges at typ ∪ {c}.
type edge struct {
	component Entity
	neighbor  *Archetype
}

// EdgeList is the append-mostly bag of edges attached to one side (left or
// right) of an archetype vertex. Edge lists stay small -- at most the
// component count of the archetype -- so Find is a plain linear scan,
// matching spec.md §4.4.
type EdgeList struct {
	edges []edge
}

// Add appends an edge, doubling capacity as needed (append already does
// this; the explicit type exists so the growth/shrink discipline spec.md
// describes is named, not implicit in a bare slice).
func (l *EdgeList) Add(component Entity, neighbor *Archetype) {
	l.edges = append(l.edges, edge{component: component, neighbor: neighbor})
}

// Remove deletes the edge labeled component, if any, via swap-with-last.
// spec.md §9 flags a source variant that decrements count inside an
// indexing expression and can leave a stale tail slot; this clears the
// vacated slot explicitly after the swap.
func (l *EdgeList) Remove(component Entity) {
	for i := range l.edges {
		if l.edges[i].component == component {
			last := len(l.edges) - 1
			l.edges[i] = l.edges[last]
			l.edges[last] = edge{}
			l.edges = l.edges[:last]
			return
		}
	}
}

// Find returns the neighbor archetype reachable via component, or nil.
func (l *EdgeList) Find(component Entity) *Archetype {
	for i := range l.edges {
		if l.edges[i].component == component {
			return l.edges[i].neighbor
		}
	}
	return nil
}

// Len returns the number of edges.
func (l *EdgeList) Len() int { return len(l.edges) }

// At returns the edge at insertion-order position i.
func (l *EdgeList) At(i int) (component Entity, neighbor *Archetype) {
	e := l.edges[i]
	return e.component, e.neighbor
}
