// Package debugui provides an optional Dear ImGui live view over a
// Registry: an entity browser, an archetype viewer, and a performance
// panel. spec.md §2 row 9 calls this out as a conditional collaborator.
// No build tag gates it: it is linked in only when a host imports this
// package, and it never touches the core's structural-mutation path.
//
// Unlike the teacher's own debugui, which renders as an ECS system driven
// by Query[T] fields over Go-struct "ImGui item" components, this package
// has no such hook available: components here are untyped byte blobs, not
// reflectable Go structs, so there is no per-field editor and no
// component-driven render dispatch. Overlay is instead a plain value the
// host application owns and calls Render on once per frame, directly.
package debugui

import (
	"github.com/archkit-go/archkit/ecs"
)

// Overlay bundles the three panels this package renders against one
// Registry.
type Overlay struct {
	Registry *ecs.Registry

	entities    EntityBrowser
	archetypes  ArchetypeViewer
	performance PerformanceStats
	timer       FrameTimer
}

// NewOverlay builds an Overlay for r with its panel caches freshly reset,
// replacing the teacher's SpawnDebugUI/RegisterDebugUIComponents pair (no
// registration step is needed here -- Overlay owns its panel state
// directly rather than storing it as ECS components).
func NewOverlay(r *ecs.Registry) *Overlay {
	return &Overlay{
		Registry:    r,
		performance: NewPerformanceStats(120),
		timer:       NewFrameTimer(),
	}
}

// Render draws every panel. Call once per frame between the host's ImGui
// BeginFrame/EndFrame, mirroring the teacher's debugui_ebiten.ImguiBackend
// usage in its own example.
func (o *Overlay) Render() {
	o.entities.Render(o.Registry)
	clicked := o.archetypes.Render(o.Registry)
	if clicked != nil {
		o.entities.filterType = clicked
	}
	o.performance.Render(o.Registry, o.timer.Tick())
}
