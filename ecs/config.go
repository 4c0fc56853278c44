package ecs

import "os"

// Fixed knobs recognized at Registry construction. spec.md §6 leaves no
// runtime-configurable surface -- these are compile-time constants, named
// the way the teacher names its own single-file constant blocks (compare
// genericBlockSize in the retired generic_component_storage.go).
const (
	entityIndexInitialCapacity    = 16
	componentIndexInitialCapacity = 8
	systemIndexInitialCapacity    = 4
	typeIndexInitialCapacity      = 8

	archetypeInitialRowCapacity = 16

	hashMapLoadFactor        = 0.5
	hashMapGrowthFactor      = 2
	hashMapCollisionMax      = 30
	hashMapMinLoadCapacity   = 2
)

// debugChecks gates two debug-only checks: the hash map's collision
// threshold and Step's reentrancy guard. There is no separate move-entity
// bounds check, and the traversal sanity checks (resolveColumns,
// nextUnconsumed) run whether or not it is set. Contract-violation checks
// are always enforced. Reading
// an env var once at init mirrors the teacher's own use of a boolean flag
// (cmd/ecs-stress's -gc-pause-metrics) to gate optional instrumentation,
// without proliferating build tags across the core package.
var debugChecks = os.Getenv("ECS_DEBUG") != ""
