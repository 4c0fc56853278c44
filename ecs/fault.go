package ecs

import (
	"fmt"
	"runtime"
)

// FaultKind classifies the fatal conditions spec.md §7 enumerates. Every one
// of them aborts the process; there is no recoverable error channel in the
// core's public surface.
type FaultKind int

const (
	// FaultOOM marks an allocation failure.
	FaultOOM FaultKind = iota
	// FaultBounds marks an index-out-of-bounds access.
	FaultBounds
	// FaultLookup marks an expected-present key absent from an index.
	FaultLookup
	// FaultCollision marks a probe sequence exceeding the hash map's
	// collision threshold.
	FaultCollision
	// FaultContract marks a contract violation: attaching to an unknown
	// entity, re-creating an archetype that already exists, reentrant
	// structural mutation during step, and the like.
	FaultContract
)

func (k FaultKind) String() string {
	switch k {
	case FaultOOM:
		return "out-of-memory"
	case FaultBounds:
		return "index-out-of-bounds"
	case FaultLookup:
		return "failed-lookup"
	case FaultCollision:
		return "too-many-hash-collisions"
	case FaultContract:
		return "contract-violation"
	default:
		return "unknown-fault"
	}
}

// Fault is the panic value every fatal condition in this package raises.
// A host that wraps a call into the registry in recover() gets a structured
// diagnosis instead of a bare string -- spec.md still treats every Fault as
// process-fatal; recover is for crash containment and reporting, not retry.
type Fault struct {
	Kind FaultKind
	File string
	Line int
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d)", f.Kind, f.Msg, f.File, f.Line)
}

func raise(kind FaultKind, format string, args ...any) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	panic(&Fault{
		Kind: kind,
		File: file,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	})
}

func raiseOOM(format string, args ...any)       { raise(FaultOOM, format, args...) }
func raiseBounds(format string, args ...any)    { raise(FaultBounds, format, args...) }
func raiseLookup(format string, args ...any)    { raise(FaultLookup, format, args...) }
func raiseCollision(format string, args ...any) { raise(FaultCollision, format, args...) }
func raiseContract(format string, args ...any)  { raise(FaultContract, format, args...) }
