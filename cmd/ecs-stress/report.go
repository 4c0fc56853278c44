package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/archkit-go/archkit/ecs"
)

// ArchetypeStat is one row of the archetype breakdown: how many components
// an archetype carries and how many entities ended up in it, so a reader
// can see whether the synthetic workload actually spread entities across
// many archetypes or collapsed them into a few.
type ArchetypeStat struct {
	Type     string
	Columns  int
	Entities int
}

// archetypeStats snapshots r's current archetypes, sorted by entity count
// descending so the busiest archetypes sort to the top of the report.
func archetypeStats(r *ecs.Registry) []ArchetypeStat {
	archetypes := r.Archetypes()
	stats := make([]ArchetypeStat, 0, len(archetypes))
	for _, a := range archetypes {
		stats = append(stats, ArchetypeStat{
			Type:     a.Type().String(),
			Columns:  a.Type().Len(),
			Entities: a.Count(),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Entities > stats[j].Entities
	})
	return stats
}

// Report summarizes one stress run: the synthetic workload it drove, the
// timing/memory numbers that came out of it, and a snapshot of how entities
// ended up distributed across the registry's archetypes.
type Report struct {
	// Configuration
	Duration   time.Duration
	Entities   int
	Components int
	Systems    int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	ArchetypeCount int
	FinalSystems   int
	Archetypes     []ArchetypeStat
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Snapshot records the run's final archetype/system shape from r, for
// display alongside the timing and memory numbers.
func (r *Report) Snapshot(reg *ecs.Registry) {
	r.ArchetypeCount = reg.ArchetypeCount()
	r.FinalSystems = reg.SystemCount()
	r.Archetypes = archetypeStats(reg)
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Synthetic Components:** {{.Components}}
- **Synthetic Systems:** {{.Systems}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Archetype Breakdown
- **Distinct Archetypes:** {{.ArchetypeCount}}
- **Registered Systems:** {{.FinalSystems}}
{{range .Archetypes}}- {{.Type}}: {{.Columns}} component(s), {{.Entities}} entitie(s)
{{end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
