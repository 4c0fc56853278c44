// Command ecs-stress drives a Registry through a configurable number of
// synthetic components and systems over a population of entities given
// random component sets up front (no entities are created or changed
// during the timed run), and reports timing and memory statistics at the
// end of the run. Grounded on
// the teacher's cmd/ecs-stress: same flag surface and Report shape, with
// the teacher's external component/system generator (not present in this
// module) replaced by a small synthetic workload built directly against
// Registry/Scheduler.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/archkit-go/archkit/ecs"
)

const componentSize = 8

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	componentCount := flag.Int("components", 32, "The number of distinct synthetic components to register.")
	systemCount := flag.Int("systems", 16, "The number of synthetic systems to register.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	registry := ecs.NewRegistry()
	components := registerSyntheticComponents(registry, *componentCount)
	registerSyntheticSystems(registry, components, *systemCount)
	scheduler := ecs.NewScheduler(registry)

	log.Printf("Populating registry with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(registry, components, 1+rand.Intn(5))
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     *componentCount,
		Systems:        *systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once()
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Snapshot(registry)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// registerSyntheticComponents registers n fixed-size components and
// returns their ids for spawnRandomEntity and registerSyntheticSystems to
// draw from.
func registerSyntheticComponents(r *ecs.Registry, n int) []ecs.ComponentID {
	ids := make([]ecs.ComponentID, n)
	for i := range ids {
		ids[i] = r.Component(componentSize)
	}
	return ids
}

// registerSyntheticSystems registers n systems, each bound to a single
// random component from components and doing a small amount of
// representative per-row work (incrementing the component's first byte).
func registerSyntheticSystems(r *ecs.Registry, components []ecs.ComponentID, n int) {
	for i := 0; i < n; i++ {
		target := components[rand.Intn(len(components))]
		sig := ecs.NewSignature(ecs.Entity(target))
		r.System(sig, func(v ecs.View, row int) {
			b := (*byte)(v.At(row, 0))
			*b++
		})
	}
}

// spawnRandomEntity creates one entity carrying numComponents distinct,
// randomly chosen components from the registered pool.
func spawnRandomEntity(r *ecs.Registry, components []ecs.ComponentID, numComponents int) {
	if numComponents > len(components) {
		numComponents = len(components)
	}

	e := r.Entity()
	chosen := make(map[ecs.ComponentID]bool, numComponents)
	for len(chosen) < numComponents {
		c := components[rand.Intn(len(components))]
		if chosen[c] {
			continue
		}
		chosen[c] = true
		r.Attach(e, c)
		r.Set(e, c, make([]byte, componentSize))
	}
}
