package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/archkit-go/archkit/ecs"
)

// PerformanceStats renders a rolling frame-time graph alongside a
// per-archetype row-count breakdown. Grounded on the teacher's
// performance_stats.go, with storage.CollectStats() (a method this module
// has no equivalent of) replaced by direct reads of Registry.Archetypes/
// ArchetypeCount/SystemCount, and the singleton-count line dropped -- this
// module has no Singleton type.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats allocates a stats panel retaining historyFrames
// samples of frame time.
func NewPerformanceStats(historyFrames int) PerformanceStats {
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the performance window. deltaTime is the duration of the
// frame that just elapsed, in seconds.
func (ps *PerformanceStats) Render(r *ecs.Registry, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	archetypes := r.Archetypes()
	totalEntities := 0
	for _, a := range archetypes {
		totalEntities += a.Count()
	}

	imgui.Text(fmt.Sprintf("Total Entities: %d", totalEntities))
	imgui.Text(fmt.Sprintf("Archetypes: %d", r.ArchetypeCount()))
	imgui.Text(fmt.Sprintf("Systems: %d", r.SystemCount()))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, a := range archetypes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(a.Type().String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", a.Count()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer tracks wall-clock time between successive frames.
type FrameTimer struct {
	last time.Time
}

// NewFrameTimer starts a timer anchored to the current time.
func NewFrameTimer() FrameTimer {
	return FrameTimer{last: time.Now()}
}

// Tick returns the elapsed time since the previous Tick (or since the
// timer was created, on the first call), in seconds.
func (ft *FrameTimer) Tick() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}
