package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/scene"
)

// PerformanceWindow plots frame times and lists per-system timings.
type PerformanceWindow struct {
	scheduler    *ecs.Scheduler
	time         *ecs.Singleton[scene.Time]
	frameHistory []float32
	frameIndex   int
	lastFrame    uint64
}

func NewPerformanceWindow(scheduler *ecs.Scheduler, historyFrames int) *PerformanceWindow {
	return &PerformanceWindow{
		scheduler:    scheduler,
		time:         ecs.NewSingleton[scene.Time](scheduler.Storage()),
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record pushes the latest frame time into the history, once per frame.
func (p *PerformanceWindow) Record() {
	t := p.time.Get()
	if t == nil || t.Frame == p.lastFrame {
		return
	}
	p.lastFrame = t.Frame
	p.frameHistory[p.frameIndex] = float32(t.Delta * 1000)
	p.frameIndex = (p.frameIndex + 1) % len(p.frameHistory)
}

// AverageFrameTime is the mean of the recorded history in milliseconds.
func (p *PerformanceWindow) AverageFrameTime() float32 {
	var total float32
	for _, ft := range p.frameHistory {
		total += ft
	}
	return total / float32(len(p.frameHistory))
}

func (p *PerformanceWindow) Render() {
	p.Record()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 60), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := p.AverageFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	storageStats := p.scheduler.Storage().CollectStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Entities: %d", storageStats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", storageStats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", storageStats.SingletonCount))

	stats := p.scheduler.GetStats()
	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStats", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}
