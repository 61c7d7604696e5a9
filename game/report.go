package game

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vaultworn/ecs"
)

// Report summarizes a headless run.
type Report struct {
	// Configuration
	Hz    int
	Ticks int

	// Results
	Frames         int
	Wall           time.Duration
	Elapsed        float64
	FrameTime      Stats
	Scheduler      *ecs.SchedulerStats
	Storage        ecs.StorageStats
	PlayerYaw      float64 // degrees
	CameraPosition mgl32.Vec3
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

const reportTemplate = `# Vaultworn Headless Run

## Configuration
- **Rate:** {{.Hz}} Hz
- **Tick Limit:** {{if .Ticks}}{{.Ticks}}{{else}}none{{end}}

## Results
- **Frames:** {{.Frames}}
- **Wall Time:** {{.Wall}}
- **Simulated Time:** {{printf "%.3f" .Elapsed}}s
- **Update Time (Frame):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Scene
- **Entities:** {{.Storage.TotalEntityCount}} in {{.Storage.ArchetypeCount}} archetypes
- **Player Yaw:** {{printf "%.2f" .PlayerYaw}}°
- **Camera Position:** {{vec .CameraPosition}}

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"vec": func(v mgl32.Vec3) string {
			return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
