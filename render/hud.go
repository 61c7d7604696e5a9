package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/scene"
)

// HUDSystem prints frame rate, camera position and controls in the corner.
// It must run after System so the text lands on top.
type HUDSystem struct {
	Cameras ecs.Query[struct {
		*scene.Camera
		*scene.Transform
	}]
	Time   ecs.Singleton[scene.Time]
	Target ecs.Singleton[Target]
}

func (s *HUDSystem) Execute(frame *ecs.UpdateFrame) {
	target := s.Target.Get()
	if target == nil || target.Image == nil {
		return
	}

	var elapsed float64
	if t := s.Time.Get(); t != nil {
		elapsed = t.Elapsed
	}

	text := fmt.Sprintf("FPS %.0f  t=%.1fs\nWASD: move camera", ebiten.ActualFPS(), elapsed)
	if _, cam, ok := s.Cameras.First(); ok {
		p := cam.Transform.Translation
		text += fmt.Sprintf("\ncamera (%.2f, %.2f, %.2f)", p.X(), p.Y(), p.Z())
	}
	ebitenutil.DebugPrint(target.Image, text)
}
