// Package ebiten binds the Dear ImGui ebiten backend to the game window.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the ebiten Dear ImGui backend. It is stored as an ECS
// singleton so the game loop can bracket each frame with BeginFrame/EndFrame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend opens the game window through the ImGui backend so both
// share one ebiten window, then applies the resizing mode.
func NewImguiBackend(title string, width, height int, resizable bool) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ImguiBackend{EbitenBackend: backend}
}
