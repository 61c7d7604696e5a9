package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/scene"
)

// SceneInspector lists the tagged scene entities with their transforms.
type SceneInspector struct {
	storage *ecs.Storage
	players *ecs.View[struct {
		ecs.EntityId
		*scene.Player
		*scene.Transform
	}]
	ground *ecs.View[struct {
		ecs.EntityId
		*scene.Ground
		*scene.Transform
	}]
	cameras *ecs.View[struct {
		ecs.EntityId
		*scene.Camera
		*scene.Transform
	}]
}

func NewSceneInspector(storage *ecs.Storage) *SceneInspector {
	return &SceneInspector{
		storage: storage,
		players: ecs.NewView[struct {
			ecs.EntityId
			*scene.Player
			*scene.Transform
		}](storage),
		ground: ecs.NewView[struct {
			ecs.EntityId
			*scene.Ground
			*scene.Transform
		}](storage),
		cameras: ecs.NewView[struct {
			ecs.EntityId
			*scene.Camera
			*scene.Transform
		}](storage),
	}
}

// Row is one line of the inspector table.
type Row struct {
	Kind      string
	Entity    ecs.EntityId
	Transform scene.Transform
}

// Rows collects players, ground and cameras in that order.
func (s *SceneInspector) Rows() []Row {
	var rows []Row
	for item := range s.players.Values() {
		rows = append(rows, Row{Kind: "player", Entity: item.EntityId, Transform: *item.Transform})
	}
	for item := range s.ground.Values() {
		rows = append(rows, Row{Kind: "ground", Entity: item.EntityId, Transform: *item.Transform})
	}
	for item := range s.cameras.Values() {
		rows = append(rows, Row{Kind: "camera", Entity: item.EntityId, Transform: *item.Transform})
	}
	return rows
}

func (s *SceneInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 390), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 160), imgui.CondOnce)
	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SceneEntities", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Yaw")
		imgui.TableHeadersRow()

		for _, row := range s.Rows() {
			p := row.Transform.Translation
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Kind)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(row.Entity)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f, %.2f, %.2f", p.X(), p.Y(), p.Z()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f°", row.Transform.Heading()*180/math.Pi))
		}
		imgui.EndTable()
	}

	imgui.End()
}
