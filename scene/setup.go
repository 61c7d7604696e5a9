package scene

import "github.com/plus3/vaultworn/ecs"

// SetupLighting adds the ambient light resource and the sun.
type SetupLighting struct{}

func (s *SetupLighting) Execute(frame *ecs.UpdateFrame) {
	frame.Storage.AddSingleton(AmbientLight{
		Color:      SRGB(0.9, 0.9, 1.0),
		Brightness: 300,
	})

	frame.Commands.Spawn(
		DirectionalLight{
			Color:          SRGB(1.0, 0.95, 0.8),
			Illuminance:    10000,
			ShadowsEnabled: true,
		},
		NewTransform(4, 8, 4).LookingAt(Origin, AxisY),
	)
}

// SetupCamera places the scene camera above and behind the origin.
type SetupCamera struct{}

func (s *SetupCamera) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		DefaultCamera(),
		NewTransform(0, 5, 10).LookingAt(Origin, AxisY),
	)
}

// SetupPlayer spawns the player cube resting on the ground.
type SetupPlayer struct{}

func (s *SetupPlayer) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Player{},
		Cuboid(1, 1, 1),
		StandardMaterial{
			BaseColor:           SRGB(0.8, 0.2, 0.2),
			Metallic:            0.1,
			PerceptualRoughness: 0.9,
		},
		NewTransform(0, 0.5, 0),
	)
}

// GroundSize is the edge length of the square ground plane.
const GroundSize = 20

// groundSubdivisions keeps ground quads small enough that near-plane
// rejection in the renderer drops little of the visible floor.
const groundSubdivisions = 10

// SetupGround spawns the ground plane.
type SetupGround struct{}

func (s *SetupGround) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(
		Ground{},
		Plane(GroundSize, GroundSize, groundSubdivisions),
		StandardMaterial{
			BaseColor:           SRGB(0.3, 0.5, 0.3),
			Metallic:            0,
			PerceptualRoughness: 1,
		},
		NewTransform(0, 0, 0),
	)
}
