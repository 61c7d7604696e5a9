package scene

import (
	"math"

	"github.com/plus3/vaultworn/ecs"
)

// Player marks the cube that the rotation system spins.
// By convention exactly one entity carries it.
type Player struct{}

// Ground marks the ground plane.
type Ground struct{}

// Camera marks the entity the scene is viewed from and holds its projection.
type Camera struct {
	FovY float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// DefaultCamera matches a standard perspective: 45 degree vertical FOV.
func DefaultCamera() Camera {
	return Camera{
		FovY: math.Pi / 4,
		Near: 0.1,
		Far:  1000,
	}
}

// Color is a linear-space RGB color.
type Color struct {
	R, G, B float32
}

// SRGB converts gamma-encoded sRGB components in [0, 1] to linear space.
func SRGB(r, g, b float32) Color {
	return Color{R: srgbToLinear(r), G: srgbToLinear(g), B: srgbToLinear(b)}
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearToSRGB gamma-encodes one linear component, clamped to [0, 1].
func LinearToSRGB(c float32) float32 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 1
	case c <= 0.0031308:
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
}

// StandardMaterial is a physically based surface description.
type StandardMaterial struct {
	BaseColor           Color
	Metallic            float32
	PerceptualRoughness float32
}

// AmbientLight is the global fill light. It is a resource, not an entity.
type AmbientLight struct {
	Color      Color
	Brightness float32
}

// DirectionalLight lights the scene along its transform's forward axis.
type DirectionalLight struct {
	Color          Color
	Illuminance    float32 // lux
	ShadowsEnabled bool
}

// Time is the frame clock resource.
type Time struct {
	Delta   float64 // seconds since the previous frame
	Elapsed float64 // seconds since the first frame
	Frame   uint64
}

// RegisterComponents registers every scene component with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Ground](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[Mesh](registry)
	ecs.RegisterComponent[StandardMaterial](registry)
	ecs.RegisterComponent[DirectionalLight](registry)
}
