package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vaultworn/render"
	"github.com/plus3/vaultworn/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultView() render.Viewpoint {
	return render.Viewpoint{
		Camera:    scene.DefaultCamera(),
		Transform: scene.NewTransform(0, 5, 10).LookingAt(scene.Origin, scene.AxisY),
		Width:     1280,
		Height:    720,
	}
}

func defaultLighting() render.Lighting {
	sun := scene.NewTransform(4, 8, 4).LookingAt(scene.Origin, scene.AxisY)
	return render.Lighting{
		Ambient: scene.AmbientLight{Color: scene.SRGB(0.9, 0.9, 1.0), Brightness: 300},
		Suns: []render.Sun{{
			Light:     scene.DirectionalLight{Color: scene.SRGB(1, 0.95, 0.8), Illuminance: 10000},
			Direction: sun.Forward(),
		}},
	}
}

func cube() render.Object {
	mesh := scene.Cuboid(1, 1, 1)
	return render.Object{
		Mesh:      &mesh,
		Material:  scene.StandardMaterial{BaseColor: scene.SRGB(0.8, 0.2, 0.2), Metallic: 0.1, PerceptualRoughness: 0.9},
		Transform: scene.NewTransform(0, 0.5, 0),
	}
}

func TestBuildFrameCubeIsCentered(t *testing.T) {
	tris := render.BuildFrame(defaultView(), []render.Object{cube()}, defaultLighting(), nil)

	// Front, top and nothing else face a camera above and in front.
	require.Len(t, tris, 4)
	for _, tri := range tris {
		for _, p := range tri.Points {
			assert.InDelta(t, 640, p.X(), 80, "cube straddles the horizontal center")
			assert.InDelta(t, 360, p.Y(), 120, "cube sits near the vertical center")
		}
	}
}

func TestBuildFrameCullsBackFaces(t *testing.T) {
	view := defaultView()
	view.Transform = scene.NewTransform(0, 0.5, 5).LookingAt(mgl32.Vec3{0, 0.5, 0}, scene.AxisY)

	tris := render.BuildFrame(view, []render.Object{cube()}, defaultLighting(), nil)
	assert.Len(t, tris, 2, "looking straight at one face shows only that face")
}

func TestBuildFrameSortsFarToNear(t *testing.T) {
	ground := scene.Plane(20, 20, 10)
	objects := []render.Object{
		cube(),
		{Mesh: &ground, Material: scene.StandardMaterial{BaseColor: scene.SRGB(0.3, 0.5, 0.3), PerceptualRoughness: 1}, Transform: scene.NewTransform(0, 0, 0)},
	}

	tris := render.BuildFrame(defaultView(), objects, defaultLighting(), nil)
	require.NotEmpty(t, tris)
	for i := 1; i < len(tris); i++ {
		assert.GreaterOrEqual(t, tris[i-1].Depth, tris[i].Depth)
	}
}

func TestBuildFrameRejectsBehindCamera(t *testing.T) {
	view := defaultView()
	view.Transform = scene.NewTransform(0, 0.5, -5).LookingAt(mgl32.Vec3{0, 0.5, -10}, scene.AxisY)

	assert.Empty(t, render.BuildFrame(view, []render.Object{cube()}, defaultLighting(), nil))
}

func TestBuildFrameEmptyViewport(t *testing.T) {
	view := defaultView()
	view.Height = 0
	assert.Empty(t, render.BuildFrame(view, []render.Object{cube()}, defaultLighting(), nil))
	assert.Empty(t, render.BuildFrame(defaultView(), []render.Object{{}}, defaultLighting(), nil))
}

func TestShadeSunlitBrighterThanShadowed(t *testing.T) {
	mat := scene.StandardMaterial{BaseColor: scene.SRGB(0.8, 0.2, 0.2), Metallic: 0.1, PerceptualRoughness: 0.9}
	lighting := defaultLighting()
	toEye := mgl32.Vec3{0, 5, 10}.Normalize()

	top := render.Shade(mgl32.Vec3{0, 1, 0}, toEye, mat, lighting)
	bottom := render.Shade(mgl32.Vec3{0, -1, 0}, toEye, mat, lighting)

	assert.Greater(t, top.R, bottom.R)
	assert.Greater(t, bottom.R, float32(0), "ambient still lights faces away from the sun")
	assert.Greater(t, top.R, top.G, "red material stays red")
}

func TestShadeAmbientOnly(t *testing.T) {
	mat := scene.StandardMaterial{BaseColor: scene.Color{R: 1, G: 1, B: 1}, PerceptualRoughness: 1}
	lighting := render.Lighting{Ambient: scene.AmbientLight{Color: scene.Color{R: 1, G: 1, B: 1}, Brightness: 500}}

	c := render.Shade(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}, mat, lighting)
	assert.InDelta(t, 0.5, c.R, 1e-6)
	assert.InDelta(t, 0.5, c.G, 1e-6)
	assert.InDelta(t, 0.5, c.B, 1e-6)
}

func TestShadeSmoothSurfaceHasHighlight(t *testing.T) {
	lighting := render.Lighting{Suns: []render.Sun{{
		Light:     scene.DirectionalLight{Color: scene.Color{R: 1, G: 1, B: 1}, Illuminance: 10000},
		Direction: mgl32.Vec3{0, -1, 0},
	}}}
	n := mgl32.Vec3{0, 1, 0}

	smooth := render.Shade(n, n, scene.StandardMaterial{PerceptualRoughness: 0.2}, lighting)
	rough := render.Shade(n, n, scene.StandardMaterial{PerceptualRoughness: 1}, lighting)

	assert.Greater(t, smooth.R, rough.R)
	assert.Zero(t, rough.R, "black fully rough surface reflects nothing")
}
