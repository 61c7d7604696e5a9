// Package render draws the scene with a small software 3D pipeline:
// meshes are projected on the CPU and rasterized as flat-shaded triangles
// through ebiten.
package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vaultworn/scene"
)

// Exposure references: an ambient brightness or sun illuminance at these
// values lights a white surface fully.
const (
	ambientReference = 1000
	sunReference     = 10000
)

// Viewpoint is the camera a frame is rendered from.
type Viewpoint struct {
	Camera    scene.Camera
	Transform scene.Transform
	Width     int
	Height    int
}

// Object is one renderable entity.
type Object struct {
	Mesh      *scene.Mesh
	Material  scene.StandardMaterial
	Transform scene.Transform
}

// Sun is a directional light with its world-space travel direction.
type Sun struct {
	Light     scene.DirectionalLight
	Direction mgl32.Vec3
}

// Lighting is everything that lights a frame.
type Lighting struct {
	Ambient scene.AmbientLight
	Suns    []Sun
}

// ScreenTriangle is a projected, shaded triangle in pixel coordinates.
// Color is gamma-encoded sRGB in [0, 1].
type ScreenTriangle struct {
	Points [3]mgl32.Vec2
	Depth  float32
	Color  scene.Color
}

// BuildFrame projects and shades every visible triangle and returns them
// ordered far to near, ready to paint in order. Triangles facing away from
// the camera, crossing the near plane or lying beyond the far plane are dropped.
func BuildFrame(view Viewpoint, objects []Object, lighting Lighting, out []ScreenTriangle) []ScreenTriangle {
	out = out[:0]
	if view.Width <= 0 || view.Height <= 0 {
		return out
	}

	cam := view.Camera
	aspect := float32(view.Width) / float32(view.Height)
	viewProj := mgl32.Perspective(cam.FovY, aspect, cam.Near, cam.Far).
		Mul4(view.Transform.Matrix().Inv())
	eye := view.Transform.Translation
	w, h := float32(view.Width), float32(view.Height)

	for _, obj := range objects {
		if obj.Mesh == nil {
			continue
		}
		model := obj.Transform.Matrix()

	triangles:
		for _, tri := range obj.Mesh.Triangles {
			world := [3]mgl32.Vec3{
				model.Mul4x1(tri.A.Vec4(1)).Vec3(),
				model.Mul4x1(tri.B.Vec4(1)).Vec3(),
				model.Mul4x1(tri.C.Vec4(1)).Vec3(),
			}
			normal := obj.Transform.Rotation.Rotate(tri.Normal).Normalize()
			if normal.Dot(eye.Sub(world[0])) <= 0 {
				continue
			}

			var st ScreenTriangle
			for i, p := range world {
				clip := viewProj.Mul4x1(p.Vec4(1))
				if clip.W() < cam.Near || clip.Z() > clip.W() {
					continue triangles
				}
				ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
				st.Points[i] = mgl32.Vec2{(ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h}
				st.Depth += clip.W() / 3
			}
			if offscreen(st.Points, w, h) {
				continue
			}

			centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
			lit := Shade(normal, eye.Sub(centroid).Normalize(), obj.Material, lighting)
			st.Color = scene.Color{
				R: scene.LinearToSRGB(lit.R),
				G: scene.LinearToSRGB(lit.G),
				B: scene.LinearToSRGB(lit.B),
			}
			out = append(out, st)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}

// offscreen reports whether all three points lie beyond the same screen edge.
func offscreen(p [3]mgl32.Vec2, w, h float32) bool {
	return (p[0].X() < 0 && p[1].X() < 0 && p[2].X() < 0) ||
		(p[0].X() > w && p[1].X() > w && p[2].X() > w) ||
		(p[0].Y() < 0 && p[1].Y() < 0 && p[2].Y() < 0) ||
		(p[0].Y() > h && p[1].Y() > h && p[2].Y() > h)
}

// Shade returns the linear color of a surface with unit normal n seen along
// unit vector toEye: ambient and Lambert diffuse weighted by (1 - metallic)
// plus a Blinn-Phong highlight that sharpens as roughness drops.
func Shade(n, toEye mgl32.Vec3, mat scene.StandardMaterial, lighting Lighting) scene.Color {
	base := mat.BaseColor
	diffuseWeight := 1 - clamp01(mat.Metallic)
	rough := clamp01(mat.PerceptualRoughness)

	amb := lighting.Ambient.Brightness / ambientReference
	out := scene.Color{
		R: base.R * lighting.Ambient.Color.R * amb,
		G: base.G * lighting.Ambient.Color.G * amb,
		B: base.B * lighting.Ambient.Color.B * amb,
	}

	// Reflectance at normal incidence: 4% for dielectrics, base color for metals.
	f0 := scene.Color{
		R: lerp(0.04, base.R, mat.Metallic),
		G: lerp(0.04, base.G, mat.Metallic),
		B: lerp(0.04, base.B, mat.Metallic),
	}
	shininess := float64(2/(rough*rough*rough*rough+1e-4) - 2)
	specStrength := (1 - rough) * (1 - rough)

	for _, sun := range lighting.Suns {
		toLight := sun.Direction.Mul(-1).Normalize()
		ndl := n.Dot(toLight)
		if ndl <= 0 {
			continue
		}
		intensity := sun.Light.Illuminance / sunReference
		c := sun.Light.Color

		diffuse := ndl * intensity * diffuseWeight
		out.R += base.R * c.R * diffuse
		out.G += base.G * c.G * diffuse
		out.B += base.B * c.B * diffuse

		if specStrength > 0 && shininess > 0 {
			half := toLight.Add(toEye).Normalize()
			ndh := max(n.Dot(half), 0)
			spec := float32(math.Pow(float64(ndh), shininess)) * specStrength * intensity * ndl
			out.R += f0.R * c.R * spec
			out.G += f0.G * c.G * spec
			out.B += f0.B * c.B * spec
		}
	}

	return out
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
