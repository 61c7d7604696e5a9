package scene

import "github.com/go-gl/mathgl/mgl32"

// Triangle is one face in local space. Vertices wind counter-clockwise when
// seen from the side Normal points to.
type Triangle struct {
	A, B, C mgl32.Vec3
	Normal  mgl32.Vec3
}

// Mesh is a triangle list in local space.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// Cuboid returns an axis-aligned box centered on the origin.
func Cuboid(x, y, z float32) Mesh {
	hx, hy, hz := x/2, y/2, z/2

	type face struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}

	mesh := Mesh{Name: "cuboid", Triangles: make([]Triangle, 0, 12)}
	for _, f := range faces {
		mesh.Triangles = append(mesh.Triangles, quad(f.corners, f.normal)...)
	}
	return mesh
}

// Plane returns a flat, upward-facing plane on y=0 centered on the origin,
// split into subdivisions x subdivisions quads. subdivisions below 1 is treated as 1.
func Plane(width, depth float32, subdivisions int) Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}
	up := mgl32.Vec3{0, 1, 0}
	stepX := width / float32(subdivisions)
	stepZ := depth / float32(subdivisions)
	x0, z0 := -width/2, -depth/2

	mesh := Mesh{Name: "plane", Triangles: make([]Triangle, 0, 2*subdivisions*subdivisions)}
	for i := range subdivisions {
		for j := range subdivisions {
			xa, xb := x0+float32(i)*stepX, x0+float32(i+1)*stepX
			za, zb := z0+float32(j)*stepZ, z0+float32(j+1)*stepZ
			mesh.Triangles = append(mesh.Triangles, quad([4]mgl32.Vec3{
				{xa, 0, zb}, {xb, 0, zb}, {xb, 0, za}, {xa, 0, za},
			}, up)...)
		}
	}
	return mesh
}

// quad splits four counter-clockwise corners into two triangles.
func quad(c [4]mgl32.Vec3, normal mgl32.Vec3) []Triangle {
	return []Triangle{
		{A: c[0], B: c[1], C: c[2], Normal: normal},
		{A: c[0], B: c[2], C: c[3], Normal: normal},
	}
}
