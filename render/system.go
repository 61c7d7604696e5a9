package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/scene"
)

// ClearColor is the sky tint painted behind the scene.
var ClearColor = color.RGBA{R: 135, G: 179, B: 217, A: 255}

// maxBatchVertices keeps indices within uint16 range.
const maxBatchVertices = 1<<16 - 1

// Target is the resource holding the image the current frame draws into.
type Target struct {
	Image *ebiten.Image
}

var whiteImage *ebiten.Image

// whiteSubImage is a solid white source so vertex colors are drawn unmodified.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// System renders every mesh from the first camera into the Target image.
type System struct {
	Cameras ecs.Query[struct {
		*scene.Camera
		*scene.Transform
	}]
	Renderables ecs.Query[struct {
		*scene.Transform
		*scene.Mesh
		*scene.StandardMaterial
	}]
	Suns ecs.Query[struct {
		*scene.DirectionalLight
		*scene.Transform
	}]
	Ambient ecs.Singleton[scene.AmbientLight]
	Target  ecs.Singleton[Target]

	// Triangles drawn by the last Execute.
	Drawn int

	objects   []Object
	lighting  Lighting
	triangles []ScreenTriangle
	vertices  []ebiten.Vertex
	indices   []uint16
}

func (s *System) Execute(frame *ecs.UpdateFrame) {
	target := s.Target.Get()
	if target == nil || target.Image == nil {
		return
	}
	screen := target.Image
	screen.Fill(ClearColor)
	s.Drawn = 0

	_, cam, ok := s.Cameras.First()
	if !ok {
		return
	}
	bounds := screen.Bounds()
	view := Viewpoint{
		Camera:    *cam.Camera,
		Transform: *cam.Transform,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
	}

	s.collect()
	s.triangles = BuildFrame(view, s.objects, s.lighting, s.triangles)
	s.draw(screen)
}

func (s *System) collect() {
	s.objects = s.objects[:0]
	for item := range s.Renderables.Values() {
		s.objects = append(s.objects, Object{
			Mesh:      item.Mesh,
			Material:  *item.StandardMaterial,
			Transform: *item.Transform,
		})
	}

	s.lighting.Suns = s.lighting.Suns[:0]
	if ambient := s.Ambient.Get(); ambient != nil {
		s.lighting.Ambient = *ambient
	} else {
		s.lighting.Ambient = scene.AmbientLight{}
	}
	for sun := range s.Suns.Values() {
		s.lighting.Suns = append(s.lighting.Suns, Sun{
			Light:     *sun.DirectionalLight,
			Direction: sun.Transform.Forward(),
		})
	}
}

func (s *System) draw(screen *ebiten.Image) {
	src := whiteSubImage()
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	flush := func() {
		if len(s.indices) == 0 {
			return
		}
		screen.DrawTriangles(s.vertices, s.indices, src, nil)
		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
	}

	for _, tri := range s.triangles {
		if len(s.vertices)+3 > maxBatchVertices {
			flush()
		}
		base := uint16(len(s.vertices))
		for _, p := range tri.Points {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				SrcX:   1,
				SrcY:   1,
				ColorR: tri.Color.R,
				ColorG: tri.Color.G,
				ColorB: tri.Color.B,
				ColorA: 1,
			})
		}
		s.indices = append(s.indices, base, base+1, base+2)
		s.Drawn++
	}
	flush()
}
