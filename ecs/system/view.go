package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/wheelchair/common"
	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
)

// View maps world meters to screen pixels.
type View struct {
	GeoM  ebiten.GeoM
	Scale float64
}

// NewView centers (camX, camY) on a sw x sh screen and turns the world by
// -yaw-π/2, so a body facing yaw points up the screen.
func NewView(camX, camY, yaw, zoom, sw, sh float64) View {
	if zoom <= 0 {
		zoom = 1
	}
	scale := common.PixelsPerMeter * zoom

	var g ebiten.GeoM
	g.Translate(-camX, -camY)
	g.Rotate(-yaw - math.Pi/2)
	g.Scale(scale, scale)
	g.Translate(sw/2, sh/2)
	return View{GeoM: g, Scale: scale}
}

// CameraView builds the view from the first camera in w. Without a camera
// the world is drawn unrotated from its origin.
func CameraView(w *ecs.World, sw, sh float64) View {
	e, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		var g ebiten.GeoM
		g.Scale(common.PixelsPerMeter, common.PixelsPerMeter)
		return View{GeoM: g, Scale: common.PixelsPerMeter}
	}
	camX, camY := 0.0, 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		camX, camY = t.X, t.Y
	}
	return NewView(camX, camY, cam.Yaw, cam.Zoom, sw, sh)
}

func (v View) Apply(x, y float64) (float64, float64) {
	return v.GeoM.Apply(x, y)
}
