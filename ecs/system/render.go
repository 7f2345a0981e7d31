package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
)

var (
	wheelIdleColor    = color.NRGBA{R: 0x30, G: 0x30, B: 0x36, A: 0xff}
	wheelEngagedColor = color.NRGBA{R: 0xf2, G: 0xb1, B: 0x34, A: 0xff}
	gridColor         = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}
)

const outlineWidth = 2

type RenderSystem struct {
	pixel *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.pixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	b := screen.Bounds()
	view := CameraView(w, float64(b.Dx()), float64(b.Dy()))

	ecs.ForEach(w, component.ArenaComponent.Kind(), func(e ecs.Entity, arena *component.Arena) {
		r.drawArena(screen, view, arena)
	})

	type drawable struct {
		e      ecs.Entity
		layer  int
		render *component.ShapeRender
	}
	var items []drawable
	ecs.ForEach(w, component.ShapeRenderComponent.Kind(), func(e ecs.Entity, sr *component.ShapeRender) {
		items = append(items, drawable{e: e, layer: sr.Layer, render: sr})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		t, ok := ecs.Get(w, it.e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pb, ok := ecs.Get(w, it.e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		if pb.Kind == component.ShapeCircle {
			r.drawCircle(screen, view, t.X, t.Y, pb.Radius, it.render)
		} else {
			r.drawBox(screen, view, *t, pb.Width, pb.Height, it.render)
		}
		if chair, ok := ecs.Get(w, it.e, component.WheelchairComponent.Kind()); ok {
			r.drawWheels(screen, view, *t, pb.Width, pb.Height, chair)
		}
	}
}

func (r *RenderSystem) drawArena(screen *ebiten.Image, view View, arena *component.Arena) {
	if arena.Background != nil {
		screen.Fill(arena.Background)
	}
	if arena.Grid <= 0 {
		return
	}
	for x := 0.0; x <= arena.Width; x += arena.Grid {
		strokeWorldLine(screen, view, x, 0, x, arena.Height, 1, gridColor)
	}
	for y := 0.0; y <= arena.Height; y += arena.Grid {
		strokeWorldLine(screen, view, 0, y, arena.Width, y, 1, gridColor)
	}
}

// drawBox fills a w x h box centered on t, turned by t.Rotation.
func (r *RenderSystem) drawBox(screen *ebiten.Image, view View, t component.Transform, w, h float64, sr *component.ShapeRender) {
	if sr.Fill != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.GeoM.Concat(view.GeoM)
		op.ColorScale.ScaleWithColor(sr.Fill)
		screen.DrawImage(r.pixel, op)
	}
	if sr.Outline != nil {
		corners := boxCorners(t, w, h)
		for i := range corners {
			a := corners[i]
			b := corners[(i+1)%len(corners)]
			strokeWorldLine(screen, view, a[0], a[1], b[0], b[1], outlineWidth, sr.Outline)
		}
	}
}

func (r *RenderSystem) drawCircle(screen *ebiten.Image, view View, x, y, radius float64, sr *component.ShapeRender) {
	cx, cy := view.Apply(x, y)
	rad := float32(radius * view.Scale)
	if sr.Fill != nil {
		vector.FillCircle(screen, float32(cx), float32(cy), rad, sr.Fill, true)
	}
	if sr.Outline != nil {
		vector.StrokeCircle(screen, float32(cx), float32(cy), rad, outlineWidth, sr.Outline, true)
	}
}

// drawWheels draws the two rear wheels on the chair's flanks, lit while held.
// The chair's local +X is forward, so its left flank is local -Y.
func (r *RenderSystem) drawWheels(screen *ebiten.Image, view View, t component.Transform, length, width float64, chair *component.Wheelchair) {
	var left, right bool
	if chair.Controller != nil {
		st := chair.Controller.State()
		left, right = st.LeftEngaged, st.RightEngaged
	}

	wheelLen := length * 0.6
	wheelWidth := width * 0.18
	sin, cos := math.Sincos(t.Rotation)
	for _, wheel := range []struct {
		side    float64
		engaged bool
	}{
		{-1, left},
		{1, right},
	} {
		offset := wheel.side * (width/2 + wheelWidth/2)
		wx := t.X - sin*offset
		wy := t.Y + cos*offset
		clr := wheelIdleColor
		if wheel.engaged {
			clr = wheelEngagedColor
		}
		r.drawBox(screen, view, component.Transform{X: wx, Y: wy, Rotation: t.Rotation}, wheelLen, wheelWidth, &component.ShapeRender{Fill: clr})
	}
}

func boxCorners(t component.Transform, w, h float64) [4][2]float64 {
	sin, cos := math.Sincos(t.Rotation)
	local := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	var out [4][2]float64
	for i, p := range local {
		out[i] = [2]float64{
			t.X + p[0]*cos - p[1]*sin,
			t.Y + p[0]*sin + p[1]*cos,
		}
	}
	return out
}

func strokeWorldLine(screen *ebiten.Image, view View, x1, y1, x2, y2 float64, width float32, clr color.Color) {
	sx1, sy1 := view.Apply(x1, y1)
	sx2, sy2 := view.Apply(x2, y2)
	vector.StrokeLine(screen, float32(sx1), float32(sy1), float32(sx2), float32(sy2), width, clr, true)
}
