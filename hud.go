package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/wheelchair/common"
	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/ecs/component"
)

const hudLineSpacing = 16

var (
	hudColor    = color.NRGBA{R: 0xe6, G: 0xec, B: 0xf5, A: 0xff}
	hudCapColor = color.NRGBA{R: 0xf2, G: 0xb1, B: 0x34, A: 0xff}
)

// HUD shows which wheels are held and how close the chair is to its caps.
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, w *ecs.World, source string) {
	_, chair, ok := ecs.First(w, component.WheelchairComponent.Kind())
	if !ok {
		return
	}
	lines, capped := hudLines(chair, source)

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, float64(common.BaseHeight-10-hudLineSpacing*len(lines)))
	op.LineSpacing = hudLineSpacing
	clr := hudColor
	if capped {
		clr = hudCapColor
	}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, strings.Join(lines, "\n"), h.face, op)
}

// hudLines reports engagement and speeds against the caps. capped is true
// while a cap is currently blocking pushes.
func hudLines(chair *component.Wheelchair, source string) ([]string, bool) {
	left, right := "-", "-"
	speed, turn := 0.0, 0.0
	if ctrl := chair.Controller; ctrl != nil {
		st := ctrl.State()
		if st.LeftEngaged {
			left = "L"
		}
		if st.RightEngaged {
			right = "R"
		}
		if body := ctrl.Body(); body != nil {
			speed = body.Velocity().Length()
			turn = body.AngularVelocity()
		}
	}

	t := chair.Tuning
	capped := speed > t.MaxSpeed || math.Abs(turn) >= t.MaxTurnSpeed
	return []string{
		fmt.Sprintf("wheels [%s %s]  input: %s", left, right, source),
		fmt.Sprintf("speed %.2f / %.2f m/s", speed, t.MaxSpeed),
		fmt.Sprintf("turn  %.2f / %.2f rad/s", turn, t.MaxTurnSpeed),
		"hold mouse buttons, scroll to push  [Esc] pause  [R] reset",
	}, capped
}
