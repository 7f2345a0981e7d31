package wheelchair

import (
	"math"
	"testing"

	"github.com/milk9111/wheelchair/common"
)

func TestFollowYawConvergesWithoutOvershoot(t *testing.T) {
	const dt = 1.0 / 60
	cases := []struct {
		name     string
		cam      float64
		chair    float64
		smooth   float64
		frames   int
		wantNear bool
	}{
		{"small_turn", 0, 0.8, 5, 240, true},
		{"across_seam", math.Pi - 0.2, -math.Pi + 0.2, 5, 240, true},
		{"negative", 1, -2, 5, 240, true},
		{"factor_one", 0.3, -0.4, 60, 1, true},
		{"zero_smooth_holds", 0.3, 1.2, 0, 60, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := c.cam
			prev := math.Abs(common.WrapAngle(c.chair - cam))
			for i := 0; i < c.frames; i++ {
				cam = FollowYaw(cam, c.chair, dt, c.smooth)
				diff := common.WrapAngle(c.chair - cam)
				if math.Abs(diff) > prev+1e-12 {
					t.Fatalf("frame %d: distance grew from %v to %v", i, prev, math.Abs(diff))
				}
				// the sign of the remaining error never flips
				start := common.WrapAngle(c.chair - c.cam)
				if diff*start < -1e-12 {
					t.Fatalf("frame %d: overshot target (start %v, now %v)", i, start, diff)
				}
				prev = math.Abs(diff)
			}
			if c.wantNear && prev > 1e-3 {
				t.Fatalf("expected convergence, %v left", prev)
			}
			if !c.wantNear && !approx(cam, c.cam) {
				t.Fatalf("zero smoothing must hold the camera, got %v", cam)
			}
		})
	}
}
