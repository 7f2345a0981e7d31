package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter converts physics units to screen pixels at zoom 1.
	PixelsPerMeter = 48.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps an angle in radians into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// LerpAngle moves from a toward b along the shorter arc. t is clamped to
// [0, 1], so the result never passes b.
func LerpAngle(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return WrapAngle(a + WrapAngle(b-a)*t)
}
