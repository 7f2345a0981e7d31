package wheelchair

import "github.com/milk9111/wheelchair/common"

// FollowYaw rotates camYaw toward chairYaw along the shorter arc by
// dt*smooth (clamped to 1). Repeated calls converge without overshoot.
func FollowYaw(camYaw, chairYaw, dt, smooth float64) float64 {
	return common.LerpAngle(camYaw, chairYaw, dt*smooth)
}
