// internal/input/velocity.go
package input

// StickToDuty maps a stick value (0-255, neutral 128) to a duty in [-1.0, 1.0).
func StickToDuty(v int) float64 {
	return float64(v-StickNeutral) / 128.0
}

// Velocity maps the snapshot sticks to the three body duties.
//
//	vx   = forward  = -left_y (stick up is low)
//	vy   = left     = -left_x
//	vyaw = yaw      =  right_x
func Velocity(s Snapshot) (vx, vy, vyaw float64) {
	vx = -StickToDuty(s.Axis("left_y"))
	vy = -StickToDuty(s.Axis("left_x"))
	vyaw = StickToDuty(s.Axis("right_x"))
	return vx, vy, vyaw
}
