package component

// AnimParams are the values an animator reads each frame.
type AnimParams struct {
	Speed       float64
	MotionSpeed float64
	IsGrounded  bool
	YVelocity   float64
	FreeFall    bool
	Jump        bool
	State       string
}

var AnimParamsComponent = NewComponent[AnimParams]()

// AnimBridge configures how movement state is mapped onto AnimParams.
type AnimBridge struct {
	SpeedSmoothing  float64
	SpeedMultiplier float64
	// JumpBoolHold is how long, in seconds, Jump stays true after a launch.
	JumpBoolHold float64

	smoothedSpeed float64
	jumpTimer     float64
	warned        bool
}

var AnimBridgeComponent = NewComponent[AnimBridge]()

// Smooth moves the smoothed speed toward target by factor t in [0, 1].
func (b *AnimBridge) Smooth(target, t float64) float64 {
	b.smoothedSpeed += (target - b.smoothedSpeed) * t
	return b.smoothedSpeed
}

// HoldJump restarts the jump bool timer. With a non-positive hold the bool
// is never shown.
func (b *AnimBridge) HoldJump() {
	b.jumpTimer = max(b.JumpBoolHold, 0)
}

// TickJump reports whether the jump bool is still held and decays the timer.
func (b *AnimBridge) TickJump(dt float64) bool {
	if b.jumpTimer <= 0 {
		return false
	}
	b.jumpTimer -= dt
	return true
}

// WarnOnce reports true the first time it is called.
func (b *AnimBridge) WarnOnce() bool {
	if b.warned {
		return false
	}
	b.warned = true
	return true
}
