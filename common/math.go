package common

// FixedStep is the physics step in seconds.
const FixedStep = 1.0 / 60.0

// MaxFrameTime caps a single frame's dt so a stall does not unleash a burst
// of catch-up steps.
const MaxFrameTime = 0.25

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SmoothFactor turns a per-second rate into a lerp factor for one step of
// dt seconds, clamped to [0, 1]. A non-positive rate snaps.
func SmoothFactor(rate, dt float64) float64 {
	if rate <= 0 {
		return 1
	}
	return min(1, max(0, rate*dt))
}
