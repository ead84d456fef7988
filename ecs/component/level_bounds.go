package component

// LevelBounds is the world-space box the camera view is kept inside. An axis
// with no extent is left unclamped.
type LevelBounds struct {
	Left, Bottom float64
	Right, Top   float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

// ClampView moves a view center so a view with the given half extents stays
// inside the bounds. A view larger than the bounds is centered on them.
func (b LevelBounds) ClampView(x, y, halfW, halfH float64) (float64, float64) {
	return clampAxis(x, b.Left, b.Right, halfW), clampAxis(y, b.Bottom, b.Top, halfH)
}

func clampAxis(v, lo, hi, half float64) float64 {
	if hi <= lo {
		return v
	}
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return min(max(v, lo+half), hi-half)
}
