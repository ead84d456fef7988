package component

// SafeRespawn stores the position a character returns to after dying.
type SafeRespawn struct {
	X           float64
	Y           float64
	Initialized bool
}

var SafeRespawnComponent = NewComponent[SafeRespawn]()
