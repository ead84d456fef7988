package component

import "github.com/milk9111/hopper/effects"

// Rainbow drives the cosmetic overlay pulse. Value is the current effect
// intensity in [0, 1] for a renderer to read.
type Rainbow struct {
	Pulse *effects.Pulse
	Value float64
}

var RainbowComponent = NewComponent[Rainbow]()
