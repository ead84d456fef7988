package component

import "image/color"

// Appearance is the flat color used by the debug renderer.
type Appearance struct {
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
