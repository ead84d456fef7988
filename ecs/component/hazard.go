package component

// Hazard marks an entity as deadly on overlap. Bounds are centered on the
// entity's Transform.
type Hazard struct {
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
