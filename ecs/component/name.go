package component

// Name identifies an entity for lookups such as camera targets.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
