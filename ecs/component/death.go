package component

// Death configures and tracks a character's death sequence.
type Death struct {
	// DeathY is the world height below which the character dies.
	DeathY       float64
	RestartDelay float64

	Dead  bool
	Timer float64
}

var DeathComponent = NewComponent[Death]()
