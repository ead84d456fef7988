package component

// Coin is a one-shot collectible worth Value points.
type Coin struct {
	Value     int
	Radius    float64
	Collected bool
}

var CoinComponent = NewComponent[Coin]()

// CoinCollected is the payload of ecs.EventCoinCollected.
type CoinCollected struct {
	Value int
	X, Y  float64
}

// ScoreCounter accumulates collected coin values.
type ScoreCounter struct {
	Coins int
	Total int
}

var ScoreCounterComponent = NewComponent[ScoreCounter]()
