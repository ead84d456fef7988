package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/physics"
)

// CoinCollectSystem collects coins the player overlaps. Each coin is
// collected once: the score is credited, EventCoinCollected is pushed, the
// player's rainbow pulse restarts and the coin entity is destroyed. The
// physics system removes its shape on the next step.
type CoinCollectSystem struct{}

func NewCoinCollectSystem() *CoinCollectSystem {
	return &CoinCollectSystem{}
}

func (s *CoinCollectSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	player, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	box, ok := playerBox(w, player)
	if !ok || isDead(w, player) {
		return
	}

	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, coin *component.Coin, t *component.Transform) {
		if coin.Collected {
			return
		}
		if !physics.CircleOverlapsBox(cp.Vector{X: t.X, Y: t.Y}, coin.Radius, box) {
			return
		}
		coin.Collected = true

		w.Events().Push(ecs.Event{
			Type:   ecs.EventCoinCollected,
			Entity: player,
			Data:   component.CoinCollected{Value: coin.Value, X: t.X, Y: t.Y},
		})

		score := scoreCounter(w, player)
		score.Coins++
		score.Total += coin.Value
		log.Printf("coin: collected value=%d total=%d", coin.Value, score.Total)

		if rb, ok := ecs.Get(w, player, component.RainbowComponent.Kind()); ok && rb.Pulse != nil {
			rb.Pulse.Trigger()
		}

		ecs.DestroyEntity(w, e)
	})
}

// scoreCounter returns the level's counter, attaching one to the player if
// the level has none.
func scoreCounter(w *ecs.World, player ecs.Entity) *component.ScoreCounter {
	if _, score, ok := ecs.First(w, component.ScoreCounterComponent.Kind()); ok {
		return score
	}
	score := &component.ScoreCounter{}
	if err := ecs.Add(w, player, component.ScoreCounterComponent.Kind(), score); err != nil {
		panic("coin: add score counter: " + err.Error())
	}
	return score
}

// playerBox is the collider bounds of e centered on its Transform.
func playerBox(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return physics.Box(t.X, t.Y, pb.Width, pb.Height), true
}

func isDead(w *ecs.World, e ecs.Entity) bool {
	d, ok := ecs.Get(w, e, component.DeathComponent.Kind())
	return ok && d.Dead
}
