// Command jumpsim runs the player prefab headless on a flat floor and prints
// apex height and airtime for a range of jump hold durations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/movement"
	"github.com/milk9111/hopper/physics"
	"github.com/milk9111/hopper/prefabs"
)

const (
	settleFrames = 30
	maxFrames    = 600
)

type scriptedInput struct {
	frame     int
	holdFrame int
}

func (s *scriptedInput) Poll() component.Input {
	f := s.frame
	s.frame++
	switch {
	case f < settleFrames:
		return component.Input{}
	case f == settleFrames:
		return component.Input{Jump: true, JumpPressed: true}
	case f < settleFrames+s.holdFrame:
		return component.Input{Jump: true}
	case f == settleFrames+s.holdFrame:
		return component.Input{JumpReleased: true}
	default:
		return component.Input{}
	}
}

type result struct {
	apex    float64
	airtime float64
}

func simulate(level *prefabs.LevelSpec, player *prefabs.PlayerSpec, hold float64) (result, error) {
	w := ecs.NewWorld()
	pw := physics.NewWorld(level.Gravity.Vector())
	floor := &prefabs.LevelSpec{Platforms: []prefabs.RectSpec{{X: 0, Y: -0.5, Width: 1000, Height: 1}}}
	if err := entity.LoadLevelToWorld(w, floor); err != nil {
		return result{}, err
	}
	spawn := prefabs.VecSpec{X: 0, Y: player.Collider.Height / 2}
	e, err := entity.NewPlayerFromSpec(w, player, spawn.Vector())
	if err != nil {
		return result{}, err
	}

	input := &scriptedInput{holdFrame: int(hold / common.FixedStep)}
	frame := ecs.NewScheduler(
		system.NewInputSystem(input),
		system.NewPlayerControllerSystem(pw),
	)
	fixed := ecs.NewScheduler(
		system.NewPlayerMovementSystem(pw),
		system.NewPhysicsSystem(pw),
	)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	mv, _ := ecs.Get(w, e, component.MovementComponent.Kind())

	var res result
	var groundY float64
	launched := false
	for i := 0; i < maxFrames; i++ {
		frame.Update(w, common.FixedStep)
		fixed.Update(w, common.FixedStep)
		if i == settleFrames-1 {
			groundY = tr.Y
		}
		if i < settleFrames {
			continue
		}
		grounded := mv.Controller.IsGrounded()
		if !grounded {
			launched = true
			res.airtime += common.FixedStep
			res.apex = max(res.apex, tr.Y-groundY)
		}
		if launched && grounded {
			return res, nil
		}
	}
	return res, fmt.Errorf("jumpsim: no landing within %d frames", maxFrames)
}

func main() {
	levelName := flag.String("level", "level", "level prefab supplying gravity")
	steps := flag.Int("steps", 6, "number of hold durations to try")
	maxHold := flag.Float64("max-hold", 0.6, "longest hold in seconds")
	flag.Parse()

	level, err := prefabs.LoadLevelSpec(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	cfg := player.Movement.Config()
	g := movement.EffectiveGravity(level.Gravity.Vector(), player.GravityScale)
	fmt.Printf("jump_height=%.2f gravity=%.2f launch=%.2f\n", cfg.JumpHeight, g, movement.LaunchVelocity(cfg.JumpHeight, g))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "hold\tapex\tairtime")
	for i := 0; i < *steps; i++ {
		hold := *maxHold * float64(i+1) / float64(*steps)
		res, err := simulate(level, player, hold)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(tw, "%.2fs\t%.2f\t%.2fs\n", hold, res.apex, res.airtime)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
