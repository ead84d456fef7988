package main

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/physics"
	"github.com/milk9111/hopper/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world   *ecs.World
	physics *physics.World
	player  ecs.Entity

	frame *ecs.Scheduler
	fixed *ecs.Scheduler

	accumulator float64
	last        time.Time

	watcher *prefabs.Watcher
	overlay *debugOverlay
	debug   bool
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	levelSpec, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	pw := physics.NewWorld(levelSpec.Gravity.Vector())
	if err := entity.LoadLevelToWorld(w, levelSpec); err != nil {
		return nil, err
	}
	player, err := entity.NewPlayer(w, levelSpec.Spawn.Vector())
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   w,
		physics: pw,
		player:  player,
		debug:   debug,
		overlay: newDebugOverlay(),
	}

	var reloads <-chan string
	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = watcher
			reloads = watcher.Events
			go logWatchErrors(watcher)
		}
	}

	levelFile := levelName
	if !strings.HasSuffix(levelFile, ".yaml") {
		levelFile += ".yaml"
	}

	g.frame = ecs.NewScheduler(
		system.NewInputSystem(newEbitenInput()),
		system.NewPlayerControllerSystem(pw),
		system.NewAnimBridgeSystem(),
		system.NewCoinCollectSystem(),
		system.NewDeathSystem(),
		system.NewRespawnSystem(),
		system.NewRainbowSystem(),
		system.NewCameraSystem().WithViewport(baseWidth, baseHeight),
		system.NewPrefabReloadSystem(reloads, pw, prefabs.Name(levelFile)),
	)
	g.fixed = ecs.NewScheduler(
		system.NewPlayerMovementSystem(pw),
		system.NewPhysicsSystem(pw),
	)
	return g, nil
}

func logWatchErrors(w *prefabs.Watcher) {
	for err := range w.Errors {
		log.Printf("prefabs: watch: %v", err)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Update runs the frame systems once with the measured frame time, then as
// many fixed steps as the accumulated time allows.
func (g *Game) Update() error {
	now := time.Now()
	dt := common.FixedStep
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), common.MaxFrameTime)
	}
	g.last = now

	g.frame.Update(g.world, dt)

	g.accumulator += dt
	for g.accumulator >= common.FixedStep {
		g.fixed.Update(g.world, common.FixedStep)
		g.accumulator -= common.FixedStep
	}

	g.overlay.observe(g.world.Events().Drain())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	view := cameraView(g.world, screen)
	drawEntities(g.world, screen, view)
	if g.debug {
		drawPhysicsDebug(g.physics, screen, view)
		g.overlay.draw(g.world, g.player, screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
