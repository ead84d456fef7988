package system

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/movement"
	"github.com/milk9111/hopper/physics"
	"github.com/milk9111/hopper/prefabs"
)

const testDT = 1.0 / 60.0

var testGravity = cp.Vector{X: 0, Y: -9.81}

type scriptedInput struct {
	next component.Input
}

func (s *scriptedInput) Poll() component.Input { return s.next }

type scene struct {
	w      *ecs.World
	pw     *physics.World
	player ecs.Entity
	input  *scriptedInput
	frame  *ecs.Scheduler
	fixed  *ecs.Scheduler
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:         "player",
		Collider:     prefabs.ColliderSpec{Width: 0.8, Height: 1, Mass: 1},
		GravityScale: 2,
		Movement: prefabs.MovementSpec{
			MoveSpeed:         8,
			JumpHeight:        3,
			JumpCutMultiplier: 0.5,
			FallMultiplier:    2.5,
			LowJumpMultiplier: 2,
			CoyoteTime:        0.1,
			JumpBufferTime:    0.1,
			ExtraJumps:        1,
			GroundCheck: prefabs.GroundCheckSpec{
				Offset: &prefabs.VecSpec{X: 0, Y: -0.5},
				Radius: 0.05,
				Mask:   component.LayerGround,
			},
		},
		AnimBridge: prefabs.AnimBridgeSpec{SpeedSmoothing: 10, SpeedMultiplier: 1, JumpBoolHold: 0.1},
		Death:      prefabs.DeathSpec{DeathY: -10, RestartDelay: 0.5},
		Rainbow:    prefabs.RainbowSpec{Duration: 0.5, Envelope: "linear"},
	}
}

// newScene builds a 20-unit floor whose top is y=0 with the player standing
// on it at spawn.
func newScene(t *testing.T, spawn cp.Vector, level *prefabs.LevelSpec) *scene {
	t.Helper()

	w := ecs.NewWorld()
	pw := physics.NewWorld(testGravity)
	if level == nil {
		level = &prefabs.LevelSpec{
			Platforms: []prefabs.RectSpec{{X: 0, Y: -0.5, Width: 20, Height: 1}},
			Camera:    prefabs.CameraSpec{Target: "player", LookAt: "player", Smoothness: 6},
		}
	}
	if err := entity.LoadLevelToWorld(w, level); err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}
	player, err := entity.NewPlayerFromSpec(w, testPlayerSpec(), spawn)
	if err != nil {
		t.Fatalf("NewPlayerFromSpec: %v", err)
	}

	input := &scriptedInput{}
	s := &scene{
		w:      w,
		pw:     pw,
		player: player,
		input:  input,
		frame: ecs.NewScheduler(
			NewInputSystem(input),
			NewPlayerControllerSystem(pw),
			NewAnimBridgeSystem(),
			NewCoinCollectSystem(),
			NewDeathSystem(),
			NewRespawnSystem(),
			NewRainbowSystem(),
			NewCameraSystem(),
		),
		fixed: ecs.NewScheduler(
			NewPlayerMovementSystem(pw),
			NewPhysicsSystem(pw),
		),
	}
	return s
}

// step runs one frame followed by one fixed step and returns the frame's
// events.
func (s *scene) step(in component.Input) []ecs.Event {
	s.input.next = in
	s.frame.Update(s.w, testDT)
	s.fixed.Update(s.w, testDT)
	return s.w.Events().Drain()
}

func (s *scene) settle(frames int) {
	for i := 0; i < frames; i++ {
		s.step(component.Input{})
	}
}

func (s *scene) controller(t *testing.T) *movement.Controller {
	t.Helper()
	mv, ok := ecs.Get(s.w, s.player, component.MovementComponent.Kind())
	if !ok || mv.Controller == nil {
		t.Fatalf("player has no controller")
	}
	return mv.Controller
}

func (s *scene) body(t *testing.T) *component.PhysicsBody {
	t.Helper()
	pb, ok := ecs.Get(s.w, s.player, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		t.Fatalf("player has no physics body")
	}
	return pb
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func TestPlayerStandsAndJumps(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	s.settle(10)

	ctrl := s.controller(t)
	if !ctrl.IsGrounded() {
		t.Fatalf("player should be grounded after settling")
	}
	params, _ := ecs.Get(s.w, s.player, component.AnimParamsComponent.Kind())
	if !params.IsGrounded || params.State != "grounded" {
		t.Fatalf("anim params = %+v, want grounded", params)
	}

	s.input.next = component.Input{Jump: true, JumpPressed: true}
	s.frame.Update(s.w, testDT)

	want := movement.LaunchVelocity(3, 9.81*2)
	if vy := s.body(t).Body.Velocity().Y; math.Abs(vy-want) > 1e-9 {
		t.Fatalf("launch vy = %v, want %v", vy, want)
	}
	if n := countEvents(s.w.Events().Drain(), ecs.EventJumpStarted); n != 1 {
		t.Fatalf("jump started events = %d, want 1", n)
	}
	if !params.Jump {
		t.Fatalf("anim Jump bool should be set on launch")
	}

	s.fixed.Update(s.w, testDT)
	for i := 0; i < 20; i++ {
		s.step(component.Input{Jump: true})
	}
	tr, _ := ecs.Get(s.w, s.player, component.TransformComponent.Kind())
	if tr.Y < 1.5 {
		t.Fatalf("player y = %v after jumping, want above 1.5", tr.Y)
	}
	if params.Jump {
		t.Fatalf("anim Jump bool should clear after the hold")
	}
	if ctrl.IsGrounded() {
		t.Fatalf("player should be airborne mid-jump")
	}
}

func TestGroundJumpLeavesGroundNextFrame(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	s.settle(10)
	ctrl := s.controller(t)
	if !ctrl.IsGrounded() {
		t.Fatalf("player should be grounded after settling")
	}

	launches := countEvents(s.step(component.Input{Jump: true, JumpPressed: true}), ecs.EventJumpStarted)
	if launches != 1 {
		t.Fatalf("launches on press = %d, want 1", launches)
	}

	launches += countEvents(s.step(component.Input{Jump: true}), ecs.EventJumpStarted)
	if ctrl.IsGrounded() {
		t.Fatalf("player still grounded on the frame after launch")
	}
	if ctrl.CoyoteRemaining() != 0 {
		t.Fatalf("coyote = %v after launch, want 0", ctrl.CoyoteRemaining())
	}
	if ctrl.ExtraJumpsRemaining() != 1 {
		t.Fatalf("extra jumps = %d, want 1", ctrl.ExtraJumpsRemaining())
	}

	presses := map[int]bool{2: true, 4: true, 8: true, 19: true}
	for frame := 2; frame < 30; frame++ {
		in := component.Input{Jump: true, JumpPressed: presses[frame]}
		launches += countEvents(s.step(in), ecs.EventJumpStarted)
		if ctrl.IsGrounded() {
			t.Fatalf("player landed at frame %d", frame)
		}
	}
	if launches != 2 {
		t.Fatalf("launches without landing = %d, want 2", launches)
	}
	if ctrl.ExtraJumpsRemaining() != 0 {
		t.Fatalf("extra jumps = %d, want 0", ctrl.ExtraJumpsRemaining())
	}
}

func TestPlayerRuns(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	s.settle(5)

	tr, _ := ecs.Get(s.w, s.player, component.TransformComponent.Kind())
	startX := tr.X
	for i := 0; i < 30; i++ {
		s.step(component.Input{MoveX: 1})
	}
	if got := s.body(t).Body.Velocity().X; math.Abs(got-8) > 1e-6 {
		t.Fatalf("vx = %v, want 8", got)
	}
	if tr.X-startX < 3 {
		t.Fatalf("player moved %v, want about 4", tr.X-startX)
	}
	params, _ := ecs.Get(s.w, s.player, component.AnimParamsComponent.Kind())
	if params.Speed <= 0 || params.Speed > 8 {
		t.Fatalf("smoothed speed = %v, want in (0, 8]", params.Speed)
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	level := &prefabs.LevelSpec{
		Platforms: []prefabs.RectSpec{{X: 0, Y: -0.5, Width: 20, Height: 1}},
		Coins:     []prefabs.CoinSpec{{X: 0, Y: 0.5, Value: 5, Radius: 0.3}},
	}
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, level)
	coin, _, ok := ecs.First(s.w, component.CoinComponent.Kind())
	if !ok {
		t.Fatalf("level has no coin")
	}

	events := s.step(component.Input{})
	collected := 0
	for _, evt := range events {
		if evt.Type != ecs.EventCoinCollected {
			continue
		}
		collected++
		data, ok := evt.Data.(component.CoinCollected)
		if !ok || data.Value != 5 {
			t.Fatalf("event data = %#v", evt.Data)
		}
	}
	if collected != 1 {
		t.Fatalf("coin events = %d, want 1", collected)
	}
	if ecs.IsAlive(s.w, coin) {
		t.Fatalf("coin entity should be destroyed")
	}

	_, score, _ := ecs.First(s.w, component.ScoreCounterComponent.Kind())
	if score.Coins != 1 || score.Total != 5 {
		t.Fatalf("score = %+v, want 1 coin worth 5", score)
	}

	rb, _ := ecs.Get(s.w, s.player, component.RainbowComponent.Kind())
	if rb.Value != 1 || !rb.Pulse.Active() {
		t.Fatalf("rainbow value = %v active=%v, want full pulse", rb.Value, rb.Pulse.Active())
	}

	for i := 0; i < 60; i++ {
		if n := countEvents(s.step(component.Input{}), ecs.EventCoinCollected); n != 0 {
			t.Fatalf("coin collected again on frame %d", i)
		}
	}
	if rb.Value != 0 || rb.Pulse.Active() {
		t.Fatalf("rainbow should have faded, value = %v", rb.Value)
	}
}

func TestFallDeathAndRespawn(t *testing.T) {
	s := newScene(t, cp.Vector{X: 100, Y: 0.5}, nil)
	safe, _ := ecs.Get(s.w, s.player, component.SafeRespawnComponent.Kind())
	safe.X, safe.Y = 0, 0.5

	died := false
	for i := 0; i < 300 && !died; i++ {
		died = countEvents(s.step(component.Input{}), ecs.EventPlayerDied) == 1
	}
	if !died {
		t.Fatalf("player never died")
	}

	d, _ := ecs.Get(s.w, s.player, component.DeathComponent.Kind())
	pb := s.body(t)
	if !d.Dead || !pb.Frozen {
		t.Fatalf("death = %+v frozen=%v", d, pb.Frozen)
	}
	tr, _ := ecs.Get(s.w, s.player, component.TransformComponent.Kind())
	deathY := tr.Y
	s.step(component.Input{JumpPressed: true, Jump: true})
	if tr.Y != deathY {
		t.Fatalf("frozen player moved from %v to %v", deathY, tr.Y)
	}

	respawned := false
	for i := 0; i < 60 && !respawned; i++ {
		events := s.step(component.Input{})
		if countEvents(events, ecs.EventPlayerDied) != 0 {
			t.Fatalf("player died twice")
		}
		respawned = countEvents(events, ecs.EventRespawned) == 1
	}
	if !respawned {
		t.Fatalf("player never respawned")
	}
	if d.Dead || pb.Frozen {
		t.Fatalf("player still dead after respawn")
	}
	if math.Abs(tr.X) > 0.01 || tr.Y > 0.5 || tr.Y < 0 {
		t.Fatalf("respawned at (%v, %v), want near (0, 0.5)", tr.X, tr.Y)
	}
	if ecs.Has(s.w, s.player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("respawn request should be consumed")
	}
}

func TestHazardKillsOnce(t *testing.T) {
	level := &prefabs.LevelSpec{
		Platforms: []prefabs.RectSpec{{X: 0, Y: -0.5, Width: 20, Height: 1}},
		Hazards:   []prefabs.RectSpec{{X: 0, Y: 0.2, Width: 1, Height: 0.4}},
	}
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, level)

	deaths := 0
	for i := 0; i < 10; i++ {
		deaths += countEvents(s.step(component.Input{}), ecs.EventPlayerDied)
	}
	if deaths != 1 {
		t.Fatalf("deaths = %d, want 1", deaths)
	}
}

func TestCameraBindAndFollow(t *testing.T) {
	w := ecs.NewWorld()
	target := ecs.CreateEntity(w)
	_ = ecs.Add(w, target, component.NameComponent.Kind(), &component.Name{Value: "player"})
	tr := &component.Transform{X: 4, Y: 2}
	_ = ecs.Add(w, target, component.TransformComponent.Kind(), tr)

	camEntity, err := entity.NewCamera(w, prefabs.CameraSpec{Target: "player", LookAt: "player", Smoothness: 6})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	sys := NewCameraSystem()
	sys.Update(w, testDT)

	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	binding, _ := ecs.Get(w, camEntity, component.CameraBindingComponent.Kind())
	if !binding.Binding.Follow || !binding.Binding.LookAt {
		t.Fatalf("binding = %+v, want follow and look-at", binding.Binding)
	}
	if cam.X != 4 || cam.Y != 2 {
		t.Fatalf("camera should snap to target on bind, at (%v, %v)", cam.X, cam.Y)
	}

	tr.X = 14
	sys.Update(w, testDT)
	if math.Abs(cam.X-5) > 1e-9 {
		t.Fatalf("camera x = %v, want 5 after one smoothed step", cam.X)
	}
	if cam.LookX != 14 {
		t.Fatalf("look-at x = %v, want 14", cam.LookX)
	}
}

func TestCameraStaysInsideLevelBounds(t *testing.T) {
	cases := []struct {
		name         string
		targetX      float64
		targetY      float64
		wantX, wantY float64
	}{
		{"inside", 30, 5, 30, 5},
		{"past_left", -20, 5, 10, 5},
		{"past_right", 80, 5, 50, 5},
		{"below", 30, -40, 30, -5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			level := &prefabs.LevelSpec{
				Bounds: prefabs.RectSpec{X: 30, Y: 0, Width: 60, Height: 20},
				Camera: prefabs.CameraSpec{Target: "player", Smoothness: 6, Zoom: 10},
			}
			if err := entity.LoadLevelToWorld(w, level); err != nil {
				t.Fatalf("LoadLevelToWorld: %v", err)
			}
			target := ecs.CreateEntity(w)
			_ = ecs.Add(w, target, component.NameComponent.Kind(), &component.Name{Value: "player"})
			_ = ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{X: c.targetX, Y: c.targetY})

			// 200x100 px at zoom 10 is a 20x10 unit view.
			NewCameraSystem().WithViewport(200, 100).Update(w, testDT)

			_, cam, _ := ecs.First(w, component.CameraComponent.Kind())
			if math.Abs(cam.X-c.wantX) > 1e-9 || math.Abs(cam.Y-c.wantY) > 1e-9 {
				t.Fatalf("camera at (%v, %v), want (%v, %v)", cam.X, cam.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestCameraCentersWhenViewExceedsBounds(t *testing.T) {
	b := component.LevelBounds{Left: 0, Bottom: 0, Right: 10, Top: 4}
	x, y := b.ClampView(100, -3, 8, 1)
	if x != 5 || y != 1 {
		t.Fatalf("clamped to (%v, %v), want (5, 1)", x, y)
	}
	x, y = component.LevelBounds{}.ClampView(100, -3, 8, 1)
	if x != 100 || y != -3 {
		t.Fatalf("empty bounds clamped to (%v, %v)", x, y)
	}
}

func TestCameraMissingTarget(t *testing.T) {
	w := ecs.NewWorld()
	camEntity, _ := entity.NewCamera(w, prefabs.CameraSpec{Target: "ghost"})

	NewCameraSystem().Update(w, testDT)

	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	binding, _ := ecs.Get(w, camEntity, component.CameraBindingComponent.Kind())
	if !binding.Binding.Follow || binding.Binding.LookAt {
		t.Fatalf("binding = %+v, want follow only", binding.Binding)
	}
	if cam.Follow() != nil {
		t.Fatalf("follow target should be nil")
	}
}

func TestAnimBridge(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	ctrl, err := movement.New(movement.DefaultConfig())
	if err != nil {
		t.Fatalf("movement.New: %v", err)
	}
	ctrl.SetVelocity(cp.Vector{X: -8, Y: -1})
	bridge := &component.AnimBridge{SpeedSmoothing: 10, SpeedMultiplier: 1}
	params := &component.AnimParams{}
	_ = ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Controller: ctrl})
	_ = ecs.Add(w, e, component.AnimBridgeComponent.Kind(), bridge)
	_ = ecs.Add(w, e, component.AnimParamsComponent.Kind(), params)

	sys := NewAnimBridgeSystem()
	sys.Update(w, 0.05)
	if params.Speed != 4 {
		t.Fatalf("speed = %v, want 4", params.Speed)
	}
	sys.Update(w, 0.05)
	if params.Speed != 6 {
		t.Fatalf("speed = %v, want 6", params.Speed)
	}
	if !params.FreeFall || params.IsGrounded || params.YVelocity != -1 {
		t.Fatalf("params = %+v, want free fall", params)
	}
	if params.MotionSpeed != 1 {
		t.Fatalf("motion speed = %v, want 1", params.MotionSpeed)
	}
	if params.Jump {
		t.Fatalf("Jump should be false without a launch")
	}
}

type solidGround struct{}

func (solidGround) OverlapCircle(cp.Vector, float64, uint) bool { return true }

func TestAnimBridgeJumpHold(t *testing.T) {
	cases := []struct {
		name     string
		hold     float64
		wantJump bool
	}{
		{"held", 0.1, true},
		{"zero_hold", 0, false},
		{"negative_hold", -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			ctrl, err := movement.New(movement.DefaultConfig())
			if err != nil {
				t.Fatalf("movement.New: %v", err)
			}
			ctrl.Frame(testDT, movement.Input{JumpPressed: true, JumpHeld: true}, movement.Env{
				Ground:       solidGround{},
				Gravity:      testGravity,
				GravityScale: 1,
			})
			params := &component.AnimParams{}
			_ = ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{Controller: ctrl})
			_ = ecs.Add(w, e, component.AnimBridgeComponent.Kind(), &component.AnimBridge{JumpBoolHold: c.hold})
			_ = ecs.Add(w, e, component.AnimParamsComponent.Kind(), params)

			NewAnimBridgeSystem().Update(w, testDT)
			if params.Jump != c.wantJump {
				t.Fatalf("Jump = %v, want %v", params.Jump, c.wantJump)
			}
			if n := countEvents(w.Events().Drain(), ecs.EventJumpStarted); n != 1 {
				t.Fatalf("jump started events = %d, want 1", n)
			}
		})
	}
}

func TestAnimBridgeWithoutController(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	bridge := &component.AnimBridge{SpeedSmoothing: 10}
	params := &component.AnimParams{Speed: 3}
	_ = ecs.Add(w, e, component.AnimBridgeComponent.Kind(), bridge)
	_ = ecs.Add(w, e, component.AnimParamsComponent.Kind(), params)

	sys := NewAnimBridgeSystem()
	sys.Update(w, testDT)
	sys.Update(w, testDT)

	if params.Speed != 3 {
		t.Fatalf("params changed without a controller: %+v", params)
	}
	if bridge.WarnOnce() {
		t.Fatalf("bridge should already have warned")
	}
}

func TestInputSystemCopiesSample(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	in := &component.Input{}
	_ = ecs.Add(w, e, component.InputComponent.Kind(), in)

	src := &scriptedInput{next: component.Input{MoveX: -1, Jump: true, JumpPressed: true}}
	NewInputSystem(src).Update(w, testDT)
	if *in != src.next {
		t.Fatalf("input = %+v, want %+v", *in, src.next)
	}

	got := movementInput(w, e)
	if got.MoveX != -1 || !got.JumpHeld || !got.JumpPressed || got.JumpReleased {
		t.Fatalf("movement input = %+v", got)
	}
}

func TestPrefabReloadRebuildsController(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	old := s.controller(t)
	old.SetVelocity(cp.Vector{X: 3, Y: 4})

	events := make(chan string, 1)
	events <- "prefabs/player.yaml"
	NewPrefabReloadSystem(events, s.pw, "level.yaml").Update(s.w, testDT)

	ctrl := s.controller(t)
	if ctrl == old {
		t.Fatalf("controller should be rebuilt")
	}
	if v := ctrl.Velocity(); v.X != 3 || v.Y != 4 {
		t.Fatalf("velocity = %v, want preserved (3, 4)", v)
	}
}

func TestPrefabReloadSkipsUnchangedFile(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	old := s.controller(t)

	data, err := prefabs.PrefabsFS.ReadFile("player.yaml")
	if err != nil {
		t.Fatalf("read embedded player.yaml: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "prefabs", "player.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	events := make(chan string, 1)
	sys := NewPrefabReloadSystem(events, s.pw, "level.yaml")

	events <- "prefabs/player.yaml"
	sys.Update(s.w, testDT)
	first := s.controller(t)
	if first == old {
		t.Fatalf("first event should reload")
	}

	events <- "prefabs/player.yaml"
	sys.Update(s.w, testDT)
	if s.controller(t) != first {
		t.Fatalf("repeated event for an unchanged file reloaded")
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	events <- "prefabs/player.yaml"
	sys.Update(s.w, testDT)
	if s.controller(t) == first {
		t.Fatalf("touched file should reload")
	}
}

func TestApplyPlayerSpecRejectsInvalid(t *testing.T) {
	s := newScene(t, cp.Vector{X: 0, Y: 0.5}, nil)
	old := s.controller(t)

	bad := testPlayerSpec()
	bad.Movement.JumpCutMultiplier = 2
	if err := ApplyPlayerSpec(s.w, bad); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
	if s.controller(t) != old {
		t.Fatalf("controller replaced by invalid spec")
	}

	bad = testPlayerSpec()
	bad.Rainbow.Envelope = "wobble"
	if err := ApplyPlayerSpec(s.w, bad); err == nil {
		t.Fatalf("expected error for unknown envelope")
	}
}
