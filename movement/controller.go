// Package movement implements the per-character jump and run controller:
// ground sensing, coyote time, jump buffering, air jumps, jump cut and
// fall/low-jump gravity shaping.
//
// The controller is driven by two cadences. Frame runs once per rendered
// frame and handles input edges; Fixed runs once per physics step and shapes
// velocity before the integrator consumes it.
package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Input is the per-tick input sample.
type Input struct {
	JumpPressed  bool // rising edge this frame
	JumpReleased bool // falling edge this frame
	JumpHeld     bool
	MoveX        float64 // [-1, 1]
}

// OverlapQuery answers whether any collider in mask intersects a circle.
type OverlapQuery interface {
	OverlapCircle(center cp.Vector, radius float64, mask uint) bool
}

// Env is the physics context for a frame tick.
type Env struct {
	Ground       OverlapQuery
	Position     cp.Vector
	Gravity      cp.Vector
	GravityScale float64
}

// Controller owns a single character's jump state. It is not safe for
// concurrent use.
type Controller struct {
	cfg Config

	vel         cp.Vector
	grounded    bool
	coyote      float64
	buffer      float64
	extraJumps  int
	jumpStarted bool
}

// New validates cfg and returns a controller at rest.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.GroundCheck.Offset != nil {
		off := *cfg.GroundCheck.Offset
		cfg.GroundCheck.Offset = &off
	}
	return &Controller{cfg: cfg}, nil
}

// Config returns a copy of the controller's tunables.
func (c *Controller) Config() Config {
	return c.cfg
}

// LaunchVelocity returns the initial upward speed whose ballistic apex under
// gravity magnitude g is h.
func LaunchVelocity(h, g float64) float64 {
	if h <= 0 || g <= 0 {
		return 0
	}
	return math.Sqrt(2 * g * h)
}

// EffectiveGravity is the vertical gravity magnitude a body with the given
// scale experiences.
func EffectiveGravity(gravity cp.Vector, scale float64) float64 {
	return math.Abs(gravity.Y * scale)
}

// Frame runs the variable-rate tick: ground sense, timers, jump arbitration
// and jump cut, in that order.
func (c *Controller) Frame(dt float64, in Input, env Env) {
	c.SenseGround(env.Ground, env.Position)
	c.AdvanceTimers(dt, in.JumpPressed)
	c.ArbitrateJump(EffectiveGravity(env.Gravity, env.GravityScale))
	c.ApplyJumpCut(in.JumpReleased)
}

// Fixed runs the physics-rate tick.
func (c *Controller) Fixed(dt float64, in Input, gravity cp.Vector) {
	c.ApplyHorizontalVelocity(in.MoveX)
	c.ApplyFallAndAscentShaping(dt, gravity.Y, in.JumpHeld)
}

// SenseGround probes for ground at the foot anchor. Without an anchor or a
// probe the character is airborne.
func (c *Controller) SenseGround(probe OverlapQuery, position cp.Vector) bool {
	gc := c.cfg.GroundCheck
	if gc.Offset == nil || probe == nil {
		c.grounded = false
		return false
	}
	c.grounded = probe.OverlapCircle(position.Add(*gc.Offset), gc.Radius, gc.Mask)
	return c.grounded
}

// AdvanceTimers refreshes or decays the coyote and buffer windows. Counters
// may dip below zero; every check uses > 0.
func (c *Controller) AdvanceTimers(dt float64, jumpPressed bool) {
	if c.grounded {
		c.coyote = c.cfg.CoyoteTime
		c.extraJumps = c.cfg.ExtraJumps
	} else {
		c.coyote -= dt
	}

	if jumpPressed {
		c.buffer = c.cfg.JumpBufferTime
	} else {
		c.buffer -= dt
	}
}

// ArbitrateJump launches at most one jump using the buffered press. Ground
// and coyote jumps take priority over air jumps. It reports whether a launch
// happened.
func (c *Controller) ArbitrateJump(gravity float64) bool {
	if c.buffer <= 0 {
		return false
	}

	switch {
	case c.coyote > 0:
		c.coyote = 0
	case c.extraJumps > 0:
		c.extraJumps--
	default:
		return false
	}

	c.buffer = 0
	c.vel.Y = LaunchVelocity(c.cfg.JumpHeight, gravity)
	c.jumpStarted = true
	return true
}

// ApplyJumpCut shortens an ascent on the release edge.
func (c *Controller) ApplyJumpCut(jumpReleased bool) {
	if jumpReleased && c.vel.Y > 0 {
		c.vel.Y *= c.cfg.JumpCutMultiplier
	}
}

// ApplyFallAndAscentShaping adds extra gravity while falling, and while
// rising without jump held. gravityY is the signed world gravity.
func (c *Controller) ApplyFallAndAscentShaping(dt, gravityY float64, jumpHeld bool) {
	switch {
	case c.vel.Y < 0:
		c.vel.Y += gravityY * (c.cfg.FallMultiplier - 1) * dt
	case c.vel.Y > 0 && !jumpHeld:
		c.vel.Y += gravityY * (c.cfg.LowJumpMultiplier - 1) * dt
	}
}

// ApplyHorizontalVelocity sets horizontal speed directly from the move axis.
func (c *Controller) ApplyHorizontalVelocity(moveX float64) {
	c.vel.X = cp.Clamp(moveX, -1, 1) * c.cfg.MoveSpeed
}

// SetVelocity loads the integrator's current velocity before a tick.
func (c *Controller) SetVelocity(v cp.Vector) {
	c.vel = v
}

// Velocity returns the velocity to hand back to the integrator.
func (c *Controller) Velocity() cp.Vector {
	return c.vel
}

func (c *Controller) IsGrounded() bool {
	return c.grounded
}

func (c *Controller) VerticalVelocity() float64 {
	return c.vel.Y
}

// HorizontalSpeed is the absolute horizontal velocity.
func (c *Controller) HorizontalSpeed() float64 {
	return math.Abs(c.vel.X)
}

// ConsumeJumpStarted returns whether a jump launched since the last call and
// clears the flag. Only one reader should consume it per frame.
func (c *Controller) ConsumeJumpStarted() bool {
	started := c.jumpStarted
	c.jumpStarted = false
	return started
}

func (c *Controller) ExtraJumpsRemaining() int {
	return c.extraJumps
}

// CoyoteRemaining is the coyote window clamped to [0, CoyoteTime].
func (c *Controller) CoyoteRemaining() float64 {
	return cp.Clamp(c.coyote, 0, c.cfg.CoyoteTime)
}

// JumpBufferRemaining is the buffer window clamped to [0, JumpBufferTime].
func (c *Controller) JumpBufferRemaining() float64 {
	return cp.Clamp(c.buffer, 0, c.cfg.JumpBufferTime)
}

func (c *Controller) State() State {
	switch {
	case c.grounded:
		return Grounded
	case c.coyote > 0:
		return AirborneCoyote
	case c.extraJumps > 0:
		return AirborneWithAirJumps
	default:
		return AirborneNoJumps
	}
}

// Reset clears timers, velocity and the jump flag, as on respawn.
func (c *Controller) Reset() {
	*c = Controller{cfg: c.cfg}
}
