package movement

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// ErrInvalidConfig is returned by New when a tunable is out of range.
var ErrInvalidConfig = errors.New("movement: invalid config")

// GroundCheck describes the foot probe used for ground sensing.
type GroundCheck struct {
	// Offset is the probe anchor relative to the body position. A nil offset
	// disables sensing and the character is always reported as airborne.
	Offset *cp.Vector
	Radius float64
	// Mask selects the collision categories that count as ground. It must be
	// non-zero when Offset is set.
	Mask uint
}

// Config holds the per-character tunables. It is copied into the controller
// on construction and never mutated afterwards.
type Config struct {
	MoveSpeed float64

	// JumpHeight is the apex height of a full jump in world units.
	JumpHeight float64
	// JumpCutMultiplier scales upward velocity when jump is released
	// mid-ascent. Must be in (0, 1].
	JumpCutMultiplier float64
	FallMultiplier    float64
	LowJumpMultiplier float64

	// Grace windows, in seconds.
	CoyoteTime     float64
	JumpBufferTime float64

	// ExtraJumps is the air-jump budget restored on landing.
	ExtraJumps int

	GroundCheck GroundCheck
}

// DefaultConfig returns tunables that feel reasonable at 1 unit = 1 tile.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:         8,
		JumpHeight:        3,
		JumpCutMultiplier: 0.5,
		FallMultiplier:    2.5,
		LowJumpMultiplier: 2,
		CoyoteTime:        0.1,
		JumpBufferTime:    0.1,
		ExtraJumps:        1,
		GroundCheck: GroundCheck{
			Offset: &cp.Vector{X: 0, Y: -0.5},
			Radius: 0.05,
			Mask:   1,
		},
	}
}

// Validate reports the first out-of-range tunable. A non-positive JumpHeight
// is accepted and yields a zero launch velocity. An anchored probe needs a
// non-empty mask; without an anchor the mask is unused.
func (c Config) Validate() error {
	switch {
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, c.MoveSpeed)
	case c.JumpCutMultiplier <= 0 || c.JumpCutMultiplier > 1:
		return fmt.Errorf("%w: jump cut multiplier %v not in (0, 1]", ErrInvalidConfig, c.JumpCutMultiplier)
	case c.FallMultiplier < 0:
		return fmt.Errorf("%w: fall multiplier %v is negative", ErrInvalidConfig, c.FallMultiplier)
	case c.LowJumpMultiplier < 0:
		return fmt.Errorf("%w: low jump multiplier %v is negative", ErrInvalidConfig, c.LowJumpMultiplier)
	case c.CoyoteTime < 0:
		return fmt.Errorf("%w: coyote time %v is negative", ErrInvalidConfig, c.CoyoteTime)
	case c.JumpBufferTime < 0:
		return fmt.Errorf("%w: jump buffer time %v is negative", ErrInvalidConfig, c.JumpBufferTime)
	case c.ExtraJumps < 0:
		return fmt.Errorf("%w: extra jumps %d is negative", ErrInvalidConfig, c.ExtraJumps)
	case c.GroundCheck.Radius < 0:
		return fmt.Errorf("%w: ground check radius %v is negative", ErrInvalidConfig, c.GroundCheck.Radius)
	case c.GroundCheck.Offset != nil && c.GroundCheck.Mask == 0:
		return fmt.Errorf("%w: ground check mask is empty", ErrInvalidConfig)
	}
	return nil
}
