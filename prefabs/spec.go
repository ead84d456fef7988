package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/effects"
	"github.com/milk9111/hopper/movement"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type GroundCheckSpec struct {
	// Offset is optional; leaving it out disables ground sensing.
	Offset *VecSpec `yaml:"offset"`
	Radius float64  `yaml:"radius"`
	Mask   uint     `yaml:"mask"`
}

type MovementSpec struct {
	MoveSpeed         float64         `yaml:"move_speed"`
	JumpHeight        float64         `yaml:"jump_height"`
	JumpCutMultiplier float64         `yaml:"jump_cut_multiplier"`
	FallMultiplier    float64         `yaml:"fall_multiplier"`
	LowJumpMultiplier float64         `yaml:"low_jump_multiplier"`
	CoyoteTime        float64         `yaml:"coyote_time"`
	JumpBufferTime    float64         `yaml:"jump_buffer_time"`
	ExtraJumps        int             `yaml:"extra_jumps"`
	GroundCheck       GroundCheckSpec `yaml:"ground_check"`
}

// Config converts the spec into controller tunables. Range checks happen in
// movement.New.
func (m MovementSpec) Config() movement.Config {
	cfg := movement.Config{
		MoveSpeed:         m.MoveSpeed,
		JumpHeight:        m.JumpHeight,
		JumpCutMultiplier: m.JumpCutMultiplier,
		FallMultiplier:    m.FallMultiplier,
		LowJumpMultiplier: m.LowJumpMultiplier,
		CoyoteTime:        m.CoyoteTime,
		JumpBufferTime:    m.JumpBufferTime,
		ExtraJumps:        m.ExtraJumps,
		GroundCheck: movement.GroundCheck{
			Radius: m.GroundCheck.Radius,
			Mask:   m.GroundCheck.Mask,
		},
	}
	if m.GroundCheck.Offset != nil {
		off := m.GroundCheck.Offset.Vector()
		cfg.GroundCheck.Offset = &off
	}
	return cfg
}

type AnimBridgeSpec struct {
	SpeedSmoothing  float64 `yaml:"speed_smoothing"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	JumpBoolHold    float64 `yaml:"jump_bool_hold"`
}

type DeathSpec struct {
	DeathY       float64 `yaml:"death_y"`
	RestartDelay float64 `yaml:"restart_delay"`
}

type RainbowSpec struct {
	Duration float64 `yaml:"duration"`
	Envelope string  `yaml:"envelope"`
}

// Pulse builds the configured effect.
func (r RainbowSpec) Pulse() (*effects.Pulse, error) {
	env, err := effects.EnvelopeByName(r.Envelope)
	if err != nil {
		return nil, err
	}
	return effects.NewPulse(r.Duration, env), nil
}

type PlayerSpec struct {
	Name         string         `yaml:"name"`
	Collider     ColliderSpec   `yaml:"collider"`
	GravityScale float64        `yaml:"gravity_scale"`
	Movement     MovementSpec   `yaml:"movement"`
	AnimBridge   AnimBridgeSpec `yaml:"anim_bridge"`
	Death        DeathSpec      `yaml:"death"`
	Rainbow      RainbowSpec    `yaml:"rainbow"`
	Color        YAMLColor      `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// RectSpec is a box centered on (X, Y).
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CoinSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Value  int     `yaml:"value"`
	Radius float64 `yaml:"radius"`
}

type CameraSpec struct {
	Target     string  `yaml:"target"`
	LookAt     string  `yaml:"look_at"`
	Smoothness float64 `yaml:"smoothness"`
	Zoom       float64 `yaml:"zoom"`
}

type LevelSpec struct {
	Name      string     `yaml:"name"`
	Gravity   VecSpec    `yaml:"gravity"`
	Bounds    RectSpec   `yaml:"bounds"`
	Spawn     VecSpec    `yaml:"spawn"`
	Platforms []RectSpec `yaml:"platforms"`
	Hazards   []RectSpec `yaml:"hazards"`
	Coins     []CoinSpec `yaml:"coins"`
	Camera    CameraSpec `yaml:"camera"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns c, or fallback when no color was configured.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
