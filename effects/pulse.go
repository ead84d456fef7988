// Package effects holds time-driven cosmetic effects.
package effects

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

const minDuration = 0.0001

var envelopes = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"ease_in_out":  ease.InOutSine,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_out_cubic": ease.InOutCubic,
	"out_expo":     ease.OutExpo,
	"out_bounce":   ease.OutBounce,
}

// EnvelopeByName resolves a configured envelope name. An empty name selects
// ease_in_out.
func EnvelopeByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = "ease_in_out"
	}
	fn, ok := envelopes[name]
	if !ok {
		return nil, fmt.Errorf("effects: unknown envelope %q", name)
	}
	return fn, nil
}

// Intensity evaluates the envelope at elapsed seconds into a pulse of the
// given duration. The envelope runs from full strength to zero and the
// result is clamped to [0, 1].
func Intensity(envelope ease.TweenFunc, elapsed, duration float64) float64 {
	if envelope == nil {
		envelope = ease.InOutSine
	}
	if duration < minDuration {
		duration = minDuration
	}
	u := clamp01(elapsed / duration)
	return clamp01(float64(envelope(float32(u), 1, -1, 1)))
}

// Pulse is a restartable envelope over time.
type Pulse struct {
	Duration float64
	Envelope ease.TweenFunc

	elapsed float64
	length  float64
	active  bool
}

func NewPulse(duration float64, envelope ease.TweenFunc) *Pulse {
	return &Pulse{Duration: duration, Envelope: envelope}
}

// Trigger restarts the pulse for its configured duration.
func (p *Pulse) Trigger() {
	p.TriggerFor(p.Duration)
}

// TriggerFor restarts the pulse for the given number of seconds.
func (p *Pulse) TriggerFor(seconds float64) {
	p.length = seconds
	p.elapsed = 0
	p.active = true
}

func (p *Pulse) Active() bool {
	return p.active
}

// Update returns the intensity for the current step and advances by dt. It
// returns 0 once the pulse has run its length.
func (p *Pulse) Update(dt float64) float64 {
	if !p.active {
		return 0
	}
	if p.elapsed >= p.length {
		p.active = false
		return 0
	}
	v := Intensity(p.Envelope, p.elapsed, p.length)
	p.elapsed += dt
	return v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
