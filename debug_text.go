package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	debugFontSize  = 14
	debugEventKeep = 6
)

// debugOverlay prints controller state and the most recent events.
type debugOverlay struct {
	face   text.Face
	recent []string
}

func newDebugOverlay() *debugOverlay {
	d := &debugOverlay{}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("debug: font: %v", err)
		return d
	}
	d.face = &text.GoTextFace{Source: source, Size: debugFontSize}
	return d
}

func (d *debugOverlay) observe(events []ecs.Event) {
	for _, evt := range events {
		line := string(evt.Type)
		if c, ok := evt.Data.(component.CoinCollected); ok {
			line = fmt.Sprintf("%s +%d", line, c.Value)
		} else if cause, ok := evt.Data.(string); ok {
			line = fmt.Sprintf("%s (%s)", line, cause)
		}
		d.recent = append(d.recent, line)
	}
	if n := len(d.recent); n > debugEventKeep {
		d.recent = d.recent[n-debugEventKeep:]
	}
}

func (d *debugOverlay) draw(w *ecs.World, player ecs.Entity, screen *ebiten.Image) {
	if d.face == nil {
		return
	}
	mv, ok := ecs.Get(w, player, component.MovementComponent.Kind())
	if !ok || mv.Controller == nil {
		return
	}
	ctrl := mv.Controller
	vel := ctrl.Velocity()

	var b strings.Builder
	fmt.Fprintf(&b, "state      %s\n", ctrl.State())
	fmt.Fprintf(&b, "grounded   %v\n", ctrl.IsGrounded())
	fmt.Fprintf(&b, "coyote     %.3f\n", ctrl.CoyoteRemaining())
	fmt.Fprintf(&b, "buffer     %.3f\n", ctrl.JumpBufferRemaining())
	fmt.Fprintf(&b, "air jumps  %d\n", ctrl.ExtraJumpsRemaining())
	fmt.Fprintf(&b, "velocity   (%.2f, %.2f)\n", vel.X, vel.Y)
	if params, ok := ecs.Get(w, player, component.AnimParamsComponent.Kind()); ok {
		fmt.Fprintf(&b, "anim speed %.2f free_fall=%v jump=%v\n", params.Speed, params.FreeFall, params.Jump)
	}
	fmt.Fprintf(&b, "fps        %.1f\n", ebiten.ActualFPS())
	for _, line := range d.recent {
		fmt.Fprintf(&b, "> %s\n", line)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = debugFontSize * 1.3
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, b.String(), d.face, op)
}
