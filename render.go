package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/physics"
)

const debugCircleSegments = 24

var backgroundColor = color.NRGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}

// view maps y-up world units to screen pixels centered on the camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func (v view) toScreen(p cp.Vector) (float32, float32) {
	x := (p.X-v.camX)*v.zoom + v.halfW
	y := v.halfH - (p.Y-v.camY)*v.zoom
	return float32(x), float32(y)
}

func cameraView(w *ecs.World, screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{zoom: 32, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		v.camX, v.camY = cam.X, cam.Y
		if cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
	}
	return v
}

func drawEntities(w *ecs.World, screen *ebiten.Image, v view) {
	ecs.ForEach2(w, component.AppearanceComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Appearance, t *component.Transform) {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			return
		}
		clr := a.Color
		if rb, ok := ecs.Get(w, e, component.RainbowComponent.Kind()); ok && rb.Value > 0 {
			clr = rainbowTint(clr, rb.Value, rb.Pulse.Duration)
		}

		if pb.Width > 0 && pb.Height > 0 {
			x, y := v.toScreen(cp.Vector{X: t.X - pb.Width/2, Y: t.Y + pb.Height/2})
			vector.DrawFilledRect(screen, x, y, float32(pb.Width*v.zoom), float32(pb.Height*v.zoom), clr, false)
			return
		}
		x, y := v.toScreen(cp.Vector{X: t.X, Y: t.Y})
		vector.DrawFilledCircle(screen, x, y, float32(pb.Radius*v.zoom), clr, true)
	})
}

// rainbowTint blends base toward a hue that cycles with the pulse strength.
func rainbowTint(base color.Color, strength, duration float64) color.Color {
	hue := math.Mod((1-strength)*duration*720, 360)
	r, g, b := hsv(hue)
	br, bg, bb, ba := base.RGBA()
	mix := func(c uint32, h float64) uint8 {
		return uint8((float64(c>>8)*(1-strength) + h*255*strength))
	}
	return color.NRGBA{R: mix(br, r), G: mix(bg, g), B: mix(bb, b), A: uint8(ba >> 8)}
}

func hsv(h float64) (float64, float64, float64) {
	c := 1.0
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

func drawPhysicsDebug(pw *physics.World, screen *ebiten.Image, v view) {
	if pw == nil || pw.Space() == nil {
		return
	}
	cp.DrawSpace(pw.Space(), &physicsDebugDrawer{screen: screen, view: v})
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   view
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	d.drawCircle(a, radius, outline)
	d.drawCircle(b, radius, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreen(pos)
	vector.DrawFilledCircle(d.screen, x, y, float32(max(size, 2)), toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.toScreen(a)
	x2, y2 := d.view.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
