// Package physics wraps the Chipmunk space used by the game: body creation
// from collider descriptions, per-body gravity scale, freezing, and the
// overlap queries used for ground sensing.
package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// AllCategories matches every collision category.
const AllCategories = ^uint(0)

// contactSlop is the overlap, in world units, resting contacts settle into.
const contactSlop = 0.01

// BodySpec describes a body and its single collider. Width and Height give a
// box; Radius a circle. X and Y are the body's center.
type BodySpec struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	Mass          float64
	Friction      float64
	Static        bool
	Sensor        bool
	Category      uint
	Mask          uint
	GravityScale  float64
}

type bodyState struct {
	gravityScale float64
	frozen       bool
}

// World owns the Chipmunk space.
type World struct {
	space   *cp.Space
	gravity cp.Vector
	bodies  map[*cp.Body]*bodyState
}

func NewWorld(gravity cp.Vector) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetCollisionSlop(contactSlop)
	space.SetGravity(gravity)
	return &World{
		space:   space,
		gravity: gravity,
		bodies:  make(map[*cp.Body]*bodyState),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *World) Gravity() cp.Vector {
	if pw == nil {
		return cp.Vector{}
	}
	return pw.gravity
}

func (pw *World) SetGravity(g cp.Vector) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.gravity = g
	pw.space.SetGravity(g)
}

// Step advances the simulation by dt seconds.
func (pw *World) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// CreateBody adds a body and its shape to the space. Static specs attach the
// shape to the space's static body and return that body.
func (pw *World) CreateBody(spec BodySpec) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}

	var body *cp.Body
	if spec.Static {
		body = pw.space.StaticBody
	} else {
		mass := spec.Mass
		if mass <= 0 {
			mass = 1
		}
		// Characters never rotate.
		body = cp.NewBody(mass, math.Inf(1))
		body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
		state := &bodyState{gravityScale: spec.GravityScale}
		pw.bodies[body] = state
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			if state.frozen {
				b.SetVelocity(0, 0)
				return
			}
			cp.BodyUpdateVelocity(b, gravity.Mult(state.gravityScale), damping, dt)
		})
		pw.space.AddBody(body)
	}

	shape := newShape(body, spec)
	shape.SetFriction(spec.Friction)
	shape.SetSensor(spec.Sensor)
	shape.SetFilter(filterFor(spec.Category, spec.Mask))
	pw.space.AddShape(shape)
	return body, shape
}

func newShape(body *cp.Body, spec BodySpec) *cp.Shape {
	if spec.Width <= 0 || spec.Height <= 0 {
		r := spec.Radius
		if r <= 0 {
			r = 0.5
		}
		if spec.Static {
			return cp.NewCircle(body, r, cp.Vector{X: spec.X, Y: spec.Y})
		}
		return cp.NewCircle(body, r, cp.Vector{})
	}
	if spec.Static {
		return cp.NewBox2(body, Box(spec.X, spec.Y, spec.Width, spec.Height), 0)
	}
	return cp.NewBox(body, spec.Width, spec.Height, 0)
}

func filterFor(category, mask uint) cp.ShapeFilter {
	if category == 0 {
		category = 1
	}
	if mask == 0 {
		mask = AllCategories
	}
	return cp.ShapeFilter{Group: 0, Categories: category, Mask: mask}
}

// RemoveBody removes a shape and, for dynamic bodies, the body itself.
func (pw *World) RemoveBody(body *cp.Body, shape *cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape != nil {
		pw.space.RemoveShape(shape)
	}
	if body != nil && body != pw.space.StaticBody {
		delete(pw.bodies, body)
		pw.space.RemoveBody(body)
	}
}

// SetGravityScale changes the gravity multiplier of a dynamic body.
func (pw *World) SetGravityScale(body *cp.Body, scale float64) {
	if st, ok := pw.state(body); ok {
		st.gravityScale = scale
	}
}

func (pw *World) GravityScale(body *cp.Body) float64 {
	if st, ok := pw.state(body); ok {
		return st.gravityScale
	}
	return 0
}

// SetFrozen stops or resumes simulation of a dynamic body. A frozen body
// keeps its position and has velocity forced to zero.
func (pw *World) SetFrozen(body *cp.Body, frozen bool) {
	st, ok := pw.state(body)
	if !ok {
		log.Printf("physics: SetFrozen on unknown body")
		return
	}
	st.frozen = frozen
	if frozen {
		body.SetVelocity(0, 0)
	}
}

func (pw *World) Frozen(body *cp.Body) bool {
	st, ok := pw.state(body)
	return ok && st.frozen
}

func (pw *World) state(body *cp.Body) (*bodyState, bool) {
	if pw == nil || body == nil {
		return nil, false
	}
	st, ok := pw.bodies[body]
	return st, ok
}

// OverlapCircle reports whether any non-sensor shape whose category is in
// mask lies within radius of center.
func (pw *World) OverlapCircle(center cp.Vector, radius float64, mask uint) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	filter := cp.ShapeFilter{Group: 0, Categories: AllCategories, Mask: mask}
	info := pw.space.PointQueryNearest(center, radius, filter)
	return info != nil && info.Shape != nil
}

// Box returns the bounding box of a w by h rectangle centered on (x, y).
func Box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x - w/2, B: y - h/2, R: x + w/2, T: y + h/2}
}

// BoxesOverlap reports whether two boxes intersect, edges included.
func BoxesOverlap(a, b cp.BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

// CircleOverlapsBox reports whether a circle touches a box.
func CircleOverlapsBox(center cp.Vector, radius float64, box cp.BB) bool {
	nx := cp.Clamp(center.X, box.L, box.R)
	ny := cp.Clamp(center.Y, box.B, box.T)
	dx, dy := center.X-nx, center.Y-ny
	return dx*dx+dy*dy <= radius*radius
}
