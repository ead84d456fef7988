// Package camera binds follow and look-at targets onto cameras that may
// support only some of those capabilities.
package camera

import "errors"

// ErrUnsupportedCamera is returned when a camera supports neither follow nor
// look-at targets.
var ErrUnsupportedCamera = errors.New("camera: no follow or look-at capability")

// Target is anything with a world position.
type Target interface {
	Position() (x, y float64)
}

type FollowTargetSetter interface {
	SetFollow(t Target)
}

type LookAtTargetSetter interface {
	SetLookAt(t Target)
}

// Binding records which capabilities were bound.
type Binding struct {
	Follow bool
	LookAt bool
}

// Bind assigns targets according to the capabilities cam implements. Follow
// is always assigned when supported, even to a nil target; look-at only when
// a target is given.
func Bind(cam any, follow, lookAt Target) (Binding, error) {
	var b Binding
	fs, canFollow := cam.(FollowTargetSetter)
	ls, canLook := cam.(LookAtTargetSetter)
	if !canFollow && !canLook {
		return b, ErrUnsupportedCamera
	}
	if canFollow {
		fs.SetFollow(follow)
		b.Follow = true
	}
	if canLook && lookAt != nil {
		ls.SetLookAt(lookAt)
		b.LookAt = true
	}
	return b, nil
}

// Point is a fixed Target.
type Point struct {
	X, Y float64
}

func (p Point) Position() (float64, float64) { return p.X, p.Y }
