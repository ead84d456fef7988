package component

import "github.com/milk9111/hopper/camera"

// Camera is a smoothed follow camera. It satisfies camera.FollowTargetSetter
// and camera.LookAtTargetSetter.
type Camera struct {
	TargetName string
	LookAtName string
	Smoothness float64
	Zoom       float64

	X, Y         float64
	LookX, LookY float64

	follow camera.Target
	lookAt camera.Target
}

var CameraComponent = NewComponent[Camera]()

func (c *Camera) SetFollow(t camera.Target) { c.follow = t }
func (c *Camera) SetLookAt(t camera.Target) { c.lookAt = t }
func (c *Camera) Follow() camera.Target     { return c.follow }
func (c *Camera) LookAt() camera.Target     { return c.lookAt }

// Binding remembers which capabilities were bound at startup.
type CameraBinding struct {
	Binding camera.Binding
	Done    bool
}

var CameraBindingComponent = NewComponent[CameraBinding]()
