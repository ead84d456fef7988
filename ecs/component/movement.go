package component

import "github.com/milk9111/hopper/movement"

// Movement attaches a jump controller to a physics body.
type Movement struct {
	Controller *movement.Controller
}

var MovementComponent = NewComponent[Movement]()
