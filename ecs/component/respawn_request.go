package component

// RespawnRequest is a marker component indicating a player should be
// teleported to their spawn position. RespawnSystem performs the move and
// removes the marker.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
