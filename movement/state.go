package movement

// State is a coarse view of the controller's jump eligibility. Arbitration
// never reads it; it is derived from the counters for debugging and animation.
type State int

const (
	Grounded State = iota
	AirborneCoyote
	AirborneWithAirJumps
	AirborneNoJumps
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case AirborneCoyote:
		return "airborne_coyote"
	case AirborneWithAirJumps:
		return "airborne_air_jumps"
	case AirborneNoJumps:
		return "airborne_no_jumps"
	default:
		return "unknown"
	}
}
