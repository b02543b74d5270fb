package control

// JumpPhase tracks whether a jump is currently held
type JumpPhase int

const (
	PhaseWaiting JumpPhase = iota
	PhaseStarted
	PhaseCanceled
)

// String returns the string representation of the phase
func (p JumpPhase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseStarted:
		return "Started"
	case PhaseCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// PhaseEvent drives JumpPhase transitions
type PhaseEvent int

const (
	EventJumped   PhaseEvent = iota // a jump or double jump was performed
	EventReleased                   // the jump button was released
	EventCut                        // the short hop was applied
	EventReset                      // activation, vehicle enter, manual refresh
)

// Next returns the phase after ev. Pairs not listed keep the current phase.
//
//	Waiting  --Jumped-->   Started
//	Started  --Jumped-->   Started
//	Canceled --Jumped-->   Started
//	Started  --Released--> Canceled
//	Canceled --Cut-->      Waiting
//	any      --Reset-->    Waiting
func (p JumpPhase) Next(ev PhaseEvent) JumpPhase {
	switch ev {
	case EventJumped:
		return PhaseStarted
	case EventReleased:
		if p == PhaseStarted {
			return PhaseCanceled
		}
	case EventCut:
		if p == PhaseCanceled {
			return PhaseWaiting
		}
	case EventReset:
		return PhaseWaiting
	}
	return p
}
