package event

// Cause identifies why an actor died
type Cause int

const (
	CauseUnknown Cause = iota
	CauseDamage
	CauseHazard
	CauseExpired
	CauseSelfDestruct
	CauseConsumed
)

// String returns the string representation of the cause
func (c Cause) String() string {
	switch c {
	case CauseUnknown:
		return "Unknown"
	case CauseDamage:
		return "Damage"
	case CauseHazard:
		return "Hazard"
	case CauseExpired:
		return "Expired"
	case CauseSelfDestruct:
		return "SelfDestruct"
	case CauseConsumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// Hit describes a hit the actor has already absorbed.
// Listeners run after the actor applied stun and tumble.
type Hit struct {
	Damage    int
	Stun      float64 // seconds the actor is unable to act
	Knockback bool    // true if the hit sent the actor tumbling
	Cause     Cause   // reported on death, Damage when unset
}

// Vehicle identifies the vehicle entered or exited
type Vehicle struct {
	Name string
}

// Death is emitted once when an actor dies
type Death struct {
	Cause Cause
}

// ActorEvents bundles the lifecycle signals of a controllable actor
type ActorEvents struct {
	Hit          Signal[Hit]
	VehicleEnter Signal[Vehicle]
	VehicleExit  Signal[Vehicle]
	Death        Signal[Death]
}
