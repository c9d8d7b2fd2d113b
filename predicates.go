package phases

// Predicate decides if an action should run.
type Predicate func(world *World) bool

// RunIf wraps the action so it only runs while all predicates are true.
func RunIf(action Action, predicates ...Predicate) Action {
	return func(world *World) {
		for _, predicate := range predicates {
			if !predicate(world) {
				return
			}
		}

		action(world)
	}
}

// InPhase is a predicate that is true while the given phase is current.
func InPhase[P comparable](phase P) Predicate {
	return func(world *World) bool {
		return CurrentPhase[P](world) == phase
	}
}

// CurrentPhase returns the current phase of type P.
func CurrentPhase[P comparable](world *World) P {
	return ControllerOf[P](world).Current()
}

// RequestPhase requests a transition to the given phase at the next tick.
func RequestPhase[P comparable](world *World, next P) {
	ControllerOf[P](world).Request(next)
}
