package phases

import (
	"log/slog"
	"reflect"
)

// Controller owns the current phase of type P and the pending transition request.
//
// Each call to Tick either performs a pending transition, running the Exit hooks
// of the current phase and the Enter hooks of the next one, or runs the Update
// hooks of the current phase. It never does both in the same tick.
type Controller[P comparable] struct {
	hooks *HookTable[P]

	current P
	entered bool

	pending    P
	hasPending bool
}

// NewController creates a controller starting in the initial phase. The Enter hooks
// of the initial phase run on the first call to Tick.
func NewController[P comparable](initial P, hooks *HookTable[P]) *Controller[P] {
	if hooks == nil {
		hooks = NewHookTable[P]()
	}

	return &Controller[P]{
		hooks:   hooks,
		current: initial,
	}
}

// Current returns the presently active phase.
func (c *Controller[P]) Current() P {
	return c.current
}

// Request records a transition to the given phase. The transition is applied at the
// next call to Tick. A later request overwrites an earlier one that was not yet applied.
func (c *Controller[P]) Request(next P) {
	c.pending = next
	c.hasPending = true
}

// Pending returns the phase that will become current at the next Tick, if any.
func (c *Controller[P]) Pending() (P, bool) {
	return c.pending, c.hasPending
}

func (c *Controller[P]) clearPending() {
	var zero P
	c.pending = zero
	c.hasPending = false
}

// Tick advances the controller by one step.
func (c *Controller[P]) Tick(world *World) {
	if !c.entered {
		// we need to run the Enter hooks of the initial phase once
		c.entered = true
		c.hooks.run(world, c.current, StageEnter)
		return
	}

	if c.hasPending && c.pending != c.current {
		next := c.pending

		// clear the request before running any hook, so that requests
		// made by Exit or Enter hooks survive until the next tick
		c.clearPending()

		c.transition(world, next)
		return
	}

	// requesting the current phase is a no-op
	c.clearPending()

	c.hooks.run(world, c.current, StageUpdate)
}

func (c *Controller[P]) transition(world *World, next P) {
	previous := c.current

	slog.Debug("Phase transition",
		slog.String("type", reflect.TypeFor[P]().String()),
		slog.Any("from", previous),
		slog.Any("to", next))

	c.hooks.run(world, previous, StageExit)

	// nothing tagged for the previous phase survives into the next one
	Cleanup(DespawnOnExit(previous))(world)

	c.current = next

	c.hooks.run(world, next, StageEnter)
}
