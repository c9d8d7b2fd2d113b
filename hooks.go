package phases

import "slices"

// Action is an executable unit of logic with access to the shared world.
type Action func(world *World)

type hookKey[P comparable] struct {
	phase P
	stage Stage
}

// HookTable maps each (phase, stage) pair to an ordered list of actions.
// The table is append-only, actions run in registration order.
type HookTable[P comparable] struct {
	hooks map[hookKey[P]][]Action
}

func NewHookTable[P comparable]() *HookTable[P] {
	return &HookTable[P]{
		hooks: map[hookKey[P]][]Action{},
	}
}

// Register appends the action to the list of (phase, stage).
// Registering the same action twice is allowed, it will then run twice.
func (h *HookTable[P]) Register(phase P, stage Stage, action Action) {
	if action == nil {
		panic(configurationError("action for %v/%s must not be nil", phase, stage))
	}

	if h.hooks == nil {
		h.hooks = map[hookKey[P]][]Action{}
	}

	key := hookKey[P]{phase: phase, stage: stage}
	h.hooks[key] = append(h.hooks[key], action)
}

// ActionsFor returns the actions registered for (phase, stage) in registration order.
// If nothing was registered, an empty slice is returned. Appending to the result
// never changes the table.
func (h *HookTable[P]) ActionsFor(phase P, stage Stage) []Action {
	return slices.Clip(h.hooks[hookKey[P]{phase: phase, stage: stage}])
}

func (h *HookTable[P]) run(world *World, phase P, stage Stage) {
	for _, action := range h.ActionsFor(phase, stage) {
		action(world)
	}
}
