package phases

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestController creates a controller that already ran the Enter hooks of the initial phase.
func newTestController(hooks *HookTable[testPhase], world *World) *Controller[testPhase] {
	controller := NewController(phaseMenu, hooks)
	controller.Tick(world)
	return controller
}

func TestControllerInitialEnter(t *testing.T) {
	var log []string

	hooks := NewHookTable[testPhase]()
	hooks.Register(phaseMenu, StageEnter, logAction(&log, "enter"))
	hooks.Register(phaseMenu, StageUpdate, logAction(&log, "update"))

	world := NewWorld()
	controller := NewController(phaseMenu, hooks)

	controller.Tick(world)
	require.Equal(t, []string{"enter"}, log)

	controller.Tick(world)
	require.Equal(t, []string{"enter", "update"}, log)
}

func TestControllerNoHooksNoEffect(t *testing.T) {
	world := NewWorld()
	world.Spawn(Named("bystander"))

	controller := NewController(phaseEmpty, NewHookTable[testPhase]())

	for range 5 {
		controller.Tick(world)
	}

	require.Equal(t, phaseEmpty, controller.Current())
	require.Equal(t, 1, world.Len())
}

func TestControllerSelfRequestIsNoop(t *testing.T) {
	var log []string

	hooks := NewHookTable[testPhase]()
	hooks.Register(phaseMenu, StageEnter, logAction(&log, "enter"))
	hooks.Register(phaseMenu, StageExit, logAction(&log, "exit"))
	hooks.Register(phaseMenu, StageUpdate, logAction(&log, "update"))

	world := NewWorld()
	controller := newTestController(hooks, world)
	log = nil

	controller.Request(phaseMenu)
	controller.Tick(world)

	require.Equal(t, []string{"update"}, log)
	require.Equal(t, phaseMenu, controller.Current())

	_, pending := controller.Pending()
	require.False(t, pending)
}

func TestControllerTransition(t *testing.T) {
	var log []string

	hooks := NewHookTable[testPhase]()
	hooks.Register(phaseMenu, StageUpdate, logAction(&log, "menu update"))
	hooks.Register(phaseMenu, StageExit, logAction(&log, "menu exit"))
	hooks.Register(phaseGame, StageEnter, logAction(&log, "game enter"))
	hooks.Register(phaseGame, StageUpdate, logAction(&log, "game update"))

	world := NewWorld()
	controller := newTestController(hooks, world)

	controller.Request(phaseGame)

	// the request is not applied before the next tick
	require.Equal(t, phaseMenu, controller.Current())

	controller.Tick(world)
	require.Equal(t, phaseGame, controller.Current())
	require.Equal(t, []string{"menu exit", "game enter"}, log)

	// the first update runs at the next tick
	controller.Tick(world)
	require.Equal(t, []string{"menu exit", "game enter", "game update"}, log)
}

func TestControllerLastRequestWins(t *testing.T) {
	var log []string

	hooks := NewHookTable[testPhase]()
	hooks.Register(phaseGame, StageEnter, logAction(&log, "game enter"))
	hooks.Register(phaseOver, StageEnter, logAction(&log, "over enter"))

	world := NewWorld()
	controller := newTestController(hooks, world)

	controller.Request(phaseGame)
	controller.Request(phaseOver)
	controller.Tick(world)

	require.Equal(t, phaseOver, controller.Current())
	require.Equal(t, []string{"over enter"}, log)
}

func TestControllerRequestFromUpdateHook(t *testing.T) {
	hooks := NewHookTable[testPhase]()

	var controller *Controller[testPhase]
	hooks.Register(phaseMenu, StageUpdate, func(world *World) {
		controller.Request(phaseGame)
	})

	world := NewWorld()
	controller = newTestController(hooks, world)

	// processes the request
	controller.Tick(world)
	require.Equal(t, phaseMenu, controller.Current())

	// applies the request
	controller.Tick(world)
	require.Equal(t, phaseGame, controller.Current())
}

func TestControllerRequestFromEnterHookSurvives(t *testing.T) {
	hooks := NewHookTable[testPhase]()

	var controller *Controller[testPhase]
	hooks.Register(phaseGame, StageEnter, func(world *World) {
		controller.Request(phaseOver)
	})

	world := NewWorld()
	controller = newTestController(hooks, world)

	controller.Request(phaseGame)
	controller.Tick(world)
	require.Equal(t, phaseGame, controller.Current())

	next, ok := controller.Pending()
	require.True(t, ok)
	require.Equal(t, phaseOver, next)

	controller.Tick(world)
	require.Equal(t, phaseOver, controller.Current())
}

func TestControllerTransitionWithoutHooks(t *testing.T) {
	world := NewWorld()
	controller := newTestController(NewHookTable[testPhase](), world)

	controller.Request(phaseEmpty)
	controller.Tick(world)

	require.Equal(t, phaseEmpty, controller.Current())
}

func TestControllerSweepsBeforeEnter(t *testing.T) {
	hooks := NewHookTable[testPhase]()

	world := NewWorld()

	var menuEntity, keepEntity EntityId
	hooks.Register(phaseMenu, StageEnter, func(world *World) {
		menuEntity = world.Spawn(DespawnOnExit(phaseMenu))
		keepEntity = world.Spawn(Named("persistent camera"), Camera{})
	})

	var aliveInExit, aliveInEnter bool
	hooks.Register(phaseMenu, StageExit, func(world *World) {
		aliveInExit = world.IsAlive(menuEntity)
	})

	hooks.Register(phaseGame, StageEnter, func(world *World) {
		aliveInEnter = world.IsAlive(menuEntity)
	})

	controller := newTestController(hooks, world)
	require.True(t, world.IsAlive(menuEntity))

	controller.Request(phaseGame)
	controller.Tick(world)

	// exit hooks can still see the objects of their phase
	require.True(t, aliveInExit)

	// but they are gone before the next phase is entered
	require.False(t, aliveInEnter)
	require.False(t, world.IsAlive(menuEntity))

	require.True(t, world.IsAlive(keepEntity))
}
