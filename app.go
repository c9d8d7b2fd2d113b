package phases

import (
	"fmt"
	"reflect"
	"time"

	"github.com/oliverbestmann/phases/internal/set"
)

// App assembles a World, its phase controllers and the host running the frame loop.
// The zero value is ready to use.
type App struct {
	world *World
	run   Runner

	// controllers in the order their phase types were initialized
	tickers []ticker

	lastUpdate time.Time

	// set by the first update, the app is fully assembled by then
	started bool
}

type ticker interface {
	Tick(world *World)
}

func (a *App) World() *World {
	if a.world == nil {
		a.world = NewWorld()
		a.world.InsertResource(Time{Scale: 1.0})
	}

	return a.world
}

func (a *App) AddPlugin(plugin Plugin) {
	plugin.ApplyTo(a)
}

func (a *App) InsertResource(res any) {
	a.World().InsertResource(res)
}

// InitPhase adds a phase type to the app. Each phase type can be initialized once.
func (a *App) InitPhase(newPhase NewPhase) {
	newPhase.configurePhaseIn(a)
}

// AddHooks registers actions for the (phase, stage) identified by the HookKey.
// The phase type must have been initialized using InitPhase before.
func (a *App) AddHooks(key HookKey, action Action, actions ...Action) {
	key.addHooksTo(a, append([]Action{action}, actions...))
}

// RunWorld sets the Runner that drives the frame loop.
func (a *App) RunWorld(run Runner) {
	a.run = run
}

// Update runs one frame: it advances Time by the wall clock time passed since
// the previous frame and ticks every phase controller once.
func (a *App) Update() {
	now := time.Now()

	var delta time.Duration
	if !a.lastUpdate.IsZero() {
		delta = now.Sub(a.lastUpdate)
	}

	a.lastUpdate = now

	a.UpdateWithDelta(delta)
}

// UpdateWithDelta runs one frame using a fixed time delta.
func (a *App) UpdateWithDelta(delta time.Duration) {
	world := a.World()
	a.started = true

	MustResourceOf[Time](world).advance(delta)

	for _, controller := range a.tickers {
		controller.Tick(world)
	}
}

// Run runs the app until an action requests exit.
// Without a Runner, a headless loop calling Update is used.
func (a *App) Run() error {
	if a.run == nil {
		a.run = func(app *App) error {
			for {
				app.Update()

				if err, ok := app.World().ExitRequested(); ok {
					return err
				}
			}
		}
	}

	return a.run(a)
}

type Plugin interface {
	ApplyTo(app *App)
}

type PluginFunc func(app *App)

func (plugin PluginFunc) ApplyTo(app *App) {
	plugin(app)
}

// Runner drives the frame loop of an App, e.g. by running a window event loop.
type Runner func(app *App) error

type NewPhase interface {
	configurePhaseIn(app *App)
}

// PhaseType describes a phase type P for InitPhase.
type PhaseType[P comparable] struct {
	Initial P

	// An optional list of all valid phase values. If set, registering
	// hooks for any other phase is reported as a configuration error.
	Phases []P
}

// phaseTypeState is stored as a resource in the world
type phaseTypeState[P comparable] struct {
	controller *Controller[P]
	declared   *set.Set[P]
}

func (p PhaseType[P]) configurePhaseIn(app *App) {
	world := app.World()

	if _, exists := ResourceOf[phaseTypeState[P]](world); exists {
		panic(configurationError("phase type %s already initialized", reflect.TypeFor[P]()))
	}

	if app.started {
		panic(configurationError("phase type %s initialized after the app started", reflect.TypeFor[P]()))
	}

	var declared *set.Set[P]
	if len(p.Phases) > 0 {
		declared = set.Of(p.Phases...)

		if !declared.Has(p.Initial) {
			panic(configurationError("initial phase %v is not declared", p.Initial))
		}
	}

	controller := NewController(p.Initial, NewHookTable[P]())

	world.InsertResource(phaseTypeState[P]{
		controller: controller,
		declared:   declared,
	})

	app.tickers = append(app.tickers, controller)
}

func phaseStateOf[P comparable](world *World) *phaseTypeState[P] {
	state, ok := ResourceOf[phaseTypeState[P]](world)
	if !ok {
		panic(configurationError("phase type %s not initialized", reflect.TypeFor[P]()))
	}

	return state
}

// ControllerOf returns the controller of phase type P.
func ControllerOf[P comparable](world *World) *Controller[P] {
	return phaseStateOf[P](world).controller
}

// HookKey identifies a (phase, stage) pair. Create one using OnEnter, OnUpdate or OnExit.
type HookKey interface {
	fmt.Stringer
	addHooksTo(app *App, actions []Action)
}

type phaseHookKey[P comparable] struct {
	phase P
	stage Stage
}

func (k phaseHookKey[P]) String() string {
	return fmt.Sprintf("On%s(%v)", k.stage, k.phase)
}

func (k phaseHookKey[P]) addHooksTo(app *App, actions []Action) {
	if app.started {
		panic(configurationError("hook %s registered after the app started", k))
	}

	state := phaseStateOf[P](app.World())

	if state.declared != nil && !state.declared.Has(k.phase) {
		panic(configurationError("hook %s registered for undeclared phase", k))
	}

	for _, action := range actions {
		state.controller.hooks.Register(k.phase, k.stage, action)
	}
}

func OnEnter[P comparable](phase P) HookKey {
	return phaseHookKey[P]{phase: phase, stage: StageEnter}
}

func OnUpdate[P comparable](phase P) HookKey {
	return phaseHookKey[P]{phase: phase, stage: StageUpdate}
}

func OnExit[P comparable](phase P) HookKey {
	return phaseHookKey[P]{phase: phase, stage: StageExit}
}
