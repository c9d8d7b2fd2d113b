package phases

import (
	"fmt"
)

// OverlayDescriptor names the three phases a single Overlay binds to.
// It is created once during assembly and shared by reference.
type OverlayDescriptor[P comparable] struct {
	// Idle is the phase showing the start menu.
	Idle P

	// Active is the phase the start menu transitions into. The overlay does not render it.
	Active P

	// Terminal is the phase showing the end of game screen.
	Terminal P
}

// OverlayConfig holds the dependencies of an Overlay.
type OverlayConfig struct {
	Input    Input
	Graphics GraphicSource

	// Graphic ids shown in the idle and in the terminal phase
	IdleGraphic     string
	TerminalGraphic string

	// Advance moves from the idle to the active phase, or from the terminal
	// back to the idle phase. Defaults to ControlConfirm.
	Advance Control

	// Quit requests the app to exit. Defaults to ControlQuit.
	Quit Control
}

// OverlayScoped is the lifecycle tag of all entities spawned by an Overlay.
type OverlayScoped[P comparable] struct {
	descriptor *OverlayDescriptor[P]
}

// Overlay is a full frame menu shown in both, the idle and the terminal phase of
// its descriptor. Both phases share the same enter, update and exit actions. They
// only differ in the graphic that is shown and the phase the overlay advances to.
type Overlay[P comparable] struct {
	descriptor *OverlayDescriptor[P]
	config     OverlayConfig
}

func NewOverlay[P comparable](descriptor *OverlayDescriptor[P], config OverlayConfig) *Overlay[P] {
	if descriptor == nil {
		panic(configurationError("overlay descriptor must not be nil"))
	}

	if config.Input == nil || config.Graphics == nil {
		panic(configurationError("overlay requires an input and a graphic source"))
	}

	if config.Advance == "" {
		config.Advance = ControlConfirm
	}

	if config.Quit == "" {
		config.Quit = ControlQuit
	}

	return &Overlay[P]{
		descriptor: descriptor,
		config:     config,
	}
}

// Tag returns the lifecycle tag attached to every entity spawned by this overlay.
func (o *Overlay[P]) Tag() OverlayScoped[P] {
	return OverlayScoped[P]{descriptor: o.descriptor}
}

// ApplyTo registers the overlay for the idle and the terminal phase.
func (o *Overlay[P]) ApplyTo(app *App) {
	for _, phase := range []P{o.descriptor.Idle, o.descriptor.Terminal} {
		app.AddHooks(OnEnter(phase), o.enter)
		app.AddHooks(OnUpdate(phase), o.update)
		app.AddHooks(OnExit(phase), o.exit)
	}
}

func (o *Overlay[P]) graphicIdOf(phase P) string {
	switch phase {
	case o.descriptor.Idle:
		return o.config.IdleGraphic
	case o.descriptor.Terminal:
		return o.config.TerminalGraphic
	default:
		panic(configurationError("overlay entered for phase %v, expected %v or %v",
			phase, o.descriptor.Idle, o.descriptor.Terminal))
	}
}

func (o *Overlay[P]) enter(world *World) {
	graphicId := o.graphicIdOf(CurrentPhase[P](world))

	graphic, err := o.config.Graphics.Graphic(graphicId)
	if err != nil {
		panic(fmt.Errorf("%w: overlay graphic %q: %w", ErrConfiguration, graphicId, err))
	}

	world.Spawn(
		o.Tag(),
		Named("OverlayCamera"),
		Camera{},
	)

	world.Spawn(
		o.Tag(),
		Named("OverlayGraphic"),
		Sprite{Graphic: graphic, FullFrame: true},
	)
}

func (o *Overlay[P]) update(world *World) {
	input := o.config.Input

	if input.JustActivated(o.config.Quit) {
		world.Exit(nil)
		return
	}

	if !input.JustActivated(o.config.Advance) {
		return
	}

	switch CurrentPhase[P](world) {
	case o.descriptor.Idle:
		RequestPhase(world, o.descriptor.Active)

	case o.descriptor.Terminal:
		RequestPhase(world, o.descriptor.Idle)
	}
}

func (o *Overlay[P]) exit(world *World) {
	o.cleanup(world)
}

func (o *Overlay[P]) cleanup(world *World) {
	Cleanup(o.Tag())(world)
}
