package runner

import (
	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/gm"
	"github.com/oliverbestmann/phases/internal/config"
	"github.com/oliverbestmann/phases/rng"
)

// ScoreRecorder persists the result of a finished game.
type ScoreRecorder interface {
	Record(game string, score int) error
}

type Options struct {
	Config   config.RunnerConfig
	Input    phases.Input
	Graphics phases.GraphicSource
	Rng      rng.Source

	// Size of the logical screen in pixels
	ScreenSize gm.Vec

	// Optional, scores are not persisted if not set
	Scores ScoreRecorder
}

// Session holds the state surviving a single round.
type Session struct {
	Score int
	Best  int
}

// settings is the resource holding the injected dependencies
type settings struct {
	Options
}

// Plugin assembles the runner game: its phases, the menu overlay and the game systems.
func Plugin(opts Options) phases.Plugin {
	return phases.PluginFunc(func(app *phases.App) {
		app.InsertResource(settings{Options: opts})
		app.InsertResource(Session{})

		app.InitPhase(phases.PhaseType[Phase]{
			Initial: MainMenu,
			Phases:  AllPhases,
		})

		app.AddPlugin(phases.NewOverlay(
			&phases.OverlayDescriptor[Phase]{
				Idle:     MainMenu,
				Active:   Playing,
				Terminal: GameOver,
			},
			phases.OverlayConfig{
				Input:           opts.Input,
				Graphics:        opts.Graphics,
				IdleGraphic:     GraphicMenu,
				TerminalGraphic: GraphicGameOver,
			},
		))

		app.AddHooks(phases.OnEnter(Playing), setupPhysicsSystem, spawnPlayingSystem)

		app.AddHooks(phases.OnUpdate(Playing),
			abortSystem,
			flapSystem,
			stepPhysicsSystem,
			spawnWallsSystem,
			scrollWallsSystem,
			passWallsSystem,
			collisionSystem,
			updateScoreTextSystem,
		)

		app.AddHooks(phases.OnExit(Playing), teardownPhysicsSystem)

		app.AddHooks(phases.OnEnter(GameOver), recordScoreSystem, spawnGameOverSystem)
	})
}

func settingsOf(world *phases.World) *settings {
	return phases.MustResourceOf[settings](world)
}
