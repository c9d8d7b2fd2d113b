package dice

import (
	"fmt"

	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/gm"
	"github.com/oliverbestmann/phases/internal/config"
	"github.com/oliverbestmann/phases/rng"
)

type ScoreRecorder interface {
	Record(game string, score int) error
}

type Options struct {
	Config     config.DiceConfig
	Input      phases.Input
	Graphics   phases.GraphicSource
	Rng        rng.Source
	ScreenSize gm.Vec

	// Optional, scores are not persisted if not set
	Scores ScoreRecorder
}

type settings struct {
	Options
}

// turnState is the turn currently played
type turnState struct {
	Participant Participant
	Turn        Turn

	// set once the turn ended and the next phase was requested
	Over bool
}

type computerClock struct {
	Timer phases.Timer
}

// Plugin assembles the dice game.
func Plugin(opts Options) phases.Plugin {
	return phases.PluginFunc(func(app *phases.App) {
		if opts.Config.RollDelay() <= 0 {
			// the computer would never take its turn
			panic(fmt.Errorf("%w: computer roll delay must be positive, got %v",
				phases.ErrConfiguration, opts.Config.RollDelay()))
		}

		app.InsertResource(settings{Options: opts})
		app.InsertResource(NewMatch(opts.Config.TargetScore))

		app.InitPhase(phases.PhaseType[Phase]{
			Initial: MainMenu,
			Phases:  AllPhases,
		})

		app.AddPlugin(phases.NewOverlay(
			&phases.OverlayDescriptor[Phase]{
				Idle:     MainMenu,
				Active:   PlayerTurn,
				Terminal: GameOver,
			},
			phases.OverlayConfig{
				Input:           opts.Input,
				Graphics:        opts.Graphics,
				IdleGraphic:     GraphicMenu,
				TerminalGraphic: GraphicGameOver,
			},
		))

		// a new match starts whenever the menu is left
		app.AddHooks(phases.OnExit(MainMenu), resetMatchSystem)

		app.AddHooks(phases.OnEnter(PlayerTurn), startTurnSystem(Human), spawnBoardSystem)
		app.AddHooks(phases.OnUpdate(PlayerTurn),
			abortSystem,
			playerInputSystem,
			phases.Cleanup(boardTag{}),
			spawnBoardSystem,
		)

		app.AddHooks(phases.OnEnter(ComputerTurn), startTurnSystem(Computer), startComputerClockSystem, spawnBoardSystem)
		app.AddHooks(phases.OnUpdate(ComputerTurn),
			abortSystem,
			computerSystem,
			phases.Cleanup(boardTag{}),
			spawnBoardSystem,
		)

		app.AddHooks(phases.OnEnter(GameOver), recordScoreSystem, spawnResultSystem)
	})
}

func settingsOf(world *phases.World) *settings {
	return phases.MustResourceOf[settings](world)
}
