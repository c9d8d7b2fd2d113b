package dice

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/color"
	"github.com/oliverbestmann/phases/gm"
)

const dieSides = 6

var (
	colorTable    = color.Hex(0x1f5f3f)
	colorDie      = color.White
	colorBustDie  = color.Hex(0xd04040)
	colorComputer = color.Hex(0x2f3f6f)
)

// boardTag marks everything displaying the board. The board is rebuilt every frame.
type boardTag struct{}

func resetMatchSystem(world *phases.World) {
	target := settingsOf(world).Config.TargetScore
	world.InsertResource(NewMatch(target))
}

func startTurnSystem(participant Participant) phases.Action {
	return func(world *phases.World) {
		world.InsertResource(turnState{Participant: participant})

		clearColor := colorTable
		if participant == Computer {
			clearColor = colorComputer
		}

		world.Spawn(
			phases.DespawnOnExit(turnPhaseOf(participant)),
			phases.Named("Camera"),
			phases.Camera{ClearColor: clearColor},
		)
	}
}

func startComputerClockSystem(world *phases.World) {
	delay := settingsOf(world).Config.RollDelay()
	world.InsertResource(computerClock{
		Timer: phases.NewTimer(delay, phases.TimerModeRepeating),
	})
}

// abortSystem gives up the running match and returns to the menu.
func abortSystem(world *phases.World) {
	if settingsOf(world).Input.JustActivated(phases.ControlQuit) {
		phases.RequestPhase(world, MainMenu)
	}
}

func playerInputSystem(world *phases.World) {
	opts := settingsOf(world)
	state := phases.MustResourceOf[turnState](world)

	if state.Over {
		return
	}

	switch {
	case opts.Input.JustActivated(phases.ControlAction):
		roll(world, state)

	case opts.Input.JustActivated(phases.ControlHold):
		hold(world, state)
	}
}

func computerSystem(world *phases.World) {
	opts := settingsOf(world)
	state := phases.MustResourceOf[turnState](world)
	clock := phases.MustResourceOf[computerClock](world)

	delta := phases.MustResourceOf[phases.Time](world).Delta

	for range clock.Timer.Tick(delta).TimesFinishedThisTick() {
		if state.Over {
			return
		}

		match := phases.MustResourceOf[Match](world)

		if ComputerHolds(state.Turn, *match, opts.Config.ComputerHoldAt) {
			hold(world, state)
		} else {
			roll(world, state)
		}
	}
}

func roll(world *phases.World, state *turnState) {
	face := settingsOf(world).Rng.Die(dieSides)

	bust := state.Turn.Roll(face)

	slog.Debug("Roll",
		slog.Any("participant", state.Participant),
		slog.Int("face", face),
		slog.Int("turnTotal", state.Turn.Total))

	if bust {
		state.Over = true
		phases.RequestPhase(world, turnPhaseOf(opponentOf(state.Participant)))
	}
}

func hold(world *phases.World, state *turnState) {
	match := phases.MustResourceOf[Match](world)

	state.Over = true

	won := match.Bank(state.Participant, state.Turn.Total)

	slog.Debug("Hold",
		slog.Any("participant", state.Participant),
		slog.Int("banked", state.Turn.Total),
		slog.Int("score", match.Score(state.Participant)))

	if won {
		phases.RequestPhase(world, GameOver)
		return
	}

	phases.RequestPhase(world, turnPhaseOf(opponentOf(state.Participant)))
}

func opponentOf(participant Participant) Participant {
	if participant == Human {
		return Computer
	}

	return Human
}

func spawnBoardSystem(world *phases.World) {
	opts := settingsOf(world)
	match := phases.MustResourceOf[Match](world)
	state := phases.MustResourceOf[turnState](world)

	scoped := phases.DespawnOnExit(turnPhaseOf(state.Participant))
	center := opts.ScreenSize.Mul(0.5)

	spawnText := func(x, y float64, text string) {
		world.Spawn(
			boardTag{},
			scoped,
			phases.Text{Text: text},
			phases.TransformFromXY(x, y),
			phases.Layer{Z: 2},
		)
	}

	spawnText(16, 16, fmt.Sprintf("You: %d   Computer: %d   Target: %d",
		match.Score(Human), match.Score(Computer), match.Target))

	spawnText(16, 40, fmt.Sprintf("%s turn: %d", state.Participant, state.Turn.Total))

	if len(state.Turn.Rolls) > 0 {
		spawnText(16, 64, "Rolls: "+formatRolls(state.Turn.Rolls))

		last := state.Turn.Rolls[len(state.Turn.Rolls)-1]

		dieColor := colorDie
		if last == BustFace {
			dieColor = colorBustDie
		}

		world.Spawn(
			boardTag{},
			scoped,
			phases.Named("Die"),
			phases.Rectangle{Size: gm.VecSplat(64), Color: dieColor},
			phases.Transform{Translation: center},
			phases.Layer{Z: 1},
		)

		spawnText(center.X-3, center.Y-8, fmt.Sprintf("%d", last))
	}

	if state.Participant == Human {
		spawnText(16, opts.ScreenSize.Y-32, "SPACE to roll, H to hold, ESC to give up")
	} else {
		spawnText(16, opts.ScreenSize.Y-32, "The computer is rolling")
	}
}

func formatRolls(rolls []int) string {
	var sb strings.Builder

	for idx, face := range rolls {
		if idx > 0 {
			sb.WriteString(" ")
		}

		_, _ = fmt.Fprintf(&sb, "%d", face)
	}

	return sb.String()
}

func recordScoreSystem(world *phases.World) {
	opts := settingsOf(world)
	match := phases.MustResourceOf[Match](world)

	slog.Info("Match finished",
		slog.Any("winner", match.Winner),
		slog.Int("human", match.Score(Human)),
		slog.Int("computer", match.Score(Computer)))

	if opts.Scores == nil {
		return
	}

	if err := opts.Scores.Record(Id, match.Score(Human)); err != nil {
		slog.Warn("Failed to record score", slog.Any("err", err))
	}
}

func spawnResultSystem(world *phases.World) {
	opts := settingsOf(world)
	match := phases.MustResourceOf[Match](world)

	message := "The computer wins"
	if match.Winner == Human {
		message = "You win"
	}

	world.Spawn(
		phases.DespawnOnExit(GameOver),
		phases.Named("Result"),
		phases.Text{Text: fmt.Sprintf("%s! %d to %d", message, match.Score(Human), match.Score(Computer))},
		phases.TransformFromXY(opts.ScreenSize.X/2-80, opts.ScreenSize.Y-48),
		phases.Layer{Z: 10},
	)
}
