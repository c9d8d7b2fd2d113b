package dice

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/gm"
	"github.com/oliverbestmann/phases/internal/config"
	"github.com/oliverbestmann/phases/internal/games/gametest"
	"github.com/oliverbestmann/phases/rng"
	"github.com/stretchr/testify/require"
)

// scriptedDice returns the scripted faces in order. All other methods
// delegate to a seeded generator.
type scriptedDice struct {
	*rng.Rng
	faces []int
}

func (s *scriptedDice) Die(sides int) int {
	if len(s.faces) == 0 {
		panic("no more scripted faces")
	}

	face := s.faces[0]
	s.faces = s.faces[1:]
	return face
}

type fixture struct {
	app    *phases.App
	input  *gametest.Input
	scores *gametest.Scores
	dice   *scriptedDice
}

func newFixture(t *testing.T, faces ...int) fixture {
	t.Helper()

	cfg := config.DiceConfig{
		TargetScore:       20,
		ComputerHoldAt:    10,
		ComputerRollDelay: 0.1,
	}

	f := fixture{
		app:    &phases.App{},
		input:  &gametest.Input{},
		scores: &gametest.Scores{},
		dice:   &scriptedDice{Rng: rng.New(1), faces: faces},
	}

	f.app.AddPlugin(Plugin(Options{
		Config:     cfg,
		Input:      f.input,
		Graphics:   &gametest.Graphics{},
		Rng:        f.dice,
		ScreenSize: gm.Vec{X: 800, Y: 600},
		Scores:     f.scores,
	}))

	return f
}

func (f fixture) frame() {
	gametest.Frame(f.app, f.input)
}

func (f fixture) press(control phases.Control) {
	f.input.Press(control)
	f.frame()
}

func (f fixture) phase() Phase {
	return phases.CurrentPhase[Phase](f.app.World())
}

func (f fixture) match() *Match {
	return phases.MustResourceOf[Match](f.app.World())
}

func (f fixture) startMatch(t *testing.T) {
	t.Helper()

	f.frame()
	require.Equal(t, MainMenu, f.phase())

	f.press(phases.ControlConfirm)
	f.frame()

	require.Equal(t, PlayerTurn, f.phase())
}

// runUntil runs frames until the phase is reached. Fails after a simulated minute.
func (f fixture) runUntil(t *testing.T, phase Phase) {
	t.Helper()

	for range 60 * 60 {
		if f.phase() == phase {
			return
		}

		f.frame()
	}

	require.Failf(t, "phase not reached", "expected %s, still in %s", phase, f.phase())
}

func boardTexts(world *phases.World) []string {
	var texts []string
	for _, entityId := range world.Tagged(boardTag{}) {
		if text, ok := phases.Get[phases.Text](world, entityId); ok {
			texts = append(texts, text.Text)
		}
	}

	return texts
}

func TestPlayerRollsAndHolds(t *testing.T) {
	// the computer busts right away
	f := newFixture(t, 4, 6, 1)
	f.startMatch(t)

	f.press(phases.ControlAction)
	f.press(phases.ControlAction)

	state := phases.MustResourceOf[turnState](f.app.World())
	require.Equal(t, 10, state.Turn.Total)
	require.Contains(t, boardTexts(f.app.World()), "Rolls: 4 6")

	f.press(phases.ControlHold)
	f.frame()

	require.Equal(t, ComputerTurn, f.phase())
	require.Equal(t, 10, f.match().Score(Human))

	f.runUntil(t, PlayerTurn)
	require.Equal(t, 0, f.match().Score(Computer))
}

func TestPlayerBusts(t *testing.T) {
	// the computer rolls 6 and 5, then holds
	f := newFixture(t, 3, 1, 6, 5)
	f.startMatch(t)

	f.press(phases.ControlAction)
	f.press(phases.ControlAction)
	f.frame()

	require.Equal(t, ComputerTurn, f.phase())
	require.Equal(t, 0, f.match().Score(Human))

	f.runUntil(t, PlayerTurn)
	require.Equal(t, 11, f.match().Score(Computer))
}

func TestPlayerWins(t *testing.T) {
	f := newFixture(t, 6, 6, 6, 2)
	f.startMatch(t)

	for range 4 {
		f.press(phases.ControlAction)
	}

	f.press(phases.ControlHold)
	f.frame()

	require.Equal(t, GameOver, f.phase())
	require.True(t, f.match().Finished)
	require.Equal(t, Human, f.match().Winner)

	require.Equal(t, []gametest.Score{{Game: Id, Score: 20}}, f.scores.Entries)

	world := f.app.World()
	require.Empty(t, world.Tagged(boardTag{}))
	require.Len(t, world.Tagged(phases.DespawnOnExit(GameOver)), 1)
}

func TestComputerWins(t *testing.T) {
	f := newFixture(t, 6)
	f.startMatch(t)

	// a head start, so a single roll is enough for the computer to win
	f.match().Scores[Computer] = 15

	// the human passes without rolling
	f.press(phases.ControlHold)
	f.frame()
	require.Equal(t, ComputerTurn, f.phase())

	f.runUntil(t, GameOver)
	require.Equal(t, Computer, f.match().Winner)
	require.Equal(t, 21, f.match().Score(Computer))

	require.Equal(t, []gametest.Score{{Game: Id, Score: 0}}, f.scores.Entries)
}

func TestNewMatchAfterGameOver(t *testing.T) {
	f := newFixture(t, 6, 6, 6, 2)
	f.startMatch(t)

	for range 4 {
		f.press(phases.ControlAction)
	}

	f.press(phases.ControlHold)
	f.frame()
	require.Equal(t, GameOver, f.phase())

	f.press(phases.ControlConfirm)
	f.frame()
	require.Equal(t, MainMenu, f.phase())

	f.press(phases.ControlConfirm)
	f.frame()
	require.Equal(t, PlayerTurn, f.phase())

	require.False(t, f.match().Finished)
	require.Zero(t, f.match().Score(Human))
}

func TestBoardIsRebuiltEachFrame(t *testing.T) {
	f := newFixture(t)
	f.startMatch(t)

	world := f.app.World()
	before := len(world.Tagged(boardTag{}))
	require.Positive(t, before)

	for range 5 {
		f.frame()
	}

	require.Len(t, world.Tagged(boardTag{}), before)
}

func TestAbortReturnsToMenu(t *testing.T) {
	f := newFixture(t)
	f.startMatch(t)

	f.press(phases.ControlQuit)
	f.frame()

	require.Equal(t, MainMenu, f.phase())
	require.Empty(t, f.app.World().Tagged(boardTag{}))
	require.Empty(t, f.scores.Entries)

	_, exit := f.app.World().ExitRequested()
	require.False(t, exit)

	// quitting from the menu exits the app
	f.press(phases.ControlQuit)

	_, exit = f.app.World().ExitRequested()
	require.True(t, exit)
}

func requireConfigurationPanic(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, ok := recovered.(error)
		require.True(t, ok, "expected an error, got %v", recovered)
		require.True(t, errors.Is(err, phases.ErrConfiguration), "got %v", err)
	}()

	fn()
}

func TestZeroRollDelayIsRejected(t *testing.T) {
	var app phases.App

	requireConfigurationPanic(t, func() {
		app.AddPlugin(Plugin(Options{
			Config:   config.DiceConfig{TargetScore: 20, ComputerHoldAt: 10},
			Input:    &gametest.Input{},
			Graphics: &gametest.Graphics{},
			Rng:      rng.New(1),
		}))
	})
}

func TestMissingMenuGraphic(t *testing.T) {
	var app phases.App

	app.AddPlugin(Plugin(Options{
		Config:   config.DiceConfig{TargetScore: 20, ComputerHoldAt: 10, ComputerRollDelay: 0.1},
		Input:    &gametest.Input{},
		Graphics: gametest.MissingGraphics{},
		Rng:      rng.New(1),
	}))

	// entering the menu needs the menu graphic
	requireConfigurationPanic(t, func() {
		app.UpdateWithDelta(gametest.FrameDelta)
	})
}
