package runner

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/color"
	"github.com/oliverbestmann/phases/gm"
)

var colorSky = color.Hex(0x70c5ce)

const (
	layerWalls  = 1.0
	layerPlayer = 2.0
	layerHud    = 10.0
)

// keep the gap away from the top and bottom edge of the screen
const gapMargin = 40.0

// Wall is one half of a wall pair. Only the upper half is Scoring.
type Wall struct {
	Size    gm.Vec
	Scoring bool
	Passed  bool
}

// ScoreText marks the text entity displaying the current score.
type ScoreText struct{}

type wallSpawner struct {
	Timer phases.Timer
}

// visuals holds the graphics of a round, resolved when the round starts.
type visuals struct {
	Player phases.Graphic
	Wall   phases.Graphic
}

func resolveGraphic(source phases.GraphicSource, id string) phases.Graphic {
	graphic, err := source.Graphic(id)
	if err != nil {
		panic(fmt.Errorf("%w: runner graphic %q: %w", phases.ErrConfiguration, id, err))
	}

	return graphic
}

func spawnPlayingSystem(world *phases.World) {
	opts := settingsOf(world)
	space := phases.MustResourceOf[physicsSpace](world).Space

	phases.MustResourceOf[Session](world).Score = 0

	look := visuals{
		Player: resolveGraphic(opts.Graphics, GraphicPlayer),
		Wall:   resolveGraphic(opts.Graphics, GraphicWall),
	}

	world.InsertResource(look)

	world.InsertResource(wallSpawner{
		Timer: phases.NewTimerFromSeconds(opts.Config.WallInterval, phases.TimerModeRepeating),
	})

	scoped := phases.DespawnOnExit(Playing)

	world.Spawn(
		scoped,
		phases.Named("Camera"),
		phases.Camera{ClearColor: colorSky},
	)

	position := gm.Vec{X: opts.ScreenSize.X * 0.25, Y: opts.ScreenSize.Y * 0.5}
	radius := opts.Config.PlayerRadius

	world.Spawn(
		scoped,
		phases.Named("Player"),
		newPlayer(space, position, radius),
		phases.Transform{Translation: position},
		phases.Sprite{Graphic: look.Player, Size: gm.VecSplat(radius * 2)},
		phases.Layer{Z: layerPlayer},
	)

	world.Spawn(
		scoped,
		phases.Named("Score"),
		ScoreText{},
		phases.Text{Text: scoreLabel(0)},
		phases.TransformFromXY(16, 16),
		phases.Layer{Z: layerHud},
	)
}

// abortSystem returns to the menu when the player quits a running round.
func abortSystem(world *phases.World) {
	if settingsOf(world).Input.JustActivated(phases.ControlQuit) {
		phases.RequestPhase(world, MainMenu)
	}
}

func spawnWallsSystem(world *phases.World) {
	opts := settingsOf(world)
	delta := phases.MustResourceOf[phases.Time](world).Delta
	spawner := phases.MustResourceOf[wallSpawner](world)

	for range spawner.Timer.Tick(delta).TimesFinishedThisTick() {
		spawnWallPair(world, opts)
	}
}

func spawnWallPair(world *phases.World, opts *settings) {
	cfg := opts.Config
	height := opts.ScreenSize.Y
	look := phases.MustResourceOf[visuals](world)

	gapSize := float64(opts.Rng.Range(int(cfg.MinGap), int(cfg.MaxGap)))

	minCenter := int(gapMargin + gapSize/2)
	maxCenter := int(height - gapMargin - gapSize/2)
	gapCenter := float64(opts.Rng.Range(minCenter, maxCenter))

	// start just outside the right edge of the screen
	x := opts.ScreenSize.X + cfg.WallWidth/2

	upper, lower := wallPair(x, gapCenter, gapSize, cfg.WallWidth, height)

	slog.Debug("Spawn wall pair",
		slog.Float64("gapCenter", gapCenter),
		slog.Float64("gapSize", gapSize))

	for idx, wall := range []wallPiece{upper, lower} {
		world.Spawn(
			phases.DespawnOnExit(Playing),
			phases.Named("Wall"),
			Wall{Size: wall.Size, Scoring: idx == 0},
			phases.Transform{Translation: wall.Center},
			phases.Sprite{Graphic: look.Wall, Size: wall.Size},
			phases.Layer{Z: layerWalls},
		)
	}
}

type wallPiece struct {
	Center gm.Vec
	Size   gm.Vec
}

// wallPair calculates the upper and lower wall around a gap.
func wallPair(x, gapCenter, gapSize, width, height float64) (upper, lower wallPiece) {
	gapTop := gapCenter - gapSize/2
	gapBottom := gapCenter + gapSize/2

	upper = wallPiece{
		Center: gm.Vec{X: x, Y: gapTop / 2},
		Size:   gm.Vec{X: width, Y: gapTop},
	}

	lower = wallPiece{
		Center: gm.Vec{X: x, Y: (gapBottom + height) / 2},
		Size:   gm.Vec{X: width, Y: height - gapBottom},
	}

	return upper, lower
}

func scrollWallsSystem(world *phases.World) {
	opts := settingsOf(world)
	dt := phases.MustResourceOf[phases.Time](world).DeltaSecs

	for entityId, wall := range phases.Each[Wall](world) {
		transform, ok := phases.Get[phases.Transform](world, entityId)
		if !ok {
			continue
		}

		transform.Translation.X -= opts.Config.ScrollSpeed * dt

		if transform.Translation.X+wall.Size.X/2 < 0 {
			world.Despawn(entityId)
		}
	}
}

func passWallsSystem(world *phases.World) {
	playerId, player, ok := phases.Single[Player](world)
	if !ok {
		return
	}

	playerLeft := phases.MustGet[phases.Transform](world, playerId).Translation.X - player.Radius

	session := phases.MustResourceOf[Session](world)

	for entityId, wall := range phases.Each[Wall](world) {
		if !wall.Scoring || wall.Passed {
			continue
		}

		transform := phases.MustGet[phases.Transform](world, entityId)
		if transform.Translation.X+wall.Size.X/2 < playerLeft {
			wall.Passed = true
			session.Score += 1
		}
	}
}

func collisionSystem(world *phases.World) {
	opts := settingsOf(world)

	playerId, player, ok := phases.Single[Player](world)
	if !ok {
		return
	}

	position := phases.MustGet[phases.Transform](world, playerId).Translation

	if position.Y-player.Radius < 0 || position.Y+player.Radius > opts.ScreenSize.Y {
		slog.Info("Player left the screen", slog.Any("position", position))
		phases.RequestPhase(world, GameOver)
		return
	}

	for entityId, wall := range phases.Each[Wall](world) {
		wallCenter := phases.MustGet[phases.Transform](world, entityId).Translation

		if overlaps(position, player.Radius, wallCenter, wall.Size) {
			slog.Info("Player hit a wall", slog.Any("position", position))
			phases.RequestPhase(world, GameOver)
			return
		}
	}
}

func updateScoreTextSystem(world *phases.World) {
	session := phases.MustResourceOf[Session](world)

	for entityId := range phases.Each[ScoreText](world) {
		if text, ok := phases.Get[phases.Text](world, entityId); ok {
			text.Text = scoreLabel(session.Score)
		}
	}
}

func recordScoreSystem(world *phases.World) {
	opts := settingsOf(world)
	session := phases.MustResourceOf[Session](world)

	session.Best = max(session.Best, session.Score)

	if opts.Scores == nil {
		return
	}

	if err := opts.Scores.Record(Id, session.Score); err != nil {
		slog.Warn("Failed to record score", slog.Int("score", session.Score), slog.Any("err", err))
	}
}

func spawnGameOverSystem(world *phases.World) {
	opts := settingsOf(world)
	session := phases.MustResourceOf[Session](world)

	world.Spawn(
		phases.DespawnOnExit(GameOver),
		phases.Named("FinalScore"),
		phases.Text{Text: fmt.Sprintf("Score: %d   Best: %d", session.Score, session.Best)},
		phases.TransformFromXY(opts.ScreenSize.X/2-60, opts.ScreenSize.Y-48),
		phases.Layer{Z: layerHud},
	)
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
