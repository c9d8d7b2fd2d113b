package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/color"
	"github.com/oliverbestmann/phases/internal/config"
	"github.com/oliverbestmann/phases/internal/games/dice"
	"github.com/oliverbestmann/phases/internal/games/runner"
	"github.com/oliverbestmann/phases/internal/scores"
	"github.com/oliverbestmann/phases/phasebiten"
	"github.com/oliverbestmann/phases/rng"
)

var runnerCmd = &cobra.Command{
	Use:   "runner",
	Short: "Play the side scrolling runner",
	Long: `Keep the ball in the air and steer it through the gaps.

Controls:
  Space/Up   - Flap
  Esc/Q      - Back to menu, quit from the menu`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd, runnerGame)
	},
}

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Play Pig against the computer",
	Long: `Roll the die as often as you like and hold to bank your turn total.
Rolling a one loses everything collected this turn.

Controls:
  Space/Up   - Roll
  H/Enter    - Hold
  Esc/Q      - Back to menu, quit from the menu`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd, diceGame)
	},
}

// environment holds everything a game plugin needs
type environment struct {
	Config config.Config
	Keys   phasebiten.Keys
	Assets *phasebiten.Assets
	Rng    rng.Source
	Scores *scores.Store
}

// gameFunc registers the generated graphics of a game and returns its plugin
// together with the graphic ids it uses.
type gameFunc func(env environment) (phases.Plugin, []string)

func play(cmd *cobra.Command, game gameFunc) error {
	if stop := startProfile(); stop != nil {
		defer stop()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	keys, err := phasebiten.ParseKeys(cfg.Controls)
	if err != nil {
		return fmt.Errorf("parse controls: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	slog.Info("Seeding random number generator", slog.Uint64("seed", seed))

	env := environment{
		Config: cfg,
		Keys:   keys,
		Assets: phasebiten.NewAssets(os.DirFS("."), cfg.Assets),
		Rng:    rng.Synchronized(rng.New(seed)),
	}

	// the games still work without a score database
	store, err := openStore(cmd, cfg)
	if err != nil {
		slog.Warn("Could not open scores database", slog.Any("err", err))
	} else {
		env.Scores = store
		defer func() { _ = store.Close() }()
	}

	var app phases.App

	app.InsertResource(phasebiten.WindowConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})

	plugin, graphics := game(env)

	// fail before a window opens if a configured image is broken
	if err := env.Assets.Preload(graphics...); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	app.AddPlugin(phases.PluginFunc(phasebiten.GamePlugin))
	app.AddPlugin(plugin)

	return app.Run()
}

func runnerGame(env environment) (phases.Plugin, []string) {
	w, h := env.Config.Window.Width, env.Config.Window.Height
	diameter := int(env.Config.Runner.PlayerRadius * 2)

	env.Assets.Generate(runner.GraphicMenu, phasebiten.TitleCard(w, h, color.Hex(0x306082),
		"RUNNER",
		"Press SPACE to start",
		"Press ESC to quit"))

	env.Assets.Generate(runner.GraphicGameOver, phasebiten.TitleCard(w, h, color.Hex(0x803030),
		"GAME OVER",
		"Press SPACE to continue"))

	// sprites are scaled to the size of the player and the walls
	env.Assets.Generate(runner.GraphicPlayer, phasebiten.Box(diameter, diameter, color.Hex(0xf8d038)))
	env.Assets.Generate(runner.GraphicWall, phasebiten.Box(1, 1, color.Hex(0x58a838)))

	opts := runner.Options{
		Config:     env.Config.Runner,
		Input:      env.Keys,
		Graphics:   env.Assets,
		Rng:        env.Rng,
		ScreenSize: phasebiten.WindowConfig{Width: w, Height: h}.Size(),
	}

	// an untyped nil store must not end up in the interface
	if env.Scores != nil {
		opts.Scores = env.Scores
	}

	return runner.Plugin(opts), runner.Graphics
}

func diceGame(env environment) (phases.Plugin, []string) {
	w, h := env.Config.Window.Width, env.Config.Window.Height

	env.Assets.Generate(dice.GraphicMenu, phasebiten.TitleCard(w, h, color.Hex(0x1f5f3f),
		"PIG",
		fmt.Sprintf("First to %d points wins", env.Config.Dice.TargetScore),
		"Press SPACE to start",
		"Press ESC to quit"))

	env.Assets.Generate(dice.GraphicGameOver, phasebiten.TitleCard(w, h, color.Hex(0x3f1f5f),
		"GAME OVER",
		"Press SPACE to continue"))

	opts := dice.Options{
		Config:     env.Config.Dice,
		Input:      env.Keys,
		Graphics:   env.Assets,
		Rng:        env.Rng,
		ScreenSize: phasebiten.WindowConfig{Width: w, Height: h}.Size(),
	}

	if env.Scores != nil {
		opts.Scores = env.Scores
	}

	return dice.Plugin(opts), dice.Graphics
}

func openStore(cmd *cobra.Command, cfg config.Config) (*scores.Store, error) {
	path := cfg.Scores.Database
	if cmd.Flags().Changed("db") {
		path = flagDBPath
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	return scores.Open(path)
}

func startProfile() func() {
	switch flagProfile {
	case "":
		return nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop
	default:
		slog.Warn("Unknown profile kind, profiling disabled", slog.String("profile", flagProfile))
		return nil
	}
}
