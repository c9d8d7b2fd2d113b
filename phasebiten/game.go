// Package phasebiten hosts a phases.App in an ebiten window.
package phasebiten

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/phases"
	"github.com/oliverbestmann/phases/gm"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

// Size returns the logical screen size the game renders at.
func (w WindowConfig) Size() gm.Vec {
	return gm.Vec{X: float64(w.Width), Y: float64(w.Height)}
}

// GamePlugin makes the app run inside an ebiten window.
// Insert a WindowConfig before adding the plugin to configure the window.
func GamePlugin(app *phases.App) {
	if _, ok := phases.ResourceOf[WindowConfig](app.World()); !ok {
		app.InsertResource(WindowConfig{
			Title:  "Ebitengine",
			Width:  800,
			Height: 600,
		})
	}

	app.RunWorld(runGame)
}

func runGame(app *phases.App) error {
	win := *phases.MustResourceOf[WindowConfig](app.World())

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	theGame := &game{
		app:      app,
		window:   win,
		renderer: &renderer{},
	}

	slog.Info("Starting game loop",
		slog.String("title", win.Title),
		slog.Int("width", win.Width),
		slog.Int("height", win.Height))

	err := ebiten.RunGameWithOptions(theGame, &options)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

type game struct {
	app      *phases.App
	window   WindowConfig
	renderer *renderer
}

func (g *game) Update() error {
	// ebiten calls Update at a fixed rate, unless it syncs with the display
	g.app.UpdateWithDelta(phases.FixedDelta(ebiten.TPS()))

	if err, ok := g.app.World().ExitRequested(); ok {
		if err != nil {
			return err
		}

		return ebiten.Termination
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.app.World(), screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// render at a fixed logical size and let ebiten scale to the window
	return g.window.Width, g.window.Height
}
