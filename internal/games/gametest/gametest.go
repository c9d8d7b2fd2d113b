// Package gametest provides fakes to drive games headless in tests.
package gametest

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/oliverbestmann/phases"
)

// Input activates controls for exactly one frame, until EndFrame is called.
type Input struct {
	active map[phases.Control]bool
}

func (f *Input) Press(control phases.Control) {
	if f.active == nil {
		f.active = map[phases.Control]bool{}
	}

	f.active[control] = true
}

func (f *Input) JustActivated(control phases.Control) bool {
	return f.active[control]
}

func (f *Input) EndFrame() {
	clear(f.active)
}

// Graphics resolves every id to a small blank image and remembers the ids requested.
// Ids listed in Missing fail to resolve.
type Graphics struct {
	Requested []string
	Missing   []string
}

func (g *Graphics) Graphic(id string) (phases.Graphic, error) {
	g.Requested = append(g.Requested, id)

	if slices.Contains(g.Missing, id) {
		return nil, fmt.Errorf("no graphic %q", id)
	}

	return image.NewRGBA(image.Rect(0, 0, 16, 16)), nil
}

// MissingGraphics fails for every id.
type MissingGraphics struct{}

func (MissingGraphics) Graphic(id string) (phases.Graphic, error) {
	return nil, fmt.Errorf("no graphic %q", id)
}

type Score struct {
	Game  string
	Score int
}

// Scores records scores in memory.
type Scores struct {
	mu      sync.Mutex
	Entries []Score
	Err     error
}

func (s *Scores) Record(game string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	s.Entries = append(s.Entries, Score{Game: game, Score: score})
	return nil
}

// FrameDelta is the time step used by Frame, matching a 60 ticks per second host.
var FrameDelta = phases.FixedDelta(phases.DefaultTicksPerSecond)

// Frame runs a single frame of the app and releases all pressed controls.
func Frame(app *phases.App, input *Input) {
	app.UpdateWithDelta(FrameDelta)
	input.EndFrame()
}
