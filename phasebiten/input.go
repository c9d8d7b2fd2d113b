package phasebiten

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/phases"
)

// Keys maps controls to keyboard keys. A control is activated
// in the frame any of its keys was pressed.
type Keys struct {
	bindings map[phases.Control][]ebiten.Key
}

var _ phases.Input = Keys{}

// ParseKeys builds Keys from a mapping of control names to key names, e.g. "Space" or "ArrowUp".
func ParseKeys(controls map[string][]string) (Keys, error) {
	bindings := make(map[phases.Control][]ebiten.Key, len(controls))

	for control, names := range controls {
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return Keys{}, fmt.Errorf("control %q: %w", control, err)
			}

			bindings[phases.Control(control)] = append(bindings[phases.Control(control)], key)
		}
	}

	return Keys{bindings: bindings}, nil
}

func (k Keys) JustActivated(control phases.Control) bool {
	return slices.ContainsFunc(k.bindings[control], inpututil.IsKeyJustPressed)
}
