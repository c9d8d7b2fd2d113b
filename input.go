package phases

// Control names a logical input, e.g. "confirm". Hosts map controls to physical keys.
type Control string

const (
	ControlConfirm Control = "confirm"
	ControlQuit    Control = "quit"
	ControlAction  Control = "action"
	ControlHold    Control = "hold"
)

// Input reports discrete activations of controls.
type Input interface {
	// JustActivated returns true if the control was activated during the current frame.
	JustActivated(control Control) bool
}

// GraphicSource resolves graphics by their identifier, e.g. "main menu image".
type GraphicSource interface {
	Graphic(id string) (Graphic, error)
}
