package phases

// Stage selects when a hook runs relative to the phase it is registered for.
type Stage uint8

const (
	// StageEnter hooks run once, right after the phase became current.
	StageEnter Stage = iota
	// StageUpdate hooks run once per tick while the phase is current.
	StageUpdate
	// StageExit hooks run once, right before the phase stops being current.
	StageExit
)

func (s Stage) String() string {
	switch s {
	case StageEnter:
		return "Enter"
	case StageUpdate:
		return "Update"
	case StageExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
