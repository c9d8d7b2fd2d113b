// Package dice implements Pig, a push your luck dice game played against the computer.
package dice

type Phase int

const (
	MainMenu Phase = iota
	PlayerTurn
	ComputerTurn
	GameOver
)

var AllPhases = []Phase{MainMenu, PlayerTurn, ComputerTurn, GameOver}

func (p Phase) String() string {
	switch p {
	case MainMenu:
		return "MainMenu"
	case PlayerTurn:
		return "PlayerTurn"
	case ComputerTurn:
		return "ComputerTurn"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

const Id = "dice"

const (
	GraphicMenu     = "dice menu image"
	GraphicGameOver = "dice game-over image"
)

// Graphics lists all graphic ids the game resolves.
var Graphics = []string{GraphicMenu, GraphicGameOver}

// phase a participant plays in
func turnPhaseOf(participant Participant) Phase {
	if participant == Computer {
		return ComputerTurn
	}

	return PlayerTurn
}
