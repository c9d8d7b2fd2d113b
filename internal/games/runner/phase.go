// Package runner implements a side scrolling obstacle avoidance game.
// The player keeps a falling ball in the air and steers it through gaps in walls.
package runner

// Phase is the top level phase of the runner game.
type Phase int

const (
	MainMenu Phase = iota
	Playing
	GameOver
)

var AllPhases = []Phase{MainMenu, Playing, GameOver}

func (p Phase) String() string {
	switch p {
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Id identifies the game in the score database.
const Id = "runner"

// Graphic ids used by the game. The player and wall graphics are scaled to
// the size of the objects they show.
const (
	GraphicMenu     = "main menu image"
	GraphicGameOver = "game-over image"
	GraphicPlayer   = "runner player image"
	GraphicWall     = "runner wall image"
)

// Graphics lists all graphic ids the game resolves.
var Graphics = []string{GraphicMenu, GraphicGameOver, GraphicPlayer, GraphicWall}
