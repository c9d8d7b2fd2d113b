package dice

// BustFace is the face that ends a turn and discards its total.
const BustFace = 1

// Participant identifies one side of a match.
type Participant int

const (
	Human Participant = iota
	Computer
)

func (p Participant) String() string {
	switch p {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Turn accumulates the rolls of a single turn.
type Turn struct {
	Rolls []int
	Total int
	Bust  bool
}

// Roll adds a rolled face to the turn. Rolling the BustFace loses the turn total.
// It returns true if the turn is over because of a bust.
func (t *Turn) Roll(face int) bool {
	t.Rolls = append(t.Rolls, face)

	if face == BustFace {
		t.Total = 0
		t.Bust = true
		return true
	}

	t.Total += face
	return false
}

// Match tracks the banked scores of both participants.
type Match struct {
	Target int
	Scores [2]int

	// valid once Finished is true
	Winner   Participant
	Finished bool
}

func NewMatch(target int) Match {
	return Match{Target: target}
}

// Bank adds the points to the participants score. Returns true if the
// participant reached the target and won the match.
func (m *Match) Bank(participant Participant, points int) bool {
	if m.Finished {
		return false
	}

	m.Scores[participant] += points

	if m.Scores[participant] >= m.Target {
		m.Winner = participant
		m.Finished = true
	}

	return m.Finished
}

func (m *Match) Score(participant Participant) int {
	return m.Scores[participant]
}

// ComputerHolds decides if the computer stops rolling. It holds once the turn total
// reaches holdAt, or as soon as banking the turn would win the match.
func ComputerHolds(turn Turn, match Match, holdAt int) bool {
	if turn.Total == 0 {
		return false
	}

	if match.Score(Computer)+turn.Total >= match.Target {
		return true
	}

	return turn.Total >= holdAt
}
