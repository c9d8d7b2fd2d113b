package dice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurnAccumulates(t *testing.T) {
	var turn Turn

	require.False(t, turn.Roll(4))
	require.False(t, turn.Roll(6))

	require.Equal(t, 10, turn.Total)
	require.Equal(t, []int{4, 6}, turn.Rolls)
	require.False(t, turn.Bust)
}

func TestTurnBusts(t *testing.T) {
	var turn Turn

	turn.Roll(5)
	require.True(t, turn.Roll(BustFace))

	require.Zero(t, turn.Total)
	require.True(t, turn.Bust)
	require.Equal(t, []int{5, 1}, turn.Rolls)
}

func TestMatchBank(t *testing.T) {
	match := NewMatch(20)

	require.False(t, match.Bank(Human, 12))
	require.False(t, match.Bank(Computer, 19))
	require.False(t, match.Finished)

	require.True(t, match.Bank(Human, 8))
	require.True(t, match.Finished)
	require.Equal(t, Human, match.Winner)
	require.Equal(t, 20, match.Score(Human))

	// a finished match does not change anymore
	require.False(t, match.Bank(Computer, 5))
	require.Equal(t, 19, match.Score(Computer))
	require.Equal(t, Human, match.Winner)
}

func TestComputerHolds(t *testing.T) {
	match := NewMatch(50)

	require.False(t, ComputerHolds(Turn{}, match, 15))
	require.False(t, ComputerHolds(Turn{Total: 14}, match, 15))
	require.True(t, ComputerHolds(Turn{Total: 15}, match, 15))

	// holds early if banking wins the match
	match.Scores[Computer] = 46
	require.True(t, ComputerHolds(Turn{Total: 4}, match, 15))
	require.False(t, ComputerHolds(Turn{Total: 3}, match, 15))
}

func TestParticipantString(t *testing.T) {
	require.Equal(t, "Human", Human.String())
	require.Equal(t, "Computer", Computer.String())
	require.Equal(t, "Unknown", Participant(7).String())
}
