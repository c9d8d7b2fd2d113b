package phases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedDelta(t *testing.T) {
	require.Equal(t, 20*time.Millisecond, FixedDelta(50))
	require.Equal(t, time.Second/60, FixedDelta(60))

	// e.g. ebiten.SyncWithFPS, which is -1
	require.Equal(t, time.Second/DefaultTicksPerSecond, FixedDelta(-1))
	require.Equal(t, time.Second/DefaultTicksPerSecond, FixedDelta(0))
}

func TestTimeScale(t *testing.T) {
	tm := Time{Scale: 0.5}
	tm.advance(time.Second)

	require.Equal(t, 500*time.Millisecond, tm.Delta)
	require.Equal(t, 500*time.Millisecond, tm.Elapsed)
	require.EqualValues(t, 1, tm.Frame)
}
