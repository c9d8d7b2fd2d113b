package phases

import (
	"time"
)

// Time tracks the progression of time as seen by the actions.
//
// The progression of time can be scaled by setting the Scale field.
// This will scale the Delta and DeltaSecs values starting at the next frame.
// Set Scale to zero to freeze time, e.g. while a game is paused.
type Time struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	// Number of frames since the app started
	Frame uint64

	Scale float64
}

func (t *Time) advance(delta time.Duration) {
	t.Frame += 1

	t.Delta = time.Duration(float64(delta) * t.Scale)
	t.DeltaSecs = t.Delta.Seconds()
	t.Elapsed += t.Delta
}

// DefaultTicksPerSecond is assumed when a host reports no fixed tick rate.
const DefaultTicksPerSecond = 60

// FixedDelta returns the duration of one tick at the given tick rate. Hosts that
// do not run at a fixed rate report a non positive value, the default is used then.
func FixedDelta(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		ticksPerSecond = DefaultTicksPerSecond
	}

	return time.Second / time.Duration(ticksPerSecond)
}
