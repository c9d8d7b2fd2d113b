package phases

import (
	"time"
)

type TimerMode uint8

const (
	// TimerModeOnce fires a single time and then stays expired until Reset.
	TimerModeOnce TimerMode = iota
	// TimerModeRepeating fires every period and carries the remainder into the next one.
	TimerModeRepeating
)

// Timer counts frame deltas towards a period. It is a plain value, store it in a
// resource or component and advance it from an action using Time.Delta.
// A timer without a positive period never fires.
type Timer struct {
	period   time.Duration
	progress time.Duration

	// periods completed by the latest Tick
	laps    int
	expired bool
	mode    TimerMode
}

func NewTimer(period time.Duration, mode TimerMode) Timer {
	return Timer{period: period, mode: mode}
}

func NewTimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer and returns it, so calls can be chained
// with JustFinished or TimesFinishedThisTick.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.laps = 0

	if t.expired || t.period <= 0 {
		return t
	}

	t.progress += delta
	if t.progress < t.period {
		return t
	}

	if t.mode == TimerModeRepeating {
		t.laps = int(t.progress / t.period)
		t.progress %= t.period
		return t
	}

	t.laps = 1
	t.progress = t.period
	t.expired = true

	return t
}

func (t *Timer) Duration() time.Duration {
	return t.period
}

// Elapsed is the progress within the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.progress
}

// Fraction is the progress within the current period in the range [0, 1].
func (t *Timer) Fraction() float64 {
	if t.period <= 0 {
		return 1
	}

	return float64(t.progress) / float64(t.period)
}

// Finished reports an expired TimerModeOnce timer. Repeating timers never expire.
func (t *Timer) Finished() bool {
	return t.expired
}

func (t *Timer) JustFinished() bool {
	return t.laps > 0
}

func (t *Timer) TimesFinishedThisTick() int {
	return t.laps
}

func (t *Timer) Reset() {
	*t = Timer{period: t.period, mode: t.mode}
}
