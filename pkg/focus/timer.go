// Package focus implements the countdown used by the focus timer window.
// Time is always passed in so callers and tests control the clock.
package focus

import (
	"fmt"
	"time"
)

// Phase is the kind of interval being timed.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "break"
	}
	return "focus"
}

// Default interval lengths.
const (
	DefaultFocus = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

// Timer counts down one phase at a time.
type Timer struct {
	Focus time.Duration
	Break time.Duration

	phase   Phase
	elapsed time.Duration
	started time.Time
	running bool
}

// New returns a stopped timer at the start of a focus phase.
func New(focusLen, breakLen time.Duration) *Timer {
	if focusLen <= 0 {
		focusLen = DefaultFocus
	}
	if breakLen <= 0 {
		breakLen = DefaultBreak
	}
	return &Timer{Focus: focusLen, Break: breakLen}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Length returns the duration of the current phase.
func (t *Timer) Length() time.Duration {
	if t.phase == PhaseBreak {
		return t.Break
	}
	return t.Focus
}

// Start resumes the countdown at now.
func (t *Timer) Start(now time.Time) {
	if t.running {
		return
	}
	t.running = true
	t.started = now
}

// Pause stops the countdown at now, keeping the elapsed time.
func (t *Timer) Pause(now time.Time) {
	if !t.running {
		return
	}
	t.elapsed += now.Sub(t.started)
	t.running = false
}

// Toggle starts a paused timer or pauses a running one.
func (t *Timer) Toggle(now time.Time) {
	if t.running {
		t.Pause(now)
		return
	}
	t.Start(now)
}

// Reset stops the timer and rewinds the current phase.
func (t *Timer) Reset() {
	t.running = false
	t.elapsed = 0
	t.started = time.Time{}
}

// Elapsed returns time spent in the current phase.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	e := t.elapsed
	if t.running {
		e += now.Sub(t.started)
	}
	if l := t.Length(); e > l {
		e = l
	}
	return e
}

// Remaining returns time left in the current phase.
func (t *Timer) Remaining(now time.Time) time.Duration {
	return t.Length() - t.Elapsed(now)
}

// Done reports whether the current phase has run out.
func (t *Timer) Done(now time.Time) bool {
	return t.Remaining(now) <= 0
}

// Advance moves to the next phase, stopped. It returns the phase that
// finished.
func (t *Timer) Advance() Phase {
	finished := t.phase
	t.Reset()
	if t.phase == PhaseFocus {
		t.phase = PhaseBreak
	} else {
		t.phase = PhaseFocus
	}
	return finished
}

// Format renders d as mm:ss.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}
