// Package timer implements the staged countdown state machine: an ordered
// list of named stages, a cursor over the active stage, and a pause flag.
// Time only enters through Advance, which applies exactly one elapsed second.
package timer

import (
	"github.com/stagedtimer/staged/internal/errors"
)

// Stage is one named countdown segment.
// Invariant: 0 <= Elapsed <= Duration, both in whole seconds.
type Stage struct {
	Name     string
	Duration int
	Elapsed  int
}

// Remaining returns the seconds left on the stage.
func (s Stage) Remaining() int {
	return s.Duration - s.Elapsed
}

// CompletionRatio returns the elapsed fraction of the stage, in [0, 1].
func (s Stage) CompletionRatio() float64 {
	return float64(s.Elapsed) / float64(s.Duration)
}

// Timer owns the stage list, the active-stage cursor, and the pause flag.
// current == len(stages) is the terminal state: the sequence is complete.
type Timer struct {
	stages  []Stage
	current int
	paused  bool
}

// New validates the stage list and constructs a timer positioned at the
// first stage. Every duration must be at least one second; a zero-length
// stage would complete before its first tick and is rejected up front
// rather than trusted at advance time.
func New(stages []Stage) (*Timer, error) {
	if len(stages) == 0 {
		return nil, errors.New(errors.ErrTimer,
			"No stages to run",
			"Pass at least one --name/--time pair")
	}
	for _, s := range stages {
		if s.Duration < 1 {
			return nil, errors.NewInvalidDuration(s.Name)
		}
	}

	owned := make([]Stage, len(stages))
	copy(owned, stages)
	return &Timer{stages: owned}, nil
}

// Advance applies one elapsed second and reports whether the timer is
// still running.
//
// In the terminal state it returns false and mutates nothing, so repeated
// calls after completion are harmless. While paused it returns true and
// mutates nothing: the tick is consumed but no time passes. Otherwise the
// active stage gains one elapsed second; when that empties the stage's
// remaining time the cursor moves to the next stage. The return value is
// false exactly when this call completed the final stage.
func (t *Timer) Advance() bool {
	if t.current >= len(t.stages) {
		return false
	}
	if t.paused {
		return true
	}

	s := &t.stages[t.current]
	s.Elapsed++
	if s.Remaining() == 0 {
		t.current++
	}

	return t.current < len(t.stages)
}

// TogglePause unconditionally flips the pause flag. It never touches
// elapsed time or the cursor, and it is accepted in the terminal state
// where it has no observable effect since Advance already short-circuits.
func (t *Timer) TogglePause() {
	t.paused = !t.paused
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Current returns the index of the active stage. It equals Len() once the
// sequence is complete.
func (t *Timer) Current() int {
	return t.current
}

// Len returns the number of stages.
func (t *Timer) Len() int {
	return len(t.stages)
}

// Done reports whether the sequence has completed.
func (t *Timer) Done() bool {
	return t.current >= len(t.stages)
}

// Stages returns a copy of the stage list. The timer is the sole mutator
// of stage state; callers get a snapshot, not a live reference.
func (t *Timer) Stages() []Stage {
	out := make([]Stage, len(t.stages))
	copy(out, t.stages)
	return out
}

// StageAt returns a snapshot of the stage at index i.
func (t *Timer) StageAt(i int) (Stage, bool) {
	if i < 0 || i >= len(t.stages) {
		return Stage{}, false
	}
	return t.stages[i], true
}
