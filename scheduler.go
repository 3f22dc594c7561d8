package picker

import (
	"sort"
	"time"
)

// CommandKind identifies a deferred command. At most one command of each
// kind is pending at a time: posting a new one replaces any pending
// instance of the same kind.
type CommandKind int

const (
	// CommandLongPress repeats a discrete increment/decrement while an
	// inert zone is held.
	CommandLongPress CommandKind = iota
	// CommandSoftInput begins text entry after a long press on the
	// middle row.
	CommandSoftInput
	// CommandSelect applies a deferred text-selection update in the
	// editor after a unique display-mapping match.
	CommandSelect
	// CommandPressFade clears the pressed-state pulse on a tapped
	// increment/decrement zone.
	CommandPressFade
)

type command struct {
	kind CommandKind
	due  time.Time
	fn   func(now time.Time)
}

// Scheduler is a cancellable deferred-command service keyed by command
// identity. It holds no goroutines or timers of its own: the host event
// loop pumps it by calling Advance with the current time, so all
// callbacks run on the single event-processing thread.
type Scheduler struct {
	pending map[CommandKind]*command
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[CommandKind]*command)}
}

// Post schedules fn to run once now+delay has passed, replacing any
// pending command of the same kind.
func (s *Scheduler) Post(kind CommandKind, now time.Time, delay time.Duration, fn func(now time.Time)) {
	s.pending[kind] = &command{kind: kind, due: now.Add(delay), fn: fn}
}

// Cancel drops the pending command of the given kind, if any.
func (s *Scheduler) Cancel(kind CommandKind) {
	delete(s.pending, kind)
}

// CancelAll drops every pending command.
func (s *Scheduler) CancelAll() {
	clear(s.pending)
}

// Pending returns true if a command of the given kind is scheduled.
func (s *Scheduler) Pending(kind CommandKind) bool {
	_, ok := s.pending[kind]
	return ok
}

// Advance runs every command due at or before now, in due order. A
// command is removed before it runs, so its callback may re-post itself
// (the long-press repeat does exactly that).
func (s *Scheduler) Advance(now time.Time) {
	var due []*command
	for _, c := range s.pending {
		if !c.due.After(now) {
			due = append(due, c)
		}
	}
	if len(due) == 0 {
		return
	}
	sort.Slice(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, c := range due {
		// Only remove if still the same instance; the callback of an
		// earlier command may have replaced it.
		if s.pending[c.kind] == c {
			delete(s.pending, c.kind)
			c.fn(now)
		}
	}
}
