// Package session implements the study mode state machines: the block
// puzzle session and the flip review session.
package session

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler runs delayed transitions and tells the current time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
	Now() time.Time
}

// ClockScheduler schedules transitions on a clockwork clock.
type ClockScheduler struct {
	clock clockwork.Clock
}

func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	return &ClockScheduler{clock: clock}
}

func (s *ClockScheduler) AfterFunc(d time.Duration, f func()) {
	s.clock.AfterFunc(d, f)
}

func (s *ClockScheduler) Now() time.Time {
	return s.clock.Now()
}
