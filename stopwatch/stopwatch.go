// Package stopwatch measures elapsed wall-clock time across
// possibly-paused intervals.
package stopwatch

import (
	"fmt"
	"time"
)

// Stopwatch accumulates elapsed time between Start and Stop calls.
// The zero value is a stopped stopwatch with zero elapsed time.
//
// A Stopwatch is not safe for concurrent use; callers sharing one
// across goroutines must serialize access themselves.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// New returns a stopped stopwatch with zero elapsed time.
func New() *Stopwatch {
	return &Stopwatch{}
}

// StartNew returns a stopwatch that is already running.
func StartNew() *Stopwatch {
	s := New()
	s.Start()
	return s
}

// Start begins a new interval. Calling Start on a running stopwatch
// is a no-op.
func (s *Stopwatch) Start() {
	if !s.running {
		s.start = time.Now()
		s.running = true
	}
}

// Stop ends the current interval and folds it into the accumulated
// elapsed time. Calling Stop on a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if s.running {
		s.elapsed += time.Since(s.start)
		s.running = false
	}
}

// Reset returns the stopwatch to its initial state: stopped with zero
// elapsed time, regardless of whether it was running.
func (s *Stopwatch) Reset() {
	s.start = time.Time{}
	s.elapsed = 0
	s.running = false
}

// Elapsed returns the accumulated elapsed time, including the live
// interval if the stopwatch is running. It does not mutate state.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + time.Since(s.start)
	}
	return s.elapsed
}

// IsRunning reports whether the stopwatch is currently running.
func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// ElapsedMilliseconds returns Elapsed in whole milliseconds.
func (s *Stopwatch) ElapsedMilliseconds() int64 {
	return s.Elapsed().Milliseconds()
}

// ElapsedMicroseconds returns Elapsed in whole microseconds.
func (s *Stopwatch) ElapsedMicroseconds() int64 {
	return s.Elapsed().Microseconds()
}

// ElapsedNanoseconds returns Elapsed in nanoseconds.
func (s *Stopwatch) ElapsedNanoseconds() int64 {
	return s.Elapsed().Nanoseconds()
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (s *Stopwatch) ElapsedSeconds() float64 {
	return s.Elapsed().Seconds()
}

// String renders the elapsed time as seconds with millisecond
// precision, e.g. "1.042s".
func (s *Stopwatch) String() string {
	e := s.Elapsed()
	return fmt.Sprintf("%d.%03ds", int64(e/time.Second), int64(e/time.Millisecond)%1000)
}
