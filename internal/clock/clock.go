// Package clock abstracts "now" so that promotion-window checks and sale
// timestamps can be driven by a fixed instant in tests.
package clock

import "time"

// Clock supplies the current instant. Each business operation reads it once
// at its entry point and threads the value through, so a single operation
// never observes two different "now"s.
type Clock interface {
	Now() time.Time
}

// RealClock is the production implementation backed by the system clock.
type RealClock struct{}

func NewRealClock() Clock { return &RealClock{} }

func (RealClock) Now() time.Time { return time.Now() }

// MockClock is a controllable clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(start time.Time) *MockClock { return &MockClock{current: start} }

func (m *MockClock) Now() time.Time { return m.current }

// Set pins the clock to t.
func (m *MockClock) Set(t time.Time) { m.current = t }

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) { m.current = m.current.Add(d) }
