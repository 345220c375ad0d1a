package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the subset of *time.Timer the engine relies on.
type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only moves when told to. Timers fire synchronously from Add/Set
// on the calling goroutine, in deadline order.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &mockTimer{clock: c, deadline: c.currentTime.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	due := c.popDueLocked()
	c.mu.Unlock()

	for _, tm := range due {
		tm.fn()
	}
}

func (c *MockClock) Add(d time.Duration) {
	c.Set(c.Now().Add(d))
}

// PendingTimers reports how many timers are armed and not yet fired or stopped.
func (c *MockClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *MockClock) popDueLocked() []*mockTimer {
	var due, rest []*mockTimer
	for _, t := range c.timers {
		if !t.deadline.After(c.currentTime) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.timers = rest
	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due
}

func (c *MockClock) remove(target *mockTimer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.timers {
		if t == target {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type mockTimer struct {
	clock    *MockClock
	deadline time.Time
	fn       func()
}

func (t *mockTimer) Stop() bool {
	return t.clock.remove(t)
}
