package engine

import (
	"sort"
	"sync"
	"time"
)

// TaskID identifies a scheduled one-shot task. Zero is never issued.
type TaskID uint64

type task struct {
	id       TaskID
	deadline time.Time
	fn       func()
}

// Scheduler holds one-shot deferred tasks. Tasks never run on their own: the owner of the
// simulation calls RunDue from its tick, so every task executes on the tick goroutine in
// deadline order (ties in scheduling order).
type Scheduler struct {
	mu     sync.Mutex
	clock  TimeProvider
	tasks  []task
	nextID TaskID
}

func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// Now returns the scheduler clock's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After schedules fn to run once, no earlier than d from now
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := task{id: s.nextID, deadline: s.clock.Now().Add(d), fn: fn}

	// Insert after every task with deadline <= t.deadline to keep FIFO among ties
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].deadline.After(t.deadline)
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t

	return t.id
}

// Cancel removes a pending task, returning false if it already ran or never existed
func (s *Scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// RunDue runs every task whose deadline is at or before now and returns how many ran.
// Tasks scheduled by a running task are picked up in the same call if already due.
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 || s.tasks[0].deadline.After(now) {
			s.mu.Unlock()
			return ran
		}
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mu.Unlock()

		t.fn()
		ran++
	}
}

// Clear drops all pending tasks
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
}
