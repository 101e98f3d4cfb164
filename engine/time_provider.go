package engine

import "time"

// TimeProvider is the clock the scheduler and loop read deadlines from
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
