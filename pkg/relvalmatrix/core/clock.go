package core

import "time"

// Clock stamps publications and stored rows; tests swap in a fixed clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time { return time.Now() }
