package domain

import (
	"fmt"
	"strings"
)

// EventCount is the event-count policy of a generator fragment: KEvents thousand
// events in total, PerJob events per job.
type EventCount struct {
	KEvents int `json:"kEvents" yaml:"kEvents"`
	PerJob  int `json:"perJob" yaml:"perJob"`
}

// Kby builds an EventCount of k thousand events split into jobs of perJob events.
func Kby(k, perJob int) EventCount {
	return EventCount{KEvents: k, PerJob: perJob}
}

// TotalEvents is the absolute number of events requested.
func (e EventCount) TotalEvents() int {
	return e.KEvents * 1000
}

// RelvalOption renders the policy the way the matrix runner expects it, e.g. "9000,100".
func (e EventCount) RelvalOption() string {
	return fmt.Sprintf("%d000,%d", e.KEvents, e.PerJob)
}

// Fragment is a generator fragment with its event-count policy and output dataset.
type Fragment struct {
	Name    string     `json:"name" yaml:"name"`
	Dataset string     `json:"dataset" yaml:"dataset"`
	Events  EventCount `json:"events" yaml:"events"`
}

// Stem strips the _cfi / _cff suffix from the fragment name.
func (f Fragment) Stem() string {
	if strings.HasSuffix(f.Name, "_cfi") || strings.HasSuffix(f.Name, "_cff") {
		return f.Name[:len(f.Name)-4]
	}
	return f.Name
}
