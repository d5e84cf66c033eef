package domain

import "time"

// UpgradeNumber is the reserved workflow number of one scenario key.
type UpgradeNumber struct {
	Year   int    `json:"year" yaml:"year"`
	Key    string `json:"key" yaml:"key"`
	Number int    `json:"number" yaml:"number"`
}

type Publication struct {
	ID            string    `json:"id"`
	Fingerprint   string    `json:"fingerprint"`
	WorkflowCount int       `json:"workflowCount"`
	Created       time.Time `json:"created"`
}
