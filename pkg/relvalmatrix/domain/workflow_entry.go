package domain

// WorkflowEntry is one row of the release-validation matrix.
// An empty Name means the name is taken from the first step.
type WorkflowEntry struct {
	ID    int      `json:"id" yaml:"id"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Steps []string `json:"steps" yaml:"steps"`
}

// DisplayName returns the override name, or the first step when no override is set.
func (w WorkflowEntry) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	if len(w.Steps) > 0 {
		return w.Steps[0]
	}
	return ""
}
