package domain

// Scenario bundles the geometry, conditions, trigger and era choices of an upgrade
// configuration together with the abstract steps it runs.
type Scenario struct {
	Year      int      `json:"year" yaml:"year"`
	Key       string   `json:"key" yaml:"key"`
	Geom      string   `json:"geom" yaml:"geom"`
	GT        string   `json:"gt" yaml:"gt"`
	HLTMenu   string   `json:"hltMenu" yaml:"hltMenu"`
	Era       string   `json:"era" yaml:"era"`
	BeamSpot  string   `json:"beamSpot,omitempty" yaml:"beamSpot,omitempty"`
	ScenToRun []string `json:"scenToRun" yaml:"scenToRun"`
}

// Clone returns a deep copy; the step list of the copy does not share storage.
func (s Scenario) Clone() Scenario {
	c := s
	if s.ScenToRun != nil {
		c.ScenToRun = append([]string(nil), s.ScenToRun...)
	}
	return c
}

// As returns a copy filed under another key.
func (s Scenario) As(key string) Scenario {
	c := s.Clone()
	c.Key = key
	return c
}

func (s Scenario) WithEra(era string) Scenario {
	c := s.Clone()
	c.Era = era
	return c
}

func (s Scenario) WithSteps(steps ...string) Scenario {
	c := s.Clone()
	c.ScenToRun = append([]string(nil), steps...)
	return c
}
