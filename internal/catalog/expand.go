package catalog

import (
	"strings"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

// UpgradeStepName maps a scenario step kind to the concrete step used for a fragment.
// Simulation steps are named after the fragment and key; the others only after the key.
func UpgradeStepName(f domain.Fragment, key, kind string) string {
	if strings.Contains(kind, "Sim") {
		if strings.Contains(kind, "HLBeamSpotFull") && strings.Contains(f.Name, "14TeV") {
			kind = "GenSimHLBeamSpotFull14"
		}
		return f.Stem() + "_" + key + "_" + kind
	}
	return kind + "_" + key
}

// ExpandUpgrade builds one workflow per scenario key and fragment. The workflow id is
// the key's reserved number plus the fragment position; the name is the dataset.
func (c *Catalog) ExpandUpgrade() *Matrix {
	m := NewMatrix()
	fragments := c.Fragments()
	for _, year := range c.Years() {
		nums := c.Numbers(year)
		for i, key := range c.Keys[year] {
			s, ok := c.Scenario(year, key)
			if !ok || i >= len(nums) {
				continue
			}
			for j, f := range fragments {
				steps := make([]string, 0, len(s.ScenToRun))
				for _, kind := range s.ScenToRun {
					steps = append(steps, UpgradeStepName(f, key, kind))
				}
				m.Set(nums[i]+j, f.Dataset, steps...)
			}
		}
	}
	return m
}
