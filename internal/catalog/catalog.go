// Package catalog holds the static release-validation tables: the workflow matrix,
// the upgrade scenarios with their reserved workflow numbers, and the generator
// fragment lookups. Tables are built once and are read-only afterwards.
package catalog

import (
	"sort"
	"sync"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

type Catalog struct {
	Workflows  *Matrix
	Keys       map[int][]string
	Properties map[int]map[string]domain.Scenario
	Steps      []string
	Numbering  Numbering

	FragmentOrder []string
	EventCounts   map[string]domain.EventCount
	Datasets      map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog built from the package tables.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// New builds a fresh catalog from the package tables.
func New() *Catalog {
	events := make(map[string]domain.EventCount, len(howMuches))
	for k, v := range howMuches {
		events[k] = v
	}
	datasets := make(map[string]string, len(upgradeDatasetFromFragment))
	for k, v := range upgradeDatasetFromFragment {
		datasets[k] = v
	}
	return &Catalog{
		Workflows:     ExtendedGen(),
		Keys:          upgradeKeys(),
		Properties:    upgradeProperties(),
		Steps:         append([]string(nil), UpgradeSteps...),
		Numbering:     upgradeNumbering(),
		FragmentOrder: append([]string(nil), upgradeFragments...),
		EventCounts:   events,
		Datasets:      datasets,
	}
}

// Years returns the scenario years in ascending order.
func (c *Catalog) Years() []int {
	years := make([]int, 0, len(c.Keys))
	for y := range c.Keys {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Scenario looks up a scenario record by year and key.
func (c *Catalog) Scenario(year int, key string) (domain.Scenario, bool) {
	byKey, ok := c.Properties[year]
	if !ok {
		return domain.Scenario{}, false
	}
	s, ok := byKey[key]
	if !ok {
		return domain.Scenario{}, false
	}
	return s.Clone(), true
}

// Scenarios returns the records of a year in key order. Keys without a record are skipped.
func (c *Catalog) Scenarios(year int) []domain.Scenario {
	out := make([]domain.Scenario, 0, len(c.Keys[year]))
	for _, key := range c.Keys[year] {
		if s, ok := c.Scenario(year, key); ok {
			out = append(out, s)
		}
	}
	return out
}

// Numbers returns the reserved workflow numbers of a year, one per key.
func (c *Catalog) Numbers(year int) []int {
	return c.Numbering.Numbers(year, c.Keys[year])
}

// UpgradeNumbers pairs every key with its number, ordered by year then key position.
func (c *Catalog) UpgradeNumbers() []domain.UpgradeNumber {
	var out []domain.UpgradeNumber
	for _, year := range c.Years() {
		nums := c.Numbers(year)
		for i, key := range c.Keys[year] {
			if i >= len(nums) {
				break
			}
			out = append(out, domain.UpgradeNumber{Year: year, Key: key, Number: nums[i]})
		}
	}
	return out
}

// Fragment returns the fragment with its event count and dataset.
func (c *Catalog) Fragment(name string) (domain.Fragment, bool) {
	ev, okEv := c.EventCounts[name]
	ds, okDs := c.Datasets[name]
	if !okEv && !okDs {
		return domain.Fragment{}, false
	}
	return domain.Fragment{Name: name, Dataset: ds, Events: ev}, true
}

// Fragments returns the fragments in list order.
func (c *Catalog) Fragments() []domain.Fragment {
	out := make([]domain.Fragment, 0, len(c.FragmentOrder))
	for _, name := range c.FragmentOrder {
		f, _ := c.Fragment(name)
		f.Name = name
		out = append(out, f)
	}
	return out
}
