package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the integrity of every table and reports all violations at once.
// It returns nil when the catalog is consistent.
func Validate(c *Catalog) error {
	var result *multierror.Error

	result = multierror.Append(result, validateWorkflows(c)...)
	result = multierror.Append(result, validateScenarios(c)...)
	result = multierror.Append(result, validateNumbering(c)...)
	result = multierror.Append(result, validateFragments(c)...)
	result = multierror.Append(result, validateExpansion(c)...)

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return nil
}

func validateWorkflows(c *Catalog) []error {
	var errs []error
	for _, id := range c.Workflows.Duplicates() {
		errs = append(errs, fmt.Errorf("workflow %d is defined more than once", id))
	}
	for _, e := range c.Workflows.Entries() {
		if len(e.Steps) == 0 {
			errs = append(errs, fmt.Errorf("workflow %d has no steps", e.ID))
		}
	}
	return errs
}

func validateScenarios(c *Catalog) []error {
	var errs []error
	vocabulary := make(map[string]bool, len(c.Steps))
	for _, s := range c.Steps {
		vocabulary[s] = true
	}

	for _, year := range c.Years() {
		seen := make(map[string]bool)
		for _, key := range c.Keys[year] {
			if seen[key] {
				errs = append(errs, fmt.Errorf("scenario key %s is listed twice for %d", key, year))
			}
			seen[key] = true
			s, ok := c.Scenario(year, key)
			if !ok {
				errs = append(errs, fmt.Errorf("scenario key %s has no properties for %d", key, year))
				continue
			}
			if len(s.ScenToRun) == 0 {
				errs = append(errs, fmt.Errorf("scenario %s/%d runs no steps", key, year))
			}
			for _, step := range s.ScenToRun {
				if !vocabulary[step] {
					errs = append(errs, fmt.Errorf("scenario %s/%d runs unknown step %s", key, year, step))
				}
			}
		}

		orphans := make([]string, 0)
		for key := range c.Properties[year] {
			if !seen[key] {
				orphans = append(orphans, key)
			}
		}
		sort.Strings(orphans)
		for _, key := range orphans {
			errs = append(errs, fmt.Errorf("scenario properties %s/%d have no key", key, year))
		}
	}

	for year := range c.Properties {
		if _, ok := c.Keys[year]; !ok {
			errs = append(errs, fmt.Errorf("scenario properties for %d have no key list", year))
		}
	}
	return errs
}

func validateNumbering(c *Catalog) []error {
	var errs []error
	reserved := c.Numbering.Reserved
	for i, r := range reserved {
		if r.Lo >= r.Hi {
			errs = append(errs, fmt.Errorf("reserved range [%d,%d) is empty or inverted", r.Lo, r.Hi))
		}
		if i > 0 && r.Lo < reserved[i-1].Hi {
			errs = append(errs, fmt.Errorf("reserved range [%d,%d) is not after [%d,%d)",
				r.Lo, r.Hi, reserved[i-1].Lo, reserved[i-1].Hi))
		}
	}
	if c.Numbering.Skip <= 0 {
		errs = append(errs, fmt.Errorf("numbering skip %d must be positive", c.Numbering.Skip))
	}

	for _, year := range c.Years() {
		if _, ok := c.Numbering.Start[year]; !ok {
			errs = append(errs, fmt.Errorf("no numbering start for %d", year))
			continue
		}
		nums := c.Numbers(year)
		for i, n := range nums {
			if i > 0 && n <= nums[i-1] {
				errs = append(errs, fmt.Errorf("workflow number %d of %d does not follow %d", n, year, nums[i-1]))
			}
			for _, r := range reserved {
				if r.Contains(n) {
					errs = append(errs, fmt.Errorf("workflow number %d of %d is inside reserved range [%d,%d)", n, year, r.Lo, r.Hi))
				}
			}
		}
	}
	return errs
}

func validateFragments(c *Catalog) []error {
	var errs []error
	listed := make(map[string]bool, len(c.FragmentOrder))
	for _, name := range c.FragmentOrder {
		if listed[name] {
			errs = append(errs, fmt.Errorf("fragment %s is listed twice", name))
		}
		listed[name] = true
		if _, ok := c.EventCounts[name]; !ok {
			errs = append(errs, fmt.Errorf("fragment %s has no event count", name))
		}
		if _, ok := c.Datasets[name]; !ok {
			errs = append(errs, fmt.Errorf("fragment %s has no dataset", name))
		}
	}
	for _, name := range sortedKeys(c.EventCounts) {
		if !listed[name] {
			errs = append(errs, fmt.Errorf("event count for unlisted fragment %s", name))
		}
	}
	for _, name := range sortedKeys(c.Datasets) {
		if !listed[name] {
			errs = append(errs, fmt.Errorf("dataset for unlisted fragment %s", name))
		}
	}
	return errs
}

func validateExpansion(c *Catalog) []error {
	var errs []error
	if c.Numbering.Skip > 0 && len(c.FragmentOrder) > c.Numbering.Skip {
		errs = append(errs, fmt.Errorf("%d fragments do not fit in a numbering skip of %d",
			len(c.FragmentOrder), c.Numbering.Skip))
	}
	expanded := c.ExpandUpgrade()
	for _, id := range expanded.Duplicates() {
		errs = append(errs, fmt.Errorf("expanded upgrade workflow %d is generated more than once", id))
	}
	for _, id := range expanded.IDs() {
		if _, ok := c.Workflows.Get(id); ok {
			errs = append(errs, fmt.Errorf("expanded upgrade workflow %d collides with a matrix workflow", id))
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
