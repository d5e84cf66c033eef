package catalog

import (
	"sort"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

// Matrix maps workflow ids to their entries. Setting an id twice keeps the last value,
// the same way a plain map would, but the duplicate is remembered for validation.
type Matrix struct {
	entries    map[int]domain.WorkflowEntry
	order      []int
	duplicates []int
}

func NewMatrix() *Matrix {
	return &Matrix{entries: make(map[int]domain.WorkflowEntry)}
}

// Set registers workflow id with an optional name and its ordered steps.
func (m *Matrix) Set(id int, name string, steps ...string) {
	if _, ok := m.entries[id]; ok {
		m.duplicates = append(m.duplicates, id)
	} else {
		m.order = append(m.order, id)
	}
	m.entries[id] = domain.WorkflowEntry{ID: id, Name: name, Steps: append([]string(nil), steps...)}
}

// Get returns a copy of the entry for id.
func (m *Matrix) Get(id int) (domain.WorkflowEntry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return domain.WorkflowEntry{}, false
	}
	e.Steps = append([]string(nil), e.Steps...)
	return e, true
}

func (m *Matrix) Len() int { return len(m.entries) }

// IDs returns the ids in insertion order.
func (m *Matrix) IDs() []int {
	return append([]int(nil), m.order...)
}

// Duplicates lists every id that was set more than once, once per extra Set.
func (m *Matrix) Duplicates() []int {
	return append([]int(nil), m.duplicates...)
}

// Entries returns copies of all entries sorted by id.
func (m *Matrix) Entries() []domain.WorkflowEntry {
	ids := m.IDs()
	sort.Ints(ids)
	out := make([]domain.WorkflowEntry, 0, len(ids))
	for _, id := range ids {
		e, _ := m.Get(id)
		out = append(out, e)
	}
	return out
}
