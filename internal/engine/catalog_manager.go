package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/core"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNumberingChanged = errors.New("published upgrade numbering changed")
)

// CatalogManager publishes the static catalog into the store and serves the
// published state to the API layer.
type CatalogManager struct {
	Catalog *catalog.Catalog
	store   Store
	clock   core.Clock
	newID   func() string
	mu      sync.Mutex
}

func NewCatalogManager(c *catalog.Catalog, store Store, clock core.Clock) *CatalogManager {
	return &CatalogManager{
		Catalog: c,
		store:   store,
		clock:   clock,
		newID:   uuid.NewString,
	}
}

// Publish validates the catalog and writes it to the store. Publishing a catalog whose
// fingerprint was already published returns the existing publication and false.
// The write is refused if any previously published scenario key would change number or
// any published fragment would change position. Workflows no longer in the catalog are
// removed from the store.
func (m *CatalogManager) Publish(ctx context.Context) (*domain.Publication, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := catalog.Validate(m.Catalog); err != nil {
		return nil, false, err
	}
	fingerprint, err := catalog.Fingerprint(m.Catalog)
	if err != nil {
		return nil, false, err
	}

	existing, err := m.store.Repositories().Publications.FindByFingerprint(fingerprint)
	if err == nil {
		slog.InfoContext(ctx, "Catalog already published", "id", existing.ID, "fingerprint", fingerprint)
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("look up publication: %w", err)
	}

	workflows := m.Catalog.Workflows.Entries()
	workflows = append(workflows, m.Catalog.ExpandUpgrade().Entries()...)

	pub := &domain.Publication{
		ID:            m.newID(),
		Fingerprint:   fingerprint,
		WorkflowCount: len(workflows),
		Created:       m.clock.Now().UTC(),
	}

	err = m.store.InTx(ctx, func(repos Repositories) error {
		published, err := repos.Numbers.FindAll()
		if err != nil {
			return fmt.Errorf("load published numbers: %w", err)
		}
		if err := CheckNumbering(published, m.Catalog.UpgradeNumbers()); err != nil {
			return err
		}
		publishedFragments, err := repos.Fragments.FindAll()
		if err != nil {
			return fmt.Errorf("load published fragments: %w", err)
		}
		if err := CheckFragmentOrder(fragmentNames(publishedFragments), m.Catalog.FragmentOrder); err != nil {
			return err
		}

		ids := make([]int, 0, len(workflows))
		for _, wf := range workflows {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := repos.Workflows.Save(wf, pub.Created); err != nil {
				return fmt.Errorf("save workflow %d: %w", wf.ID, err)
			}
			ids = append(ids, wf.ID)
		}
		removed, err := repos.Workflows.DeleteExcept(ids)
		if err != nil {
			return fmt.Errorf("remove dropped workflows: %w", err)
		}
		if removed > 0 {
			slog.InfoContext(ctx, "Removed workflows no longer in the catalog", "count", removed)
		}

		for _, year := range m.Catalog.Years() {
			for i, key := range m.Catalog.Keys[year] {
				s, ok := m.Catalog.Scenario(year, key)
				if !ok {
					continue
				}
				if err := repos.Scenarios.Save(s, i); err != nil {
					return fmt.Errorf("save scenario %s/%d: %w", s.Key, s.Year, err)
				}
			}
		}
		for i, f := range m.Catalog.Fragments() {
			if err := repos.Fragments.Save(f, i); err != nil {
				return fmt.Errorf("save fragment %s: %w", f.Name, err)
			}
		}
		for _, n := range m.Catalog.UpgradeNumbers() {
			if err := repos.Numbers.Save(n); err != nil {
				return fmt.Errorf("save upgrade number %s/%d: %w", n.Key, n.Year, err)
			}
		}
		return repos.Publications.Save(pub)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Catalog publish failed", "error", err)
		return nil, false, err
	}

	slog.InfoContext(ctx, "Catalog published", "id", pub.ID, "fingerprint", pub.Fingerprint, "workflows", pub.WorkflowCount)
	return pub, true, nil
}

// CheckNumbering reports every published key that disappeared or moved to another number.
func CheckNumbering(published, current []domain.UpgradeNumber) error {
	type yearKey struct {
		year int
		key  string
	}
	now := make(map[yearKey]int, len(current))
	for _, n := range current {
		now[yearKey{n.Year, n.Key}] = n.Number
	}

	var result *multierror.Error
	for _, p := range published {
		n, ok := now[yearKey{p.Year, p.Key}]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("scenario %s/%d was published as %d and is gone", p.Key, p.Year, p.Number))
			continue
		}
		if n != p.Number {
			result = multierror.Append(result, fmt.Errorf("scenario %s/%d was published as %d and is now %d", p.Key, p.Year, p.Number, n))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrNumberingChanged, err)
	}
	return nil
}

// CheckFragmentOrder reports every published fragment that disappeared or moved. Expanded
// workflow ids are offsets into the fragment list, so only appending is allowed.
func CheckFragmentOrder(published, current []string) error {
	position := make(map[string]int, len(current))
	for i, name := range current {
		position[name] = i
	}

	var result *multierror.Error
	for i, name := range published {
		at, ok := position[name]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("fragment %s was published at %d and is gone", name, i))
			continue
		}
		if at != i {
			result = multierror.Append(result, fmt.Errorf("fragment %s was published at %d and is now at %d", name, i, at))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrNumberingChanged, err)
	}
	return nil
}

func fragmentNames(fragments *[]domain.Fragment) []string {
	if fragments == nil {
		return nil
	}
	names := make([]string, len(*fragments))
	for i, f := range *fragments {
		names[i] = f.Name
	}
	return names
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (m *CatalogManager) ListWorkflows() (*[]domain.WorkflowEntry, error) {
	return m.store.Repositories().Workflows.FindAll()
}

func (m *CatalogManager) GetWorkflow(id int) (*domain.WorkflowEntry, error) {
	wf, err := m.store.Repositories().Workflows.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return wf, nil
}

// ListScenarios returns ErrNotFound for a year without published scenarios.
func (m *CatalogManager) ListScenarios(year int) (*[]domain.Scenario, error) {
	scenarios, err := m.store.Repositories().Scenarios.FindByYear(year)
	if err != nil {
		return nil, err
	}
	if scenarios == nil || len(*scenarios) == 0 {
		return nil, ErrNotFound
	}
	return scenarios, nil
}

func (m *CatalogManager) GetScenario(year int, key string) (*domain.Scenario, error) {
	s, err := m.store.Repositories().Scenarios.FindByKey(year, key)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (m *CatalogManager) ListFragments() (*[]domain.Fragment, error) {
	return m.store.Repositories().Fragments.FindAll()
}

func (m *CatalogManager) GetFragment(name string) (*domain.Fragment, error) {
	f, err := m.store.Repositories().Fragments.FindByName(name)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// Numbering returns the published numbers of a year in ascending order.
func (m *CatalogManager) Numbering(year int) ([]domain.UpgradeNumber, error) {
	all, err := m.store.Repositories().Numbers.FindAll()
	if err != nil {
		return nil, err
	}
	var out []domain.UpgradeNumber
	for _, n := range all {
		if n.Year == year {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (m *CatalogManager) LatestPublication() (*domain.Publication, error) {
	p, err := m.store.Repositories().Publications.FindLatest()
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}
