package common

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/test/integration"
)

// RunPublishRoundTrip publishes the built-in catalog into a migrated, empty database and
// reads every table back through the manager.
func RunPublishRoundTrip(t *testing.T, db *sql.DB) {
	ctx := context.Background()
	clock := integration.NewFakeClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	store := engine.NewSQLStore(db)
	c := catalog.New()
	manager := engine.NewCatalogManager(c, store, clock)

	pub, created, err := manager.Publish(ctx)
	require.NoError(t, err)
	require.True(t, created)
	expanded := c.ExpandUpgrade()
	assert.Equal(t, c.Workflows.Len()+expanded.Len(), pub.WorkflowCount)

	// workflows
	all, err := manager.ListWorkflows()
	require.NoError(t, err)
	assert.Len(t, *all, pub.WorkflowCount)
	count, err := store.Repositories().Workflows.Count()
	require.NoError(t, err)
	assert.Equal(t, pub.WorkflowCount, count)

	want, _ := c.Workflows.Get(507)
	got, err := manager.GetWorkflow(507)
	require.NoError(t, err)
	assert.Equal(t, want.Steps, got.Steps)

	upgradeID := expanded.IDs()[0]
	wantUpgrade, _ := expanded.Get(upgradeID)
	gotUpgrade, err := manager.GetWorkflow(upgradeID)
	require.NoError(t, err)
	assert.Equal(t, wantUpgrade, *gotUpgrade)

	_, err = manager.GetWorkflow(1)
	assert.ErrorIs(t, err, engine.ErrNotFound)

	// scenarios
	wantScenario, _ := c.Scenario(2023, "2023D4PU")
	gotScenario, err := manager.GetScenario(2023, "2023D4PU")
	require.NoError(t, err)
	assert.Equal(t, wantScenario, *gotScenario)

	scenarios, err := manager.ListScenarios(2023)
	require.NoError(t, err)
	keys := make([]string, 0, len(*scenarios))
	for _, s := range *scenarios {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, c.Keys[2023], keys)

	_, err = manager.ListScenarios(1999)
	assert.ErrorIs(t, err, engine.ErrNotFound)

	// fragments keep their list order
	fragments, err := manager.ListFragments()
	require.NoError(t, err)
	require.Len(t, *fragments, len(c.FragmentOrder))
	for i, f := range *fragments {
		assert.Equal(t, c.FragmentOrder[i], f.Name)
	}

	// numbering
	numbers, err := manager.Numbering(2023)
	require.NoError(t, err)
	require.Len(t, numbers, len(c.Keys[2023]))
	assert.Equal(t, 20000, numbers[0].Number)
	assert.Equal(t, 23800, numbers[len(numbers)-1].Number)

	latest, err := manager.LatestPublication()
	require.NoError(t, err)
	assert.Equal(t, pub.ID, latest.ID)
	assert.Equal(t, pub.Fingerprint, latest.Fingerprint)

	// unchanged catalog is not published twice
	clock.Add(time.Minute)
	again, created, err := manager.Publish(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, pub.ID, again.ID)

	// moving a published key is refused and leaves the store untouched
	moved := catalog.New()
	moved.Numbering.Start[2017] = 11000
	_, _, err = engine.NewCatalogManager(moved, store, clock).Publish(ctx)
	require.ErrorIs(t, err, engine.ErrNumberingChanged)

	numbers, err = manager.Numbering(2017)
	require.NoError(t, err)
	assert.Equal(t, 10000, numbers[0].Number)
	latest, err = manager.LatestPublication()
	require.NoError(t, err)
	assert.Equal(t, pub.ID, latest.ID)

	// appending a key is allowed
	clock.Add(time.Minute)
	grown := grownCatalog()
	next, created, err := engine.NewCatalogManager(grown, store, clock).Publish(ctx)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, pub.Fingerprint, next.Fingerprint)

	numbers, err = manager.Numbering(2017)
	require.NoError(t, err)
	assert.Equal(t, 10800, numbers[len(numbers)-1].Number)
	latest, err = manager.LatestPublication()
	require.NoError(t, err)
	assert.Equal(t, next.ID, latest.ID)

	// moving a published fragment is refused
	swapped := grownCatalog()
	swapped.FragmentOrder[0], swapped.FragmentOrder[1] = swapped.FragmentOrder[1], swapped.FragmentOrder[0]
	before, err := manager.GetWorkflow(10001)
	require.NoError(t, err)
	_, _, err = engine.NewCatalogManager(swapped, store, clock).Publish(ctx)
	require.ErrorIs(t, err, engine.ErrNumberingChanged)
	after, err := manager.GetWorkflow(10001)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// dropping a workflow removes it from the store
	clock.Add(time.Minute)
	shrunk := grownCatalog()
	kept := catalog.NewMatrix()
	for _, wf := range shrunk.Workflows.Entries() {
		if wf.ID != 530 {
			kept.Set(wf.ID, wf.Name, wf.Steps...)
		}
	}
	shrunk.Workflows = kept
	last, created, err := engine.NewCatalogManager(shrunk, store, clock).Publish(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = manager.GetWorkflow(530)
	assert.ErrorIs(t, err, engine.ErrNotFound)
	all, err = manager.ListWorkflows()
	require.NoError(t, err)
	assert.Len(t, *all, last.WorkflowCount)
}

// grownCatalog is the built-in catalog with one extra 2017 key appended.
func grownCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Keys[2017] = append(c.Keys[2017], "2017Extra")
	c.Properties[2017]["2017Extra"] = c.Properties[2017]["2017"].As("2017Extra")
	return c
}
