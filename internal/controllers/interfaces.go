package controllers

import (
	"context"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

// CatalogReader serves the published catalog. *engine.CatalogManager satisfies it.
type CatalogReader interface {
	ListWorkflows() (*[]domain.WorkflowEntry, error)
	GetWorkflow(id int) (*domain.WorkflowEntry, error)
	ListScenarios(year int) (*[]domain.Scenario, error)
	GetScenario(year int, key string) (*domain.Scenario, error)
	ListFragments() (*[]domain.Fragment, error)
	GetFragment(name string) (*domain.Fragment, error)
	Numbering(year int) ([]domain.UpgradeNumber, error)
	LatestPublication() (*domain.Publication, error)
}

type Publisher interface {
	Publish(ctx context.Context) (*domain.Publication, bool, error)
}
