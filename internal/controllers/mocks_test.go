package controllers

import (
	"context"

	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

type MockCatalogReader struct {
	ListWorkflowsFunc     func() (*[]domain.WorkflowEntry, error)
	GetWorkflowFunc       func(id int) (*domain.WorkflowEntry, error)
	ListScenariosFunc     func(year int) (*[]domain.Scenario, error)
	GetScenarioFunc       func(year int, key string) (*domain.Scenario, error)
	ListFragmentsFunc     func() (*[]domain.Fragment, error)
	GetFragmentFunc       func(name string) (*domain.Fragment, error)
	NumberingFunc         func(year int) ([]domain.UpgradeNumber, error)
	LatestPublicationFunc func() (*domain.Publication, error)
}

func (m *MockCatalogReader) ListWorkflows() (*[]domain.WorkflowEntry, error) {
	if m.ListWorkflowsFunc != nil {
		return m.ListWorkflowsFunc()
	}
	return &[]domain.WorkflowEntry{}, nil
}

func (m *MockCatalogReader) GetWorkflow(id int) (*domain.WorkflowEntry, error) {
	if m.GetWorkflowFunc != nil {
		return m.GetWorkflowFunc(id)
	}
	return nil, engine.ErrNotFound
}

func (m *MockCatalogReader) ListScenarios(year int) (*[]domain.Scenario, error) {
	if m.ListScenariosFunc != nil {
		return m.ListScenariosFunc(year)
	}
	return nil, engine.ErrNotFound
}

func (m *MockCatalogReader) GetScenario(year int, key string) (*domain.Scenario, error) {
	if m.GetScenarioFunc != nil {
		return m.GetScenarioFunc(year, key)
	}
	return nil, engine.ErrNotFound
}

func (m *MockCatalogReader) ListFragments() (*[]domain.Fragment, error) {
	if m.ListFragmentsFunc != nil {
		return m.ListFragmentsFunc()
	}
	return &[]domain.Fragment{}, nil
}

func (m *MockCatalogReader) GetFragment(name string) (*domain.Fragment, error) {
	if m.GetFragmentFunc != nil {
		return m.GetFragmentFunc(name)
	}
	return nil, engine.ErrNotFound
}

func (m *MockCatalogReader) Numbering(year int) ([]domain.UpgradeNumber, error) {
	if m.NumberingFunc != nil {
		return m.NumberingFunc(year)
	}
	return nil, engine.ErrNotFound
}

func (m *MockCatalogReader) LatestPublication() (*domain.Publication, error) {
	if m.LatestPublicationFunc != nil {
		return m.LatestPublicationFunc()
	}
	return nil, engine.ErrNotFound
}

type MockPublisher struct {
	PublishFunc func(ctx context.Context) (*domain.Publication, bool, error)
	calls       int
}

func (m *MockPublisher) Publish(ctx context.Context) (*domain.Publication, bool, error) {
	m.calls++
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx)
	}
	return &domain.Publication{ID: "pub-1"}, true, nil
}
