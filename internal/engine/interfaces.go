package engine

import (
	"time"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

// WorkflowRepo defines the interface for workflow persistence, matching repository.WorkflowRepository.
type WorkflowRepo interface {
	Save(wf domain.WorkflowEntry, updated time.Time) error
	FindByID(id int) (*domain.WorkflowEntry, error)
	FindAll() (*[]domain.WorkflowEntry, error)
	DeleteExcept(keep []int) (int, error)
	Count() (int, error)
}

// ScenarioRepo defines the interface for scenario persistence.
type ScenarioRepo interface {
	Save(s domain.Scenario, index int) error
	FindByKey(year int, key string) (*domain.Scenario, error)
	FindByYear(year int) (*[]domain.Scenario, error)
}

// FragmentRepo defines the interface for fragment persistence.
type FragmentRepo interface {
	Save(f domain.Fragment, index int) error
	FindByName(name string) (*domain.Fragment, error)
	// FindAll returns the fragments in list order.
	FindAll() (*[]domain.Fragment, error)
}

// UpgradeNumberRepo defines the interface for published upgrade numbers.
type UpgradeNumberRepo interface {
	Save(n domain.UpgradeNumber) error
	FindAll() ([]domain.UpgradeNumber, error)
}

// PublicationRepo defines the interface for publication records.
type PublicationRepo interface {
	Save(p *domain.Publication) error
	FindByFingerprint(fingerprint string) (*domain.Publication, error)
	FindLatest() (*domain.Publication, error)
}
