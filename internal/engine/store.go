package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RealZimboGuy/relvalmatrix/internal/repository"
)

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Workflows    WorkflowRepo
	Scenarios    ScenarioRepo
	Fragments    FragmentRepo
	Numbers      UpgradeNumberRepo
	Publications PublicationRepo
}

// Store hands out repositories, either directly or inside a transaction.
type Store interface {
	Repositories() Repositories
	InTx(ctx context.Context, fn func(Repositories) error) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func repositoriesFor(q repository.Querier) Repositories {
	return Repositories{
		Workflows:    repository.NewWorkflowRepository(q),
		Scenarios:    repository.NewScenarioRepository(q),
		Fragments:    repository.NewFragmentRepository(q),
		Numbers:      repository.NewUpgradeNumberRepository(q),
		Publications: repository.NewPublicationRepository(q),
	}
}

func (s *SQLStore) Repositories() Repositories {
	return repositoriesFor(s.db)
}

// InTx runs fn in a transaction, committing when it returns nil and rolling back otherwise.
func (s *SQLStore) InTx(ctx context.Context, fn func(Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(repositoriesFor(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
