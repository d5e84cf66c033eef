package repository

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

type FragmentRepository struct {
	db Querier
}

func NewFragmentRepository(db Querier) *FragmentRepository {
	return &FragmentRepository{db: db}
}

// Save inserts or updates a fragment. index is its position in the fragment list.
func (r *FragmentRepository) Save(f domain.Fragment, index int) error {
	query := upsertQuery("fragments",
		[]string{"name", "list_index", "dataset", "k_events", "per_job"},
		[]string{"name"})
	_, err := r.db.Exec(query, f.Name, index, f.Dataset, f.Events.KEvents, f.Events.PerJob)
	return err
}

func (r *FragmentRepository) FindByName(name string) (*domain.Fragment, error) {
	query := `SELECT name, dataset, k_events, per_job FROM fragments WHERE name = ` + placeholder(1)
	var f domain.Fragment
	err := r.db.QueryRow(query, name).Scan(&f.Name, &f.Dataset, &f.Events.KEvents, &f.Events.PerJob)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindAll returns the fragments in list order.
func (r *FragmentRepository) FindAll() (*[]domain.Fragment, error) {
	rows, err := r.db.Query(`SELECT name, dataset, k_events, per_job FROM fragments ORDER BY list_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fragments := make([]domain.Fragment, 0)
	for rows.Next() {
		var f domain.Fragment
		if err := rows.Scan(&f.Name, &f.Dataset, &f.Events.KEvents, &f.Events.PerJob); err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &fragments, nil
}
