package repository

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

// UpgradeNumberRepository stores the workflow numbers handed out to scenario keys.
type UpgradeNumberRepository struct {
	db Querier
}

func NewUpgradeNumberRepository(db Querier) *UpgradeNumberRepository {
	return &UpgradeNumberRepository{db: db}
}

func (r *UpgradeNumberRepository) Save(n domain.UpgradeNumber) error {
	query := upsertQuery("upgrade_numbers",
		[]string{"year", "scenario_key", "workflow_number"},
		[]string{"year", "scenario_key"})
	_, err := r.db.Exec(query, n.Year, n.Key, n.Number)
	return err
}

// FindAll returns every stored number ordered by year and number.
func (r *UpgradeNumberRepository) FindAll() ([]domain.UpgradeNumber, error) {
	rows, err := r.db.Query(`SELECT year, scenario_key, workflow_number FROM upgrade_numbers ORDER BY year, workflow_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []domain.UpgradeNumber
	for rows.Next() {
		var n domain.UpgradeNumber
		if err := rows.Scan(&n.Year, &n.Key, &n.Number); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}
