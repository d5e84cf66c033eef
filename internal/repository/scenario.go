package repository

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

type ScenarioRepository struct {
	db Querier
}

func NewScenarioRepository(db Querier) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// Save inserts or updates a scenario by (year, key) and rewrites its step list.
// index is the position of the key in its year's key list.
func (r *ScenarioRepository) Save(s domain.Scenario, index int) error {
	query := upsertQuery("scenarios",
		[]string{"year", "scenario_key", "key_index", "geom", "gt", "hlt_menu", "era", "beam_spot"},
		[]string{"year", "scenario_key"})
	if _, err := r.db.Exec(query, s.Year, s.Key, index, s.Geom, s.GT, s.HLTMenu, s.Era, s.BeamSpot); err != nil {
		return err
	}

	del := `DELETE FROM scenario_steps WHERE year = ` + placeholder(1) + ` AND scenario_key = ` + placeholder(2)
	if _, err := r.db.Exec(del, s.Year, s.Key); err != nil {
		return err
	}
	insert := `INSERT INTO scenario_steps (year, scenario_key, step_index, step) VALUES (` + placeholders(4) + `)`
	for i, step := range s.ScenToRun {
		if _, err := r.db.Exec(insert, s.Year, s.Key, i, step); err != nil {
			return err
		}
	}
	return nil
}

// FindByKey fetches one scenario; sql.ErrNoRows when it does not exist.
func (r *ScenarioRepository) FindByKey(year int, key string) (*domain.Scenario, error) {
	query := `
		SELECT year, scenario_key, geom, gt, hlt_menu, era, beam_spot
		FROM scenarios WHERE year = ` + placeholder(1) + ` AND scenario_key = ` + placeholder(2)
	var s domain.Scenario
	err := r.db.QueryRow(query, year, key).Scan(&s.Year, &s.Key, &s.Geom, &s.GT, &s.HLTMenu, &s.Era, &s.BeamSpot)
	if err != nil {
		return nil, err
	}
	steps, err := r.steps(year)
	if err != nil {
		return nil, err
	}
	s.ScenToRun = steps[key]
	return &s, nil
}

// FindByYear returns the scenarios of a year in key list order.
func (r *ScenarioRepository) FindByYear(year int) (*[]domain.Scenario, error) {
	query := `
		SELECT year, scenario_key, geom, gt, hlt_menu, era, beam_spot
		FROM scenarios WHERE year = ` + placeholder(1) + `
		ORDER BY key_index`
	rows, err := r.db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scenarios := make([]domain.Scenario, 0)
	for rows.Next() {
		var s domain.Scenario
		if err := rows.Scan(&s.Year, &s.Key, &s.Geom, &s.GT, &s.HLTMenu, &s.Era, &s.BeamSpot); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	steps, err := r.steps(year)
	if err != nil {
		return nil, err
	}
	for i := range scenarios {
		scenarios[i].ScenToRun = steps[scenarios[i].Key]
	}
	return &scenarios, nil
}

func (r *ScenarioRepository) steps(year int) (map[string][]string, error) {
	query := `
		SELECT scenario_key, step FROM scenario_steps
		WHERE year = ` + placeholder(1) + `
		ORDER BY scenario_key, step_index`
	rows, err := r.db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var key, step string
		if err := rows.Scan(&key, &step); err != nil {
			return nil, err
		}
		out[key] = append(out[key], step)
	}
	return out, rows.Err()
}
