package repository

import (
	"time"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
)

// WorkflowRepository persists matrix workflows and their ordered steps.
type WorkflowRepository struct {
	db Querier
}

func NewWorkflowRepository(db Querier) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// Save inserts or replaces a workflow. The step list is rewritten as a whole.
func (r *WorkflowRepository) Save(wf domain.WorkflowEntry, updated time.Time) error {
	query := upsertQuery("workflows", []string{"id", "name", "updated"}, []string{"id"})
	if _, err := r.db.Exec(query, wf.ID, wf.Name, formatDateInDatabase(updated)); err != nil {
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM workflow_steps WHERE workflow_id = `+placeholder(1), wf.ID); err != nil {
		return err
	}
	insert := `INSERT INTO workflow_steps (workflow_id, step_index, step) VALUES (` + placeholders(3) + `)`
	for i, step := range wf.Steps {
		if _, err := r.db.Exec(insert, wf.ID, i, step); err != nil {
			return err
		}
	}
	return nil
}

// FindByID returns sql.ErrNoRows when the workflow does not exist.
func (r *WorkflowRepository) FindByID(id int) (*domain.WorkflowEntry, error) {
	wf := domain.WorkflowEntry{ID: id}
	err := r.db.QueryRow(`SELECT name FROM workflows WHERE id = `+placeholder(1), id).Scan(&wf.Name)
	if err != nil {
		return nil, err
	}
	steps, err := r.stepsByWorkflow(&id)
	if err != nil {
		return nil, err
	}
	wf.Steps = steps[id]
	return &wf, nil
}

// FindAll returns all workflows ordered by id.
func (r *WorkflowRepository) FindAll() (*[]domain.WorkflowEntry, error) {
	rows, err := r.db.Query(`SELECT id, name FROM workflows ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workflows := make([]domain.WorkflowEntry, 0)
	for rows.Next() {
		var wf domain.WorkflowEntry
		if err := rows.Scan(&wf.ID, &wf.Name); err != nil {
			return nil, err
		}
		workflows = append(workflows, wf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	steps, err := r.stepsByWorkflow(nil)
	if err != nil {
		return nil, err
	}
	for i := range workflows {
		workflows[i].Steps = steps[workflows[i].ID]
	}
	return &workflows, nil
}

func (r *WorkflowRepository) stepsByWorkflow(id *int) (map[int][]string, error) {
	query := `SELECT workflow_id, step FROM workflow_steps`
	var args []interface{}
	if id != nil {
		query += ` WHERE workflow_id = ` + placeholder(1)
		args = append(args, *id)
	}
	query += ` ORDER BY workflow_id, step_index`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]string)
	for rows.Next() {
		var wid int
		var step string
		if err := rows.Scan(&wid, &step); err != nil {
			return nil, err
		}
		out[wid] = append(out[wid], step)
	}
	return out, rows.Err()
}

// DeleteExcept removes every stored workflow whose id is not in keep, with its steps,
// and returns how many were removed.
func (r *WorkflowRepository) DeleteExcept(keep []int) (int, error) {
	wanted := make(map[int]bool, len(keep))
	for _, id := range keep {
		wanted[id] = true
	}

	rows, err := r.db.Query(`SELECT id FROM workflows`)
	if err != nil {
		return 0, err
	}
	var stale []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		if !wanted[id] {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, id := range stale {
		if _, err := r.db.Exec(`DELETE FROM workflow_steps WHERE workflow_id = `+placeholder(1), id); err != nil {
			return 0, err
		}
		if _, err := r.db.Exec(`DELETE FROM workflows WHERE id = `+placeholder(1), id); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

// Count returns the number of stored workflows.
func (r *WorkflowRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM workflows`).Scan(&n)
	return n, err
}
