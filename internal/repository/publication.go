package repository

import "github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"

type PublicationRepository struct {
	db Querier
}

func NewPublicationRepository(db Querier) *PublicationRepository {
	return &PublicationRepository{db: db}
}

func (r *PublicationRepository) Save(p *domain.Publication) error {
	query := `INSERT INTO publications (id, fingerprint, workflow_count, created) VALUES (` + placeholders(4) + `)`
	_, err := r.db.Exec(query, p.ID, p.Fingerprint, p.WorkflowCount, formatDateInDatabase(p.Created))
	return err
}

// FindByFingerprint returns sql.ErrNoRows when the fingerprint was never published.
func (r *PublicationRepository) FindByFingerprint(fingerprint string) (*domain.Publication, error) {
	query := `SELECT id, fingerprint, workflow_count, created FROM publications WHERE fingerprint = ` + placeholder(1)
	var p domain.Publication
	if err := r.db.QueryRow(query, fingerprint).Scan(&p.ID, &p.Fingerprint, &p.WorkflowCount, &p.Created); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindLatest returns the most recent publication, sql.ErrNoRows if there is none.
func (r *PublicationRepository) FindLatest() (*domain.Publication, error) {
	query := `
		SELECT id, fingerprint, workflow_count, created
		FROM publications
		ORDER BY created DESC
		LIMIT 1`
	var p domain.Publication
	if err := r.db.QueryRow(query).Scan(&p.ID, &p.Fingerprint, &p.WorkflowCount, &p.Created); err != nil {
		return nil, err
	}
	return &p, nil
}
