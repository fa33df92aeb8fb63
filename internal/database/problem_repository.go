package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/algorecall/pkg/models"
)

// problemRow mirrors the problems table; tags are stored comma-separated.
type problemRow struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	URL            string    `db:"url"`
	Platform       string    `db:"platform"`
	Tags           string    `db:"tags"`
	Stage          int       `db:"stage"`
	NextReviewDate time.Time `db:"next_review_date"`
	LastReviewed   time.Time `db:"last_reviewed"`
}

func (r problemRow) toModel() models.Problem {
	p := models.Problem{
		ID:             r.ID,
		Title:          r.Title,
		URL:            r.URL,
		Platform:       r.Platform,
		Stage:          r.Stage,
		NextReviewDate: r.NextReviewDate,
		LastReviewed:   r.LastReviewed,
	}
	if r.Tags != "" {
		p.Tags = strings.Split(r.Tags, ",")
	}
	return p
}

// ProblemRepository handles database operations for tracked problems
type ProblemRepository struct{}

// NewProblemRepository creates a new repository instance
func NewProblemRepository() *ProblemRepository {
	return &ProblemRepository{}
}

// GetAll returns all tracked problems ordered by next review date
func (r *ProblemRepository) GetAll() ([]models.Problem, error) {
	var rows []problemRow
	err := DB.Select(&rows, "SELECT * FROM problems ORDER BY next_review_date ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get problems: %v", err)
	}
	problems := make([]models.Problem, 0, len(rows))
	for _, row := range rows {
		problems = append(problems, row.toModel())
	}
	return problems, nil
}

// GetByID returns a problem by its canonical id, or nil if it is not tracked
func (r *ProblemRepository) GetByID(id string) (*models.Problem, error) {
	var row problemRow
	query := DB.Rebind("SELECT * FROM problems WHERE id = ?")
	err := DB.Get(&row, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get problem by ID: %v", err)
	}
	p := row.toModel()
	return &p, nil
}

// Exists reports whether a problem with the given id is tracked
func (r *ProblemRepository) Exists(id string) (bool, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM problems WHERE id = ?")
	if err := DB.Get(&count, query, id); err != nil {
		return false, fmt.Errorf("failed to check problem existence: %v", err)
	}
	return count > 0, nil
}

// Upsert inserts a problem or overwrites the existing record with the same id
func (r *ProblemRepository) Upsert(p *models.Problem) error {
	query := DB.Rebind(`
		INSERT INTO problems (id, title, url, platform, tags, stage, next_review_date, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			platform = excluded.platform,
			tags = excluded.tags,
			stage = excluded.stage,
			next_review_date = excluded.next_review_date,
			last_reviewed = excluded.last_reviewed
	`)
	_, err := DB.Exec(query,
		p.ID,
		p.Title,
		p.URL,
		p.Platform,
		strings.Join(p.Tags, ","),
		p.Stage,
		p.NextReviewDate,
		p.LastReviewed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert problem: %v", err)
	}
	return nil
}

// Delete removes a problem. Deleting an unknown id is not an error.
func (r *ProblemRepository) Delete(id string) error {
	query := DB.Rebind("DELETE FROM problems WHERE id = ?")
	if _, err := DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete problem: %v", err)
	}
	return nil
}
