package database

import (
	"database/sql"
	"fmt"

	"github.com/example/algorecall/pkg/models"
)

// ConceptRepository handles database operations for concept scores
type ConceptRepository struct{}

// NewConceptRepository creates a new repository instance
func NewConceptRepository() *ConceptRepository {
	return &ConceptRepository{}
}

// GetAll returns all concept scores, highest first
func (r *ConceptRepository) GetAll() ([]models.Concept, error) {
	var concepts []models.Concept
	err := DB.Select(&concepts, "SELECT * FROM concepts ORDER BY score DESC, tag ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get concepts: %v", err)
	}
	return concepts, nil
}

// GetByTag returns the score for a tag, or nil if the tag has never been seen
func (r *ConceptRepository) GetByTag(tag string) (*models.Concept, error) {
	var concept models.Concept
	query := DB.Rebind("SELECT * FROM concepts WHERE tag = ?")
	err := DB.Get(&concept, query, tag)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get concept by tag: %v", err)
	}
	return &concept, nil
}

// Upsert inserts or updates a concept score
func (r *ConceptRepository) Upsert(c *models.Concept) error {
	query := DB.Rebind(`
		INSERT INTO concepts (tag, score) VALUES (?, ?)
		ON CONFLICT (tag) DO UPDATE SET score = excluded.score
	`)
	if _, err := DB.Exec(query, c.Tag, c.Score); err != nil {
		return fmt.Errorf("failed to upsert concept: %v", err)
	}
	return nil
}
