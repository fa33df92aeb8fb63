package database

import (
	"database/sql"
	"fmt"

	"github.com/example/algorecall/pkg/models"
)

// The streak table holds a single row.
const streakRowID = 1

// StreakRepository handles database operations for the study streak
type StreakRepository struct{}

// NewStreakRepository creates a new repository instance
func NewStreakRepository() *StreakRepository {
	return &StreakRepository{}
}

// Get returns the current streak state. A missing row means no activity yet.
func (r *StreakRepository) Get() (models.Streak, error) {
	var streak models.Streak
	query := DB.Rebind("SELECT days, last_study_date FROM streak WHERE id = ?")
	err := DB.Get(&streak, query, streakRowID)
	if err == sql.ErrNoRows {
		return models.Streak{}, nil
	}
	if err != nil {
		return models.Streak{}, fmt.Errorf("failed to get streak: %v", err)
	}
	return streak, nil
}

// Save stores the streak state
func (r *StreakRepository) Save(s models.Streak) error {
	query := DB.Rebind(`
		INSERT INTO streak (id, days, last_study_date) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			days = excluded.days,
			last_study_date = excluded.last_study_date
	`)
	if _, err := DB.Exec(query, streakRowID, s.Days, s.LastStudyDate); err != nil {
		return fmt.Errorf("failed to save streak: %v", err)
	}
	return nil
}
