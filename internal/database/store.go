package database

import (
	"fmt"

	"github.com/example/algorecall/pkg/models"
)

// Store bundles the three repositories behind the persistence surface the
// schedule engine mutates. It satisfies schedule.Store.
type Store struct {
	problems *ProblemRepository
	concepts *ConceptRepository
	streak   *StreakRepository
}

// NewStore creates a store over the global connection
func NewStore() *Store {
	return &Store{
		problems: NewProblemRepository(),
		concepts: NewConceptRepository(),
		streak:   NewStreakRepository(),
	}
}

func (s *Store) GetProblem(id string) (*models.Problem, error) {
	return s.problems.GetByID(id)
}

func (s *Store) AllProblems() ([]models.Problem, error) {
	return s.problems.GetAll()
}

func (s *Store) SaveProblem(p *models.Problem) error {
	return s.problems.Upsert(p)
}

func (s *Store) DeleteProblem(id string) error {
	return s.problems.Delete(id)
}

func (s *Store) GetConcept(tag string) (*models.Concept, error) {
	return s.concepts.GetByTag(tag)
}

func (s *Store) SaveConcept(c *models.Concept) error {
	return s.concepts.Upsert(c)
}

func (s *Store) GetStreak() (models.Streak, error) {
	return s.streak.Get()
}

func (s *Store) SaveStreak(streak models.Streak) error {
	return s.streak.Save(streak)
}

// Reset wipes all three entries. Each table is cleared independently;
// a failure part-way leaves the remaining entries untouched but valid.
func (s *Store) Reset() error {
	for _, table := range []string{"problems", "concepts", "streak"} {
		if _, err := DB.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to reset %s: %v", table, err)
		}
	}
	return nil
}
