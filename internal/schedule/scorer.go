package schedule

import (
	"fmt"

	"github.com/example/algorecall/pkg/models"
)

// Concept scores start at 30 on first exposure and grow by 5 per saved
// problem, capped at 100. They only ever go up; decay is a non-goal.
const (
	initialConceptScore = 30
	conceptScoreStep    = 5
	maxConceptScore     = 100
)

// bumpConcepts records one exposure for every tag of a newly saved problem.
// Tags are expected to be normalized already.
func (e *Engine) bumpConcepts(tags []string) error {
	for _, tag := range tags {
		c, err := e.store.GetConcept(tag)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
		if c == nil {
			c = &models.Concept{Tag: tag, Score: initialConceptScore}
		} else {
			c.Score += conceptScoreStep
			if c.Score > maxConceptScore {
				c.Score = maxConceptScore
			}
		}
		if err := e.store.SaveConcept(c); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
	}
	return nil
}
