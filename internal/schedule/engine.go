package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/algorecall/pkg/models"
)

// Action is the outcome a user reports for a due review.
type Action string

const (
	ActionPass  Action = "pass"
	ActionClear Action = "clear"
)

// ErrPersistenceUnavailable reports that the backing store could not be read
// or written. Callers must assume the mutation did not apply.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// Store is the persistence surface the engine mutates. The three entries
// (problems, concepts, streak) are independently writable; the engine never
// relies on a transaction spanning more than one of them.
type Store interface {
	GetProblem(id string) (*models.Problem, error)
	AllProblems() ([]models.Problem, error)
	SaveProblem(p *models.Problem) error
	DeleteProblem(id string) error
	GetConcept(tag string) (*models.Concept, error)
	SaveConcept(c *models.Concept) error
	GetStreak() (models.Streak, error)
	SaveStreak(s models.Streak) error
	Reset() error
}

// SaveRequest carries the fields of a problem about to enter the rotation.
type SaveRequest struct {
	Title    string
	URL      string
	Platform string
	Tags     []string
}

// Engine owns every mutation of problems, concepts and streak state. All
// writes funnel through a single request loop, so there is exactly one
// writer no matter how many pollers or bot handlers are active. Reads for
// display do not go through the engine and may observe a slightly stale
// snapshot.
type Engine struct {
	store    Store
	requests chan request
	now      func() time.Time
}

type request struct {
	run   func() error
	reply chan error
}

// NewEngine creates an engine over the given store. Run must be started
// before any mutating call is made.
func NewEngine(store Store) *Engine {
	return &Engine{
		store:    store,
		requests: make(chan request),
		now:      time.Now,
	}
}

// Run serves mutation requests one at a time until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case req := <-e.requests:
			req.reply <- req.run()
		case <-ctx.Done():
			return
		}
	}
}

// submit hands a mutation to the request loop and waits for its completion.
func (e *Engine) submit(ctx context.Context, run func() error) error {
	req := request{run: run, reply: make(chan error, 1)}
	select {
	case e.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RecordProblem puts a problem on the review ladder with a fresh three-day
// interval. Saving an already-tracked problem overwrites the record and
// restarts the ladder at stage 1.
func (e *Engine) RecordProblem(ctx context.Context, sr SaveRequest) error {
	return e.submit(ctx, func() error { return e.recordProblem(sr) })
}

// AdvanceReview applies a pass or clear to a tracked problem. An unknown id
// is a silent no-op: a review for a record that was already removed is an
// expected race with the UI, not a fault.
func (e *Engine) AdvanceReview(ctx context.Context, id string, action Action) error {
	return e.submit(ctx, func() error { return e.advanceReview(id, action) })
}

// ResetAll wipes problems, concepts and streak state.
func (e *Engine) ResetAll(ctx context.Context) error {
	return e.submit(ctx, func() error {
		if err := e.store.Reset(); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
		return nil
	})
}

func (e *Engine) recordProblem(sr SaveRequest) error {
	now := e.now()

	title := strings.TrimSpace(sr.Title)
	if title == "" {
		title = "Problem"
	}

	p := &models.Problem{
		ID:             CanonicalID(sr.URL),
		Title:          title,
		URL:            sr.URL,
		Platform:       sr.Platform,
		Tags:           normalizeTags(sr.Tags),
		Stage:          1,
		NextReviewDate: now.Add(InitialInterval),
		LastReviewed:   now,
	}
	if err := e.store.SaveProblem(p); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	if err := e.bumpConcepts(p.Tags); err != nil {
		return err
	}

	return e.touchStreak(now)
}

func (e *Engine) advanceReview(id string, action Action) error {
	p, err := e.store.GetProblem(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if p == nil {
		return nil
	}

	now := e.now()
	if action == ActionClear || p.Stage >= MaxStage {
		// Ladder exhausted or explicitly cleared: the record leaves the rotation.
		if err := e.store.DeleteProblem(id); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
	} else {
		// Interval is looked up by the stage before the increment.
		interval, ok := NextInterval(p.Stage)
		if !ok {
			interval = InitialInterval
		}
		p.Stage++
		p.NextReviewDate = now.Add(interval)
		p.LastReviewed = now
		if err := e.store.SaveProblem(p); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
		}
	}

	return e.touchStreak(now)
}

// touchStreak records today's activity against the streak counter.
func (e *Engine) touchStreak(now time.Time) error {
	s, err := e.store.GetStreak()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	next := advanceStreak(s, now)
	if next == s {
		return nil
	}
	if err := e.store.SaveStreak(next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// normalizeTags lowercases, trims and de-duplicates tags, dropping empties.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
