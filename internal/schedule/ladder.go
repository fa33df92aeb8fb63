package schedule

import (
	"strings"
	"time"
)

// The review ladder is deliberately a small fixed set of intervals rather
// than a full SM-2 style algorithm: a new problem comes back after 3 days,
// a stage-1 pass after 7, a stage-2 pass after 21, and a stage-3 pass
// retires the record.
const (
	// InitialInterval is the delay before the first review of a new problem.
	InitialInterval = 3 * 24 * time.Hour
	// MaxStage is the last rung of the ladder; passing it removes the record.
	MaxStage = 3
)

var stageIntervals = map[int]time.Duration{
	1: 7 * 24 * time.Hour,
	2: 21 * 24 * time.Hour,
}

// NextInterval returns the review interval for a pass at the given stage.
// ok is false when the stage has no next rung and the record should retire.
func NextInterval(stage int) (time.Duration, bool) {
	interval, ok := stageIntervals[stage]
	return interval, ok
}

// CanonicalID derives the stable problem id from its URL by stripping the
// query string. Re-saving the same problem therefore hits the same record.
func CanonicalID(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
