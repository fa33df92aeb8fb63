package models

// Concept tracks how often a topic tag has appeared among saved problems.
// The score reflects exposure, not mastery, and never decays.
type Concept struct {
	Tag   string `json:"tag" db:"tag"` // lowercase topic label
	Score int    `json:"score" db:"score"`
}
