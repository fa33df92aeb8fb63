package models

// Streak counts consecutive calendar days with at least one recorded
// activity (a new problem saved or a review completed).
type Streak struct {
	Days          int    `json:"days" db:"days"`
	LastStudyDate string `json:"last_study_date" db:"last_study_date"` // device-local day, YYYY-MM-DD
}
