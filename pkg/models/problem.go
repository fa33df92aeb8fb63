package models

import "time"

// Known judge platforms. Adapter names must use one of these values.
const (
	PlatformCodeforces = "codeforces"
	PlatformCodeChef   = "codechef"
	PlatformAtCoder    = "atcoder"
	PlatformLeetCode   = "leetcode"
)

// Problem is a solved problem tracked on the review ladder.
// ID is the problem URL with the query string stripped and never changes
// for the life of the record.
type Problem struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	URL            string    `json:"url" db:"url"`
	Platform       string    `json:"platform" db:"platform"`
	Tags           []string  `json:"tags"`
	Stage          int       `json:"stage" db:"stage"` // 1-3, removed past 3
	NextReviewDate time.Time `json:"next_review_date" db:"next_review_date"`
	LastReviewed   time.Time `json:"last_reviewed" db:"last_reviewed"`
}
