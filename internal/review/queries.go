// Package review derives display views over the tracked problem set.
// Everything here is read-only and recomputed on every access; the set is
// small enough that caching would only add invalidation problems.
package review

import (
	"sort"
	"strings"
	"time"

	"github.com/example/algorecall/pkg/models"
)

// Due returns records whose review date is at or before now, soonest first.
func Due(problems []models.Problem, now time.Time) []models.Problem {
	var out []models.Problem
	for _, p := range problems {
		if !p.NextReviewDate.After(now) {
			out = append(out, p)
		}
	}
	sortByReviewDate(out)
	return out
}

// Upcoming returns records whose review date is after now, soonest first.
func Upcoming(problems []models.Problem, now time.Time) []models.Problem {
	var out []models.Problem
	for _, p := range problems {
		if p.NextReviewDate.After(now) {
			out = append(out, p)
		}
	}
	sortByReviewDate(out)
	return out
}

// Search keeps records whose title, platform or any tag contains the query,
// case-insensitively. An empty query keeps everything.
func Search(problems []models.Problem, query string) []models.Problem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return problems
	}
	var out []models.Problem
	for _, p := range problems {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Problem, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Platform), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// TagCount is one row of the topic backlog ranking.
type TagCount struct {
	Tag   string
	Count int
}

// TopicBacklog counts records per tag across the entire set (not just due
// items), ranked by descending count. Records without tags are reported
// separately as the untagged count and stay out of the ranking.
func TopicBacklog(problems []models.Problem) ([]TagCount, int) {
	counts := make(map[string]int)
	untagged := 0
	for _, p := range problems {
		if len(p.Tags) == 0 {
			untagged++
			continue
		}
		for _, tag := range p.Tags {
			counts[strings.ToLower(tag)]++
		}
	}

	ranking := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranking = append(ranking, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Tag < ranking[j].Tag
	})
	return ranking, untagged
}

func sortByReviewDate(problems []models.Problem) {
	sort.Slice(problems, func(i, j int) bool {
		return problems[i].NextReviewDate.Before(problems[j].NextReviewDate)
	})
}
