package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/example/algorecall/pkg/models"
)

// AtCoder detects accepted submissions on atcoder.jp. AtCoder shows partial
// AC labels while judging is still in progress, so a success label alone is
// not enough: the page must carry no WJ/Judging markers anywhere.
type AtCoder struct{}

func (AtCoder) Name() string { return models.PlatformAtCoder }

func (AtCoder) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "atcoder.jp/contests/") &&
		(strings.Contains(rawURL, "/tasks/") || strings.Contains(rawURL, "/submissions/"))
}

func (AtCoder) ExtractTitle(p *Page) string {
	// Task headers read "A - Problem Name".
	title := strings.TrimSpace(p.Find("span.h2").First().Text())
	if title == "" {
		return ""
	}
	if parts := strings.SplitN(title, "-", 2); len(parts) == 2 {
		if name := strings.TrimSpace(parts[1]); name != "" {
			return name
		}
	}
	return title
}

// ExtractTags returns nothing; AtCoder exposes no tags without plugins.
func (AtCoder) ExtractTags(*Page) []string {
	return nil
}

func (AtCoder) IsSolved(p *Page) bool {
	// Anything still in the judge queue disqualifies the whole page.
	if atcoderStillJudging(p) {
		return false
	}

	// Submission details page: the final verdict sits in the status cell.
	if strings.Contains(p.URL, "/submissions/") {
		status := strings.TrimSpace(p.Find("#judge-status, td.text-center > span.label-success").First().Text())
		if status == "AC" {
			return true
		}
	}

	// Submission tables elsewhere: a success label reading exactly "AC"
	// (not a per-test-case label) confirms the final verdict.
	solved := false
	p.Find("table.table td span.label-success").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "AC" {
			solved = true
			return false
		}
		return true
	})
	return solved
}

func atcoderStillJudging(p *Page) bool {
	pending := false
	p.Find(".label-warning, .label-default").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if strings.Contains(text, "WJ") || strings.Contains(text, "Judging") {
			pending = true
			return false
		}
		return true
	})
	if pending {
		return true
	}
	body := p.Text()
	return strings.Contains(body, "WJ") || strings.Contains(body, "Judging")
}
