package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/example/algorecall/pkg/models"
)

// Codeforces detects accepted verdicts on codeforces.com problem pages.
type Codeforces struct{}

func (Codeforces) Name() string { return models.PlatformCodeforces }

func (Codeforces) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "codeforces.com") &&
		(strings.Contains(rawURL, "/problem/") || strings.Contains(rawURL, "/problemset/problem"))
}

func (Codeforces) ExtractTitle(p *Page) string {
	return strings.TrimSpace(p.Find(".problem-statement .header .title").First().Text())
}

// ExtractTags reads the sidebar tag boxes, skipping rating tags like *1200.
func (Codeforces) ExtractTags(p *Page) []string {
	var tags []string
	p.Find(".tag-box").Each(func(_ int, s *goquery.Selection) {
		tag := strings.TrimSpace(s.Text())
		if tag != "" && !strings.Contains(tag, "*") {
			tags = append(tags, tag)
		}
	})
	return tags
}

// IsSolved looks for the accepted-verdict marker, either in the sidebar
// status box or in a submission row.
func (Codeforces) IsSolved(p *Page) bool {
	if p.Find("#sidebar .verdict-accepted").Length() > 0 {
		return true
	}
	return p.Find("span.verdict-accepted").Length() > 0
}
