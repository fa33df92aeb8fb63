package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/example/algorecall/pkg/models"
)

// CodeChef detects accepted submissions on codechef.com across both the old
// and the new UI.
type CodeChef struct{}

func (CodeChef) Name() string { return models.PlatformCodeChef }

func (CodeChef) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "codechef.com") &&
		(strings.Contains(rawURL, "/problems/") || strings.Contains(rawURL, "/submit/"))
}

func (CodeChef) ExtractTitle(p *Page) string {
	if title := strings.TrimSpace(p.Find("h1").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(p.Find("div[class*='problem-title']").First().Text())
}

// ExtractTags reads the tag links at the bottom of the statement, keeping
// at most three.
func (CodeChef) ExtractTags(p *Page) []string {
	var tags []string
	p.Find("a[href*='/tags/problems/']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if tag := strings.TrimSpace(s.Text()); tag != "" {
			tags = append(tags, tag)
		}
		return len(tags) < 3
	})
	return tags
}

func (CodeChef) IsSolved(p *Page) bool {
	body := p.Text()

	// The result line under the submission table.
	if strings.Contains(body, "Result - Correct") || strings.Contains(body, "Result - AC") {
		return true
	}

	// The green success banner in the new UI.
	if p.Find("div[class*='StatusLabel__success']").Length() > 0 {
		return true
	}

	// Relaxed check: "Correct Answer" with no wrong-answer text anywhere.
	return strings.Contains(body, "Correct Answer") && !strings.Contains(body, "Wrong Answer")
}
