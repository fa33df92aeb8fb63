package adapters

import (
	"strings"
	"testing"
)

func page(t *testing.T, url, html string) *Page {
	t.Helper()
	p, err := NewPage(url, strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return p
}

// --- Codeforces ---

func TestCodeforcesMatches(t *testing.T) {
	a := Codeforces{}
	tests := []struct {
		url  string
		want bool
	}{
		{"https://codeforces.com/problemset/problem/1/A", true},
		{"https://codeforces.com/contest/1729/problem/F", true},
		{"https://codeforces.com/contest/1729/standings", false},
		{"https://leetcode.com/problems/two-sum/", false},
	}
	for _, tt := range tests {
		if got := a.Matches(tt.url); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestCodeforcesTitleAndTags(t *testing.T) {
	html := `<html><body>
		<div class="problem-statement"><div class="header"><div class="title">A. Watermelon</div></div></div>
		<span class="tag-box"> math </span>
		<span class="tag-box">brute force</span>
		<span class="tag-box">*800</span>
	</body></html>`
	p := page(t, "https://codeforces.com/problemset/problem/4/A", html)

	a := Codeforces{}
	if got := a.ExtractTitle(p); got != "A. Watermelon" {
		t.Errorf("title = %q", got)
	}
	tags := a.ExtractTags(p)
	if len(tags) != 2 || tags[0] != "math" || tags[1] != "brute force" {
		t.Errorf("tags = %v, rating tags must be skipped", tags)
	}
}

func TestCodeforcesSolved(t *testing.T) {
	solved := `<html><body><div id="sidebar"><span class="verdict-accepted">Accepted</span></div></body></html>`
	pending := `<html><body><div id="sidebar"><span class="verdict-waiting">Running on test 3</span></div></body></html>`

	a := Codeforces{}
	if !a.IsSolved(page(t, "https://codeforces.com/problemset/problem/4/A", solved)) {
		t.Errorf("accepted verdict in sidebar should count as solved")
	}
	if a.IsSolved(page(t, "https://codeforces.com/problemset/problem/4/A", pending)) {
		t.Errorf("a running submission is not solved")
	}
}

// --- LeetCode ---

func TestLeetCodeTitleFallsBackToDocumentTitle(t *testing.T) {
	a := LeetCode{}

	withAttr := `<html><body><div data-cy="question-title">1. Two Sum</div></body></html>`
	if got := a.ExtractTitle(page(t, "https://leetcode.com/problems/two-sum/", withAttr)); got != "1. Two Sum" {
		t.Errorf("title = %q", got)
	}

	docOnly := `<html><head><title>Two Sum - LeetCode</title></head><body></body></html>`
	if got := a.ExtractTitle(page(t, "https://leetcode.com/problems/two-sum/", docOnly)); got != "Two Sum" {
		t.Errorf("fallback title = %q", got)
	}

	empty := `<html><body></body></html>`
	if got := a.ExtractTitle(page(t, "https://leetcode.com/problems/two-sum/", empty)); got != "" {
		t.Errorf("undeterminable title should be empty, got %q", got)
	}
}

func TestLeetCodeSolvedRequiresSubmissionIndicators(t *testing.T) {
	a := LeetCode{}
	url := "https://leetcode.com/problems/two-sum/"

	submission := `<html><body>
		<div data-e2e-locator="submission-result">Accepted</div>
		<div>Runtime 4ms Beats 95.2% of users</div>
	</body></html>`
	if !a.IsSolved(page(t, url, submission)) {
		t.Errorf("accepted submission with percentile stats should count")
	}

	// A sample-test run also says Accepted but has no submission stats.
	sampleRun := `<html><body>
		<div data-e2e-locator="submission-result">Accepted</div>
		<div>Case 1 passed</div>
	</body></html>`
	if a.IsSolved(page(t, url, sampleRun)) {
		t.Errorf("sample-case accept must not count as solved")
	}

	judging := `<html><body><div data-e2e-locator="submission-result">Pending</div></body></html>`
	if a.IsSolved(page(t, url, judging)) {
		t.Errorf("pending verdict must not count as solved")
	}
}

func TestLeetCodeSolvedOnSubmissionDetailPage(t *testing.T) {
	a := LeetCode{}
	html := `<html><body><div>Accepted</div><div>Beats 80.1%</div></body></html>`
	if !a.IsSolved(page(t, "https://leetcode.com/problems/two-sum/submissions/123/", html)) {
		t.Errorf("accepted past submission should count")
	}
}

func TestLeetCodeTags(t *testing.T) {
	html := `<html><body>
		<a href="/tag/array/">Array</a>
		<a href="/tag/hash-table/">Hash Table</a>
		<a href="/problems/other/">Other</a>
	</body></html>`
	tags := LeetCode{}.ExtractTags(page(t, "https://leetcode.com/problems/two-sum/", html))
	if len(tags) != 2 || tags[0] != "Array" || tags[1] != "Hash Table" {
		t.Errorf("tags = %v", tags)
	}
}

// --- AtCoder ---

func TestAtCoderMatches(t *testing.T) {
	a := AtCoder{}
	if !a.Matches("https://atcoder.jp/contests/abc300/tasks/abc300_a") {
		t.Errorf("task page should match")
	}
	if !a.Matches("https://atcoder.jp/contests/abc300/submissions/12345") {
		t.Errorf("submission page should match")
	}
	if a.Matches("https://atcoder.jp/contests/abc300") {
		t.Errorf("contest top page should not match")
	}
}

func TestAtCoderTitleStripsTaskLetter(t *testing.T) {
	html := `<html><body><span class="h2">A - Welcome to AtCoder</span></body></html>`
	if got := (AtCoder{}).ExtractTitle(page(t, "https://atcoder.jp/contests/abs/tasks/abs_a", html)); got != "Welcome to AtCoder" {
		t.Errorf("title = %q", got)
	}
}

func TestAtCoderSolvedWaitsForFinalVerdict(t *testing.T) {
	a := AtCoder{}
	url := "https://atcoder.jp/contests/abc300/submissions/12345"

	final := `<html><body>
		<table class="table"><tr><td><span id="judge-status" class="label-success">AC</span></td></tr></table>
	</body></html>`
	if !a.IsSolved(page(t, url, final)) {
		t.Errorf("final AC verdict should count")
	}

	// Partial AC rows while the queue label is still up must be excluded.
	stillJudging := `<html><body>
		<span class="label-warning">WJ</span>
		<table class="table"><tr><td><span class="label-success">AC</span></td></tr></table>
	</body></html>`
	if a.IsSolved(page(t, url, stillJudging)) {
		t.Errorf("AC with a waiting-for-judge label must not count")
	}

	judgingText := `<html><body>
		<table class="table"><tr><td><span class="label-success">AC</span></td><td>Judging 3/20</td></tr></table>
	</body></html>`
	if a.IsSolved(page(t, url, judgingText)) {
		t.Errorf("AC with judging progress text must not count")
	}

	// A per-test-case label that is not exactly "AC" does not confirm.
	partial := `<html><body>
		<table class="table"><tr><td><span class="label-success">AC x 3</span></td></tr></table>
	</body></html>`
	if a.IsSolved(page(t, url, partial)) {
		t.Errorf("aggregate case labels must not count")
	}
}

// --- CodeChef ---

func TestCodeChefTitleFallback(t *testing.T) {
	a := CodeChef{}
	withH1 := `<html><body><h1>Chef and Strings</h1></body></html>`
	if got := a.ExtractTitle(page(t, "https://www.codechef.com/problems/CHEFSTR", withH1)); got != "Chef and Strings" {
		t.Errorf("title = %q", got)
	}
	newUI := `<html><body><div class="_problem-title__abc">Chef and Strings</div></body></html>`
	if got := a.ExtractTitle(page(t, "https://www.codechef.com/problems/CHEFSTR", newUI)); got != "Chef and Strings" {
		t.Errorf("new-ui title = %q", got)
	}
}

func TestCodeChefTagsCapAtThree(t *testing.T) {
	html := `<html><body>
		<a href="/tags/problems/math">math</a>
		<a href="/tags/problems/strings">strings</a>
		<a href="/tags/problems/greedy">greedy</a>
		<a href="/tags/problems/dp">dp</a>
	</body></html>`
	tags := CodeChef{}.ExtractTags(page(t, "https://www.codechef.com/problems/CHEFSTR", html))
	if len(tags) != 3 {
		t.Errorf("tags should cap at three, got %v", tags)
	}
}

func TestCodeChefSolved(t *testing.T) {
	a := CodeChef{}
	url := "https://www.codechef.com/submit/CHEFSTR"

	tests := []struct {
		name string
		html string
		want bool
	}{
		{"result line", `<html><body><div>Result - Correct</div></body></html>`, true},
		{"success banner", `<html><body><div class="_StatusLabel__success_x">Success</div></body></html>`, true},
		{"correct answer", `<html><body><div>Correct Answer</div></body></html>`, true},
		{"mixed verdicts", `<html><body><div>Correct Answer</div><div>Wrong Answer</div></body></html>`, false},
		{"wrong answer", `<html><body><div>Wrong Answer</div></body></html>`, false},
	}
	for _, tt := range tests {
		if got := a.IsSolved(page(t, url, tt.html)); got != tt.want {
			t.Errorf("%s: IsSolved = %v, want %v", tt.name, got, tt.want)
		}
	}
}
