package adapters

import "testing"

func TestDefaultRegistryMatchesEachPlatform(t *testing.T) {
	r := Default()
	tests := []struct {
		url  string
		want string
	}{
		{"https://codeforces.com/problemset/problem/4/A", "codeforces"},
		{"https://www.codechef.com/problems/CHEFSTR", "codechef"},
		{"https://atcoder.jp/contests/abc300/tasks/abc300_a", "atcoder"},
		{"https://leetcode.com/problems/two-sum/", "leetcode"},
	}
	for _, tt := range tests {
		a := r.Match(tt.url)
		if a == nil {
			t.Errorf("no adapter matched %q", tt.url)
			continue
		}
		if a.Name() != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.url, a.Name(), tt.want)
		}
	}
}

func TestRegistryUnknownURL(t *testing.T) {
	if a := Default().Match("https://example.com/problems/1"); a != nil {
		t.Errorf("unrelated URL should match no adapter, got %s", a.Name())
	}
}

func TestRegistryFirstMatchWins(t *testing.T) {
	// A contrived URL that two adapters claim; registration order decides.
	url := "https://codeforces.com/problemset/problem/1/A?ref=leetcode.com/problems/two-sum"
	a := Default().Match(url)
	if a == nil || a.Name() != "codeforces" {
		t.Errorf("first registered adapter should win, got %v", a)
	}
}
