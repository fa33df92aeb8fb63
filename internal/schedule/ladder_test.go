package schedule

import (
	"testing"
	"time"
)

func TestNextInterval(t *testing.T) {
	tests := []struct {
		stage int
		want  time.Duration
		ok    bool
	}{
		{1, 7 * 24 * time.Hour, true},
		{2, 21 * 24 * time.Hour, true},
		{3, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := NextInterval(tt.stage)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NextInterval(%d) = (%v, %v), want (%v, %v)", tt.stage, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://leetcode.com/problems/two-sum/?envType=daily", "https://leetcode.com/problems/two-sum/"},
		{"https://codeforces.com/problemset/problem/1/A", "https://codeforces.com/problemset/problem/1/A"},
		{"https://atcoder.jp/contests/abc300/tasks/abc300_a?lang=en&x=1", "https://atcoder.jp/contests/abc300/tasks/abc300_a"},
	}
	for _, tt := range tests {
		if got := CanonicalID(tt.url); got != tt.want {
			t.Errorf("CanonicalID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
