package schedule

import (
	"testing"
	"time"

	"github.com/example/algorecall/pkg/models"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	s := advanceStreak(models.Streak{}, day("2026-03-10 09:00"))
	if s.Days != 1 {
		t.Errorf("expected streak 1 after first activity, got %d", s.Days)
	}
	if s.LastStudyDate != "2026-03-10" {
		t.Errorf("expected last study date 2026-03-10, got %q", s.LastStudyDate)
	}
}

func TestAdvanceStreakSameDayIsNoOp(t *testing.T) {
	s := advanceStreak(models.Streak{}, day("2026-03-10 09:00"))
	again := advanceStreak(s, day("2026-03-10 23:30"))
	if again != s {
		t.Errorf("second activity on the same day should change nothing: %+v vs %+v", again, s)
	}
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	s := models.Streak{}
	for _, at := range []string{"2026-03-10 09:00", "2026-03-11 20:00", "2026-03-12 07:15"} {
		s = advanceStreak(s, day(at))
	}
	if s.Days != 3 {
		t.Errorf("expected streak 3 after three consecutive days, got %d", s.Days)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	s := advanceStreak(models.Streak{}, day("2026-03-10 09:00"))
	s = advanceStreak(s, day("2026-03-13 09:00"))
	if s.Days != 1 {
		t.Errorf("expected streak reset to 1 after skipping days, got %d", s.Days)
	}
	if s.LastStudyDate != "2026-03-13" {
		t.Errorf("reset path must still move the study date, got %q", s.LastStudyDate)
	}
}

func TestAdvanceStreakAcrossMonthBoundary(t *testing.T) {
	s := advanceStreak(models.Streak{}, day("2026-02-28 22:00"))
	s = advanceStreak(s, day("2026-03-01 08:00"))
	if s.Days != 2 {
		t.Errorf("expected streak 2 across month boundary, got %d", s.Days)
	}
}
