package schedule

import (
	"time"

	"github.com/example/algorecall/pkg/models"
)

// dayFormat keys streak state by device-local calendar day.
const dayFormat = "2006-01-02"

// advanceStreak applies the daily-streak rules for an activity happening at
// now. A second activity on the same day changes nothing; an activity the
// day after the last one extends the streak; anything else restarts it at 1.
func advanceStreak(s models.Streak, now time.Time) models.Streak {
	today := now.Format(dayFormat)
	if s.LastStudyDate == today {
		return s
	}

	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)
	if s.LastStudyDate == yesterday {
		s.Days++
	} else {
		s.Days = 1
	}
	s.LastStudyDate = today
	return s
}
