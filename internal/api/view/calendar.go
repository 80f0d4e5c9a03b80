package view

import (
	"time"

	"github.com/gymtech/dashboard/internal/core/domain"
)

const (
	calendarDaysBack  = 90
	calendarDaysAhead = 30
	workoutActivity   = "Workout"
)

// CalendarDay is one bucket of the fitness journey strip: 90 days back
// through 30 days ahead, with that day's activity entries attached. Date is
// the day in 2006-01-02 form, matching the ?day= query parameter.
type CalendarDay struct {
	Date       string
	Today      bool
	HasWorkout bool
	Entries    []domain.ActivityLog
}

// BuildCalendar buckets activity logs by calendar day around now. Logs with
// unparseable timestamps are dropped rather than failing the whole strip.
func BuildCalendar(logs []domain.ActivityLog, now time.Time) []CalendarDay {
	byDay := make(map[string][]domain.ActivityLog)
	for _, l := range logs {
		ts, ok := parseRecordedAt(l.RecordedAt)
		if !ok {
			continue
		}
		key := ts.Format("2006-01-02")
		byDay[key] = append(byDay[key], l)
	}

	today := now.Format("2006-01-02")
	start := now.AddDate(0, 0, -calendarDaysBack)
	days := make([]CalendarDay, 0, calendarDaysBack+calendarDaysAhead+1)
	for i := 0; i <= calendarDaysBack+calendarDaysAhead; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		entries := byDay[key]
		days = append(days, CalendarDay{
			Date:       key,
			Today:      key == today,
			HasWorkout: hasWorkout(entries),
			Entries:    entries,
		})
	}
	return days
}

// WorkoutStreak counts consecutive days with a workout ending today (or
// yesterday, so an evening gap does not zero the streak mid-day).
func WorkoutStreak(logs []domain.ActivityLog, now time.Time) int {
	workouts := make(map[string]bool)
	for _, l := range logs {
		if l.ActivityType != workoutActivity {
			continue
		}
		if ts, ok := parseRecordedAt(l.RecordedAt); ok {
			workouts[ts.Format("2006-01-02")] = true
		}
	}

	day := now
	if !workouts[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for workouts[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func hasWorkout(entries []domain.ActivityLog) bool {
	for _, e := range entries {
		if e.ActivityType == workoutActivity {
			return true
		}
	}
	return false
}

// parseRecordedAt accepts the timestamp shapes the gym API emits.
func parseRecordedAt(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
