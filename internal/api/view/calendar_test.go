package view

import (
	"testing"
	"time"

	"github.com/gymtech/dashboard/internal/core/domain"
)

func activity(kind, recordedAt string) domain.ActivityLog {
	return domain.ActivityLog{ActivityType: kind, RecordedAt: recordedAt}
}

func TestBuildCalendar_Window(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	days := BuildCalendar(nil, now)

	if len(days) != 121 {
		t.Fatalf("expected 121 days (90 back + today + 30 ahead), got %d", len(days))
	}
	if got := days[0].Date; got != "2026-06-02" {
		t.Fatalf("window start: got %s", got)
	}
	if got := days[len(days)-1].Date; got != "2026-09-30" {
		t.Fatalf("window end: got %s", got)
	}
	if !days[90].Today {
		t.Fatalf("day 90 should be today")
	}
}

func TestBuildCalendar_BucketsByDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	logs := []domain.ActivityLog{
		activity("Workout", "2026-08-30T07:15:00Z"),
		activity("Health", "2026-08-30T19:00:00Z"),
		activity("Workout", "2026-08-29"),
		activity("Workout", "garbage"),
	}

	days := BuildCalendar(logs, now)
	yesterday := days[89]
	if got := yesterday.Date; got != "2026-08-30" {
		t.Fatalf("expected bucket for 2026-08-30, got %s", got)
	}
	if len(yesterday.Entries) != 2 {
		t.Fatalf("expected 2 entries on 2026-08-30, got %d", len(yesterday.Entries))
	}
	if !yesterday.HasWorkout {
		t.Fatalf("expected workout marker")
	}
	if days[90].HasWorkout {
		t.Fatalf("unparseable timestamps must be dropped, not bucketed into today")
	}
}

func TestWorkoutStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	logs := []domain.ActivityLog{
		activity("Workout", "2026-08-30T07:00:00Z"),
		activity("Workout", "2026-08-29T07:00:00Z"),
		activity("Workout", "2026-08-28T07:00:00Z"),
		activity("Health", "2026-08-27T07:00:00Z"), // not a workout, breaks the run
		activity("Workout", "2026-08-25T07:00:00Z"),
	}

	// No workout yet today: streak counts back from yesterday.
	if got := WorkoutStreak(logs, now); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}

	logs = append(logs, activity("Workout", "2026-08-31T08:00:00Z"))
	if got := WorkoutStreak(logs, now); got != 4 {
		t.Fatalf("expected streak 4 after today's workout, got %d", got)
	}

	if got := WorkoutStreak(nil, now); got != 0 {
		t.Fatalf("expected empty streak, got %d", got)
	}
}
