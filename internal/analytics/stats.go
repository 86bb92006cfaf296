// Package analytics derives display statistics from completion
// history. Unlike the ledger's incrementally maintained streak counter,
// everything here is recomputed from CompletedDates on demand, so it is
// self-healing against out-of-order edits.
package analytics

import (
	"time"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/schedule"
)

// CurrentStreak walks backward from today counting consecutive
// completed days. An unchecked today does not break the run; the walk
// then starts from yesterday.
func CurrentStreak(dates []string, today time.Time) int {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}

	day := today
	if _, ok := set[day.Format(model.DateLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := set[day.Format(model.DateLayout)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// CompletionRate returns the fraction of active task-days completed
// over the trailing window of the given length, ending today. Days on
// which a task's recurrence is inactive do not count against it.
func CompletionRate(tasks []model.Task, days int, today time.Time) float64 {
	if days <= 0 {
		return 0
	}

	active := 0
	completed := 0
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		for _, task := range tasks {
			if !schedule.IsActiveOn(task.Recurrence, task.AnchorDate(), day) {
				continue
			}
			active++
			if task.CompletedOn(day) {
				completed++
			}
		}
	}

	if active == 0 {
		return 0
	}
	return float64(completed) / float64(active)
}

// WeekdayHistogram counts completions per weekday across all tasks.
// Index 0 is Sunday, matching time.Weekday.
func WeekdayHistogram(tasks []model.Task) [7]int {
	var hist [7]int
	for _, task := range tasks {
		for _, d := range task.CompletedDates {
			day, err := time.ParseInLocation(model.DateLayout, d, time.Local)
			if err != nil {
				continue
			}
			hist[day.Weekday()]++
		}
	}
	return hist
}

// BestStreak returns the longest consecutive run in the date set.
func BestStreak(dates []string) int {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}

	best := 0
	for _, d := range dates {
		day, err := time.ParseInLocation(model.DateLayout, d, time.Local)
		if err != nil {
			continue
		}
		// Only count runs from their first day.
		if _, ok := set[day.AddDate(0, 0, -1).Format(model.DateLayout)]; ok {
			continue
		}
		run := 0
		for {
			if _, ok := set[day.Format(model.DateLayout)]; !ok {
				break
			}
			run++
			day = day.AddDate(0, 0, 1)
		}
		if run > best {
			best = run
		}
	}
	return best
}
