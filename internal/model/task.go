package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task priority levels.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// DateLayout is the canonical local-date form stored in CompletedDates.
const DateLayout = "2006-01-02"

// DefaultGroupID is the group assigned to tasks that predate grouping.
const DefaultGroupID = "default"

// Task is a recurring scheduled item. CompletedDates is the sole source
// of truth for "done today"; Streak is maintained incrementally by the
// completion ledger and is not derived from CompletedDates.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Time is an optional alarm time of day in 24-hour "HH:MM" form,
	// interpreted in the local timezone. Empty means due all day with
	// no alarm.
	Time string `json:"time,omitempty"`

	GroupID    string     `json:"groupId"`
	Recurrence Recurrence `json:"recurrence"`

	// CompletedDates holds each local date (DateLayout) the task was
	// marked done.
	CompletedDates []string `json:"completedDates"`

	// LastCompletedAt is a unix-millisecond stamp of the latest toggle.
	LastCompletedAt int64 `json:"lastCompletedAt,omitempty"`

	Streak    int    `json:"streak"`
	Priority  string `json:"priority"`
	CreatedAt int64  `json:"createdAt"`
}

// NewTask builds a validated task. timeStr may be empty; a non-empty
// value must be a well-formed "HH:MM" clock string.
func NewTask(title, timeStr, groupID string, rec Recurrence, now time.Time) (Task, error) {
	if title == "" {
		return Task{}, fmt.Errorf("task title must not be empty")
	}
	if err := rec.Validate(); err != nil {
		return Task{}, fmt.Errorf("invalid recurrence: %w", err)
	}
	if timeStr != "" {
		if _, err := ParseClock(timeStr); err != nil {
			return Task{}, err
		}
	}
	if groupID == "" {
		groupID = DefaultGroupID
	}

	return Task{
		ID:             uuid.NewString(),
		Title:          title,
		Time:           timeStr,
		GroupID:        groupID,
		Recurrence:     rec,
		CompletedDates: []string{},
		Priority:       PriorityNormal,
		CreatedAt:      now.UnixMilli(),
	}, nil
}

// CompletedOn reports whether the given local date is marked done.
func (t Task) CompletedOn(date time.Time) bool {
	day := date.Format(DateLayout)
	for _, d := range t.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// AnchorDate returns the local calendar date the interval recurrence
// counts from: the task's creation date, at midnight.
func (t Task) AnchorDate() time.Time {
	created := time.UnixMilli(t.CreatedAt).Local()
	return time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.Local)
}

// Clock is a validated time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict 24-hour "HH:MM" string. Malformed input is
// a contract violation on the caller's side and is reported, never
// coerced to a default.
func ParseClock(s string) (Clock, error) {
	var c Clock
	if len(s) != 5 || s[2] != ':' {
		return c, fmt.Errorf("malformed clock string %q: want HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return c, fmt.Errorf("malformed clock string %q: want HH:MM", s)
		}
	}
	c.Hour = int(s[0]-'0')*10 + int(s[1]-'0')
	c.Minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if c.Hour > 23 || c.Minute > 59 {
		return c, fmt.Errorf("clock string %q out of range", s)
	}
	return c, nil
}

// SecondsFromMidnight converts the clock to seconds since local midnight.
func (c Clock) SecondsFromMidnight() int {
	return c.Hour*3600 + c.Minute*60
}

// String renders the canonical "HH:MM" form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
