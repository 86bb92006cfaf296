package model

import (
	"fmt"
	"time"
)

// Intent action kinds returned by the AI command parser.
const (
	IntentCreate = "create"
	IntentUpdate = "update"
	IntentDelete = "delete"
)

// TaskIntent is one structured action parsed from a natural-language
// command. The scheduling engine only ever consumes these parsed
// results; it never talks to the AI service itself.
type TaskIntent struct {
	Type string `json:"type"`

	// Data carries the fields of a task to create.
	Data *IntentTaskData `json:"data,omitempty"`

	// Query identifies the target task for update/delete by title match.
	Query string `json:"query,omitempty"`

	// Updates carries the fields to change on an update.
	Updates *IntentTaskData `json:"updates,omitempty"`
}

// IntentTaskData is the task payload inside a create or update intent.
type IntentTaskData struct {
	Title        string `json:"title,omitempty"`
	Time         string `json:"time,omitempty"`
	Priority     string `json:"priority,omitempty"`
	Recurrence   string `json:"recurrence,omitempty"`
	SpecificDays []int  `json:"specificDays,omitempty"`
}

// Validate checks the intent is well-formed enough to act on.
func (i TaskIntent) Validate() error {
	switch i.Type {
	case IntentCreate:
		if i.Data == nil || i.Data.Title == "" {
			return fmt.Errorf("create intent missing task data")
		}
		if i.Data.Time != "" {
			if _, err := ParseClock(i.Data.Time); err != nil {
				return err
			}
		}
		return nil
	case IntentUpdate:
		if i.Query == "" || i.Updates == nil {
			return fmt.Errorf("update intent missing query or updates")
		}
		if i.Updates.Time != "" {
			if _, err := ParseClock(i.Updates.Time); err != nil {
				return err
			}
		}
		return nil
	case IntentDelete:
		if i.Query == "" {
			return fmt.Errorf("delete intent missing query")
		}
		return nil
	default:
		return fmt.Errorf("unknown intent type %q", i.Type)
	}
}

// RecurrenceFromIntent maps the loose string form the parser emits onto
// the closed Recurrence union. Unknown values default to daily.
func RecurrenceFromIntent(d IntentTaskData) Recurrence {
	switch d.Recurrence {
	case string(RecurSpecificDays):
		rec := Recurrence{Kind: RecurSpecificDays}
		for _, v := range d.SpecificDays {
			if v >= 0 && v <= 6 {
				rec.DaysOfWeek = append(rec.DaysOfWeek, time.Weekday(v))
			}
		}
		return rec
	case string(RecurInterval):
		return EveryNDays(2)
	default:
		return Daily()
	}
}
