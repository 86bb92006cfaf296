package scheduleview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
	Now  time.Time
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	parts := []string{i.Task.Recurrence.Label()}
	if i.Task.Time != "" {
		parts = append(parts, i.Task.Time)
	}
	parts = append(parts, fmt.Sprintf("STREAK: %d", i.Task.Streak))
	return strings.Join(parts, " | ")
}

// TaskDelegate implements list.ItemDelegate for rendering task rows.
type TaskDelegate struct{}

// Height returns the number of lines each item takes.
func (d TaskDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d TaskDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d TaskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task row.
func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}

	task := ti.Task
	done := task.CompletedOn(ti.Now)

	prefix := "○"
	if done {
		prefix = "✓"
	}

	timeBadge := "ALL DAY"
	if task.Time != "" {
		timeBadge = task.Time
	}

	priBadge := ""
	if task.Priority == model.PriorityHigh {
		priBadge = theme.PriorityStyle(task.Priority).Render(" !")
	}

	line := fmt.Sprintf(
		"%s %s  %s%s  %s | STREAK %d",
		prefix, timeBadge, task.Title, priBadge,
		task.Recurrence.Label(), task.Streak,
	)

	if done {
		line = theme.DoneStyle.Render(line)
	}

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
