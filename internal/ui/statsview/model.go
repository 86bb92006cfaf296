package statsview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/analytics"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

var dayLabels = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Model is the read-only analytics view. All values are derived from
// completion history on each render; nothing here is stored.
type Model struct {
	tasks  []model.Task
	now    time.Time
	width  int
	height int
}

// New creates the stats view.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTasks replaces the task snapshot the stats are derived from.
func (m *Model) SetTasks(tasks []model.Task, now time.Time) {
	m.tasks = tasks
	m.now = now
}

// View renders streaks, completion rate and the weekday histogram.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render("Stats"))
	b.WriteString("\n\n")

	rate := analytics.CompletionRate(m.tasks, 7, m.now)
	b.WriteString(fmt.Sprintf("7-day completion: %.0f%%\n\n", rate*100))

	for _, task := range m.tasks {
		current := analytics.CurrentStreak(task.CompletedDates, m.now)
		best := analytics.BestStreak(task.CompletedDates)
		line := fmt.Sprintf(
			"%-24s streak %d (counter %d) · best %d",
			truncate(task.Title, 24), current, task.Streak, best,
		)
		b.WriteString(theme.ListItemStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hist := analytics.WeekdayHistogram(m.tasks)
	max := 1
	for _, v := range hist {
		if v > max {
			max = v
		}
	}
	for day, v := range hist {
		bar := strings.Repeat("█", v*20/max)
		b.WriteString(fmt.Sprintf("%s %-20s %d\n", dayLabels[day], bar, v))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
