package taskform

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

// TaskCreatedMsg is dispatched when a new task is created via the form.
type TaskCreatedMsg struct {
	Task model.Task
}

// TaskFormCancelMsg is dispatched when the user cancels the form.
type TaskFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title      string
	timeStr    string
	groupID    string
	priority   string
	recurrence string
	interval   string
	days       []string
}

// Model is the Bubble Tea model for the task creation form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	groups []model.ScheduleGroup
	width  int
	height int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{priority: model.PriorityNormal, recurrence: string(model.RecurDaily)},
		width:  width,
		height: height,
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetGroups sets the available schedule groups for the selector.
func (m *Model) SetGroups(groups []model.ScheduleGroup) {
	m.groups = groups
}

// Start initializes a fresh form.
func (m *Model) Start() tea.Cmd {
	m.fb.title = ""
	m.fb.timeStr = ""
	m.fb.groupID = model.DefaultGroupID
	m.fb.priority = model.PriorityNormal
	m.fb.recurrence = string(model.RecurDaily)
	m.fb.interval = "2"
	m.fb.days = nil

	groupOpts := make([]huh.Option[string], len(m.groups))
	for i, g := range m.groups {
		groupOpts[i] = huh.NewOption(g.Name, g.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.fb.title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Key("time").
				Title("Alarm time (HH:MM, empty for all-day)").
				Value(&m.fb.timeStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := model.ParseClock(s)
					return err
				}),
			huh.NewSelect[string]().
				Key("group").
				Title("Group").
				Options(groupOpts...).
				Value(&m.fb.groupID),
			huh.NewSelect[string]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("Normal", model.PriorityNormal),
					huh.NewOption("High", model.PriorityHigh),
				).
				Value(&m.fb.priority),
			huh.NewSelect[string]().
				Key("recurrence").
				Title("Repeats").
				Options(
					huh.NewOption("Daily", string(model.RecurDaily)),
					huh.NewOption("Every N days", string(model.RecurInterval)),
					huh.NewOption("Specific days", string(model.RecurSpecificDays)),
				).
				Value(&m.fb.recurrence),
			huh.NewInput().
				Key("interval").
				Title("Every how many days (interval only)").
				Value(&m.fb.interval),
			huh.NewMultiSelect[string]().
				Key("days").
				Title("Weekdays (specific days only)").
				Options(
					huh.NewOption("Sunday", "0"),
					huh.NewOption("Monday", "1"),
					huh.NewOption("Tuesday", "2"),
					huh.NewOption("Wednesday", "3"),
					huh.NewOption("Thursday", "4"),
					huh.NewOption("Friday", "5"),
					huh.NewOption("Saturday", "6"),
				).
				Value(&m.fb.days),
		),
	).WithWidth(m.width - 4).WithShowHelp(true)

	return m.form.Init()
}

// Update handles messages for the form view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m, func() tea.Msg { return TaskFormCancelMsg{} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		task, err := m.buildTask()
		if err != nil {
			// Validation already guards the fields; treat residual
			// errors as a cancel.
			return m, func() tea.Msg { return TaskFormCancelMsg{} }
		}
		return m, func() tea.Msg { return TaskCreatedMsg{Task: task} }
	}

	return m, cmd
}

// buildTask assembles a validated task from the form bindings.
func (m Model) buildTask() (model.Task, error) {
	rec := model.Daily()
	switch model.RecurrenceKind(m.fb.recurrence) {
	case model.RecurInterval:
		n := 0
		fmt.Sscanf(m.fb.interval, "%d", &n)
		if n < 1 {
			n = 2
		}
		rec = model.EveryNDays(n)
	case model.RecurSpecificDays:
		rec = model.Recurrence{Kind: model.RecurSpecificDays}
		for _, d := range m.fb.days {
			var v int
			fmt.Sscanf(d, "%d", &v)
			rec.DaysOfWeek = append(rec.DaysOfWeek, time.Weekday(v))
		}
	}

	task, err := model.NewTask(m.fb.title, m.fb.timeStr, m.fb.groupID, rec, time.Now())
	if err != nil {
		return model.Task{}, err
	}
	task.Priority = m.fb.priority
	return task, nil
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	title := theme.HeaderStyle.Render("New Task")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.form.View())
}
