package scheduleview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/keys"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

// ToggleRequestedMsg asks the app to flip a task's done state for today.
type ToggleRequestedMsg struct {
	TaskID string
}

// DeleteRequestedMsg asks the app to delete a task.
type DeleteRequestedMsg struct {
	TaskID string
}

// NewTaskRequestedMsg asks the app to open the task form.
type NewTaskRequestedMsg struct{}

// AnalyzeRequestedMsg asks the app to run the AI schedule analysis.
type AnalyzeRequestedMsg struct{}

// Model is the schedule list view.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	now    time.Time
	width  int
	height int
}

// New creates the schedule view.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, TaskDelegate{}, width, height-2)
	l.Title = "Schedule"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{
		list:   l,
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// SetTasks replaces the displayed tasks, preserving the cursor where
// possible. now is used to render today's completion state.
func (m *Model) SetTasks(tasks []model.Task, now time.Time) {
	m.now = now
	selected := m.list.Index()

	items := make([]list.Item, len(tasks))
	for i, task := range tasks {
		items[i] = TaskItem{Task: task, Now: now}
	}
	m.list.SetItems(items)

	if selected < len(items) {
		m.list.Select(selected)
	}
}

// Selected returns the task under the cursor, if any.
func (m Model) Selected() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Update handles messages for the schedule view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Toggle):
			if task, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleRequestedMsg{TaskID: task.ID} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if task, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteRequestedMsg{TaskID: task.ID} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.New):
			return m, func() tea.Msg { return NewTaskRequestedMsg{} }
		case key.Matches(keyMsg, m.keys.Analyze):
			return m, func() tea.Msg { return AnalyzeRequestedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the schedule list.
func (m Model) View() string {
	return m.list.View()
}
