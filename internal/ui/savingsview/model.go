package savingsview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/keys"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

// LogRequestedMsg asks the app to record a savings movement.
type LogRequestedMsg struct {
	GoalID string
	Amount float64
	Type   string
}

// goalItem wraps a model.SavingsGoal for the bubbles list.
type goalItem struct {
	goal model.SavingsGoal
}

// FilterValue returns the string used for fuzzy filtering.
func (i goalItem) FilterValue() string { return i.goal.Name }

// goalDelegate renders goal rows with a progress bar.
type goalDelegate struct{}

func (d goalDelegate) Height() int  { return 1 }
func (d goalDelegate) Spacing() int { return 0 }

func (d goalDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d goalDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	gi, ok := item.(goalItem)
	if !ok {
		return
	}
	g := gi.goal

	ratio := 0.0
	if g.TargetAmount > 0 {
		ratio = g.CurrentAmount / g.TargetAmount
		if ratio > 1 {
			ratio = 1
		}
	}
	const barWidth = 20
	filled := int(ratio * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	line := fmt.Sprintf(
		"%s  [%s] %.0f%%  %.2f / %.2f %s",
		g.Name, bar, ratio*100, g.CurrentAmount, g.TargetAmount, g.Currency,
	)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the savings view: goals with an inline amount prompt for
// deposits and withdrawals.
type Model struct {
	list      list.Model
	keys      *keys.KeyMap
	input     textinput.Model
	entryMode bool
	entryType string
	width     int
	height    int
}

// New creates the savings view.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, goalDelegate{}, width, height-3)
	l.Title = "Savings"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.Prompt = "> "
	ti.CharLimit = 12

	return Model{
		list:   l,
		keys:   k,
		input:  ti,
		width:  width,
		height: height,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-3)
}

// SetGoals replaces the displayed goals.
func (m *Model) SetGoals(goals []model.SavingsGoal) {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = goalItem{goal: g}
	}
	selected := m.list.Index()
	m.list.SetItems(items)
	if selected < len(items) {
		m.list.Select(selected)
	}
}

// Entering reports whether the amount prompt is open and should
// receive all key input.
func (m Model) Entering() bool {
	return m.entryMode
}

// Selected returns the goal under the cursor, if any.
func (m Model) Selected() (model.SavingsGoal, bool) {
	item, ok := m.list.SelectedItem().(goalItem)
	if !ok {
		return model.SavingsGoal{}, false
	}
	return item.goal, true
}

// Update handles messages for the savings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.entryMode {
		if !isKey {
			return m, nil
		}
		switch keyMsg.String() {
		case "enter":
			m.entryMode = false
			m.input.Blur()
			amount, err := strconv.ParseFloat(m.input.Value(), 64)
			if err != nil || amount <= 0 {
				return m, nil
			}
			goal, ok := m.Selected()
			if !ok {
				return m, nil
			}
			entryType := m.entryType
			return m, func() tea.Msg {
				return LogRequestedMsg{GoalID: goal.ID, Amount: amount, Type: entryType}
			}
		case "esc":
			m.entryMode = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if isKey {
		switch keyMsg.String() {
		case "d":
			return m.startEntry(model.SavingsDeposit)
		case "w":
			return m.startEntry(model.SavingsWithdrawal)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// startEntry opens the amount prompt for the selected goal.
func (m Model) startEntry(entryType string) (Model, tea.Cmd) {
	if _, ok := m.Selected(); !ok {
		return m, nil
	}
	m.entryMode = true
	m.entryType = entryType
	m.input.SetValue("")
	return m, m.input.Focus()
}

// View renders the savings view.
func (m Model) View() string {
	if m.entryMode {
		label := "Deposit"
		if m.entryType == model.SavingsWithdrawal {
			label = "Withdraw"
		}
		prompt := theme.HelpStyle.Render(label+" amount: ") + m.input.View()
		return m.list.View() + "\n" + prompt
	}
	hints := theme.HelpStyle.Render("d deposit · w withdraw")
	return m.list.View() + "\n" + hints
}
