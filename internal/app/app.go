package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	aiservice "github.com/AdeShaq/SUPERSCHEDULER/internal/ai"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/credential"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/keys"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/notify"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/schedule"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/sound"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/store"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/commandview"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/savingsview"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/scheduleview"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/statsview"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/taskform"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/ui/vaultview"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewSchedule ViewState = iota
	ViewStats
	ViewVault
	ViewSavings
	ViewTaskForm
	ViewCommand
)

// TickMsg drives the once-per-second scheduling loop.
type TickMsg time.Time

// aiTextMsg carries a summarize/analyze result back to the UI.
type aiTextMsg struct {
	text string
}

// intentsMsg carries parsed command intents (or the failure) back to
// the UI.
type intentsMsg struct {
	intents []model.TaskIntent
	err     error
}

// Model is the root Bubble Tea model that owns the tick loop, the
// alarm clock, view routing, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	keys         *keys.KeyMap
	alarm        *schedule.AlarmClock
	player       sound.Player
	assistant    *aiservice.Assistant

	scheduleView scheduleview.Model
	statsView    statsview.Model
	vaultView    vaultview.Model
	savingsView  savingsview.Model
	taskForm     taskform.Model
	commandView  commandview.Model

	settings  model.Settings
	countdown string
	nextTitle string
	modal     string
	ready     bool
}

// New creates the root application model with the given store.
func New(s store.Store, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()
	player := sound.NewCommandPlayer()
	notifier := notify.NewDesktopNotifier()

	return Model{
		currentView:  ViewSchedule,
		store:        s,
		keys:         k,
		alarm:        schedule.NewAlarmClock(time.Now, player, notifier),
		player:       player,
		assistant:    loadAssistant(cfg),
		scheduleView: scheduleview.New(k, 80, 24),
		statsView:    statsview.New(80, 24),
		vaultView:    vaultview.New(k, 80, 24),
		savingsView:  savingsview.New(k, 80, 24),
		taskForm:     taskform.New(80, 24),
		commandView:  commandview.New(80, 24),
		settings:     s.LoadSettings(),
	}
}

// loadAssistant creates the AI assistant from the environment variable
// or the system keyring. Returns an unavailable assistant when no key
// exists; AI features then surface their sentinel messages.
func loadAssistant(cfg *model.AppConfig) *aiservice.Assistant {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		apiKey, _ = credential.Get("api-key")
	}
	return aiservice.New(apiKey, cfg.AI.Model, cfg.AI.MaxTokens)
}

// tick schedules the next one-second heartbeat.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.scheduleView.SetSize(w, h)
		m.statsView.SetSize(w, h)
		m.vaultView.SetSize(w, h)
		m.savingsView.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.commandView.SetSize(w, h)
		return m.updateActiveView(msg)

	case TickMsg:
		m.handleTick(time.Time(msg))
		return m, tick()

	case scheduleview.ToggleRequestedMsg:
		m.toggleTask(msg.TaskID)
		return m, nil

	case scheduleview.DeleteRequestedMsg:
		m.deleteTask(msg.TaskID)
		return m, nil

	case scheduleview.NewTaskRequestedMsg:
		m.previousView = m.currentView
		m.currentView = ViewTaskForm
		m.taskForm.SetGroups(m.store.LoadGroups())
		return m, m.taskForm.Start()

	case scheduleview.AnalyzeRequestedMsg:
		return m, m.analyzeSchedule()

	case taskform.TaskCreatedMsg:
		tasks := append(m.store.LoadTasks(), msg.Task)
		m.saveTasks(tasks)
		m.currentView = ViewSchedule
		return m, nil

	case taskform.TaskFormCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case vaultview.SummarizeRequestedMsg:
		return m, m.summarizeNote(msg.NoteID)

	case savingsview.LogRequestedMsg:
		m.recordSavings(msg)
		return m, nil

	case commandview.CommandSubmittedMsg:
		m.commandView.SetRunning()
		return m, m.parseCommand(msg.Text)

	case commandview.CommandCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case aiTextMsg:
		m.modal = msg.text
		return m, nil

	case intentsMsg:
		m.commandView.SetResult(m.applyIntents(msg))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleTick runs one scheduling cycle: reload the store, evaluate
// alarm triggers, and recompute the countdown. The full reload means
// edits from anywhere are visible within one tick.
func (m *Model) handleTick(now time.Time) {
	tasks := m.store.LoadTasks()
	m.settings = m.store.LoadSettings()

	m.alarm.Tick(tasks, m.settings)

	if task, secs, ok := schedule.NextDue(tasks, now); ok {
		m.countdown = schedule.FormatCountdown(secs)
		m.nextTitle = task.Title
	} else {
		m.countdown = ""
		m.nextTitle = ""
	}

	m.scheduleView.SetTasks(tasks, now)
	m.statsView.SetTasks(tasks, now)
	m.vaultView.SetNotes(m.store.LoadNotes(), m.store.LoadFolders())
	m.savingsView.SetGoals(m.store.LoadGoals())
}

// handleKey routes key input, giving the firing alarm and modal
// priority over everything else.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A firing alarm swallows all input except dismissal and quit.
	if m.alarm.Firing() != nil {
		switch {
		case key.Matches(msg, m.keys.Dismiss):
			m.alarm.Dismiss()
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.modal != "" {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.modal = ""
		return m, nil
	}

	// Text-entry views get raw keys.
	if m.currentView == ViewTaskForm || m.currentView == ViewCommand {
		return m.updateActiveView(msg)
	}
	if m.currentView == ViewSavings && m.savingsView.Entering() {
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Schedule):
		m.currentView = ViewSchedule
		return m, nil
	case key.Matches(msg, m.keys.Analytics):
		m.currentView = ViewStats
		return m, nil
	case key.Matches(msg, m.keys.Vault):
		m.currentView = ViewVault
		return m, nil
	case key.Matches(msg, m.keys.Savings):
		m.currentView = ViewSavings
		return m, nil
	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Start()
	case key.Matches(msg, m.keys.ToggleSound):
		m.settings.SoundEnabled = !m.settings.SoundEnabled
		m.saveSettings()
		return m, nil
	case key.Matches(msg, m.keys.ToggleAlarms):
		m.settings.AlarmsEnabled = !m.settings.AlarmsEnabled
		m.saveSettings()
		return m, nil
	case key.Matches(msg, m.keys.ToggleNotifications):
		m.settings.NotificationsEnabled = !m.settings.NotificationsEnabled
		m.saveSettings()
		return m, nil
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to the currently visible view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	case ViewVault:
		m.vaultView, cmd = m.vaultView.Update(msg)
	case ViewSavings:
		m.savingsView, cmd = m.savingsView.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}
	return m, cmd
}

// toggleTask flips today's completion for the task and persists the
// collection.
func (m *Model) toggleTask(taskID string) {
	tasks := m.store.LoadTasks()
	now := time.Now()
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		var player sound.Player
		if m.settings.SoundEnabled {
			player = m.player
		}
		tasks[i] = schedule.ToggleCompletion(tasks[i], now, player)
		break
	}
	m.saveTasks(tasks)
	m.scheduleView.SetTasks(tasks, now)
}

// deleteTask removes the task and persists the collection.
func (m *Model) deleteTask(taskID string) {
	tasks := m.store.LoadTasks()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	m.saveTasks(kept)
	m.scheduleView.SetTasks(kept, time.Now())
}

// recordSavings appends a ledger entry and updates the goal balance.
func (m *Model) recordSavings(msg savingsview.LogRequestedMsg) {
	goals := m.store.LoadGoals()
	logs := m.store.LoadLogs()

	entry := model.SavingsLog{
		ID:     uuid.NewString(),
		GoalID: msg.GoalID,
		Amount: msg.Amount,
		Date:   time.Now().Format(model.DateLayout),
		Type:   msg.Type,
	}

	for i := range goals {
		if goals[i].ID == msg.GoalID {
			goals[i].CurrentAmount = entry.Apply(goals[i].CurrentAmount)
			break
		}
	}

	if err := m.store.SaveLogs(append(logs, entry)); err != nil {
		m.modal = fmt.Sprintf("Save failed: %v", err)
		return
	}
	if err := m.store.SaveGoals(goals); err != nil {
		m.modal = fmt.Sprintf("Save failed: %v", err)
		return
	}
	m.savingsView.SetGoals(goals)
}

// saveTasks persists tasks, surfacing failures in the modal.
func (m *Model) saveTasks(tasks []model.Task) {
	if err := m.store.SaveTasks(tasks); err != nil {
		m.modal = fmt.Sprintf("Save failed: %v", err)
	}
}

// saveSettings persists the settings toggles.
func (m *Model) saveSettings() {
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.modal = fmt.Sprintf("Save failed: %v", err)
	}
}

// summarizeNote runs the AI summary off the tick loop.
func (m Model) summarizeNote(noteID string) tea.Cmd {
	notes := m.store.LoadNotes()
	assistant := m.assistant
	return func() tea.Msg {
		for _, n := range notes {
			if n.ID == noteID {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				return aiTextMsg{text: assistant.SummarizeNote(ctx, n.Content)}
			}
		}
		return aiTextMsg{text: "Note not found."}
	}
}

// analyzeSchedule runs the AI schedule analysis off the tick loop.
func (m Model) analyzeSchedule() tea.Cmd {
	tasks := m.store.LoadTasks()
	assistant := m.assistant
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return aiTextMsg{text: assistant.AnalyzeSchedule(ctx, tasks)}
	}
}

// parseCommand runs the AI command parser off the tick loop.
func (m Model) parseCommand(text string) tea.Cmd {
	assistant := m.assistant
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		intents, err := assistant.ParseCommand(ctx, text)
		return intentsMsg{intents: intents, err: err}
	}
}

// applyIntents executes parsed command intents against the task
// collection and reports what happened.
func (m *Model) applyIntents(msg intentsMsg) string {
	if msg.err != nil {
		return fmt.Sprintf("Command failed: %v", msg.err)
	}

	tasks := m.store.LoadTasks()
	now := time.Now()
	applied := 0

	for _, intent := range msg.intents {
		switch intent.Type {
		case model.IntentCreate:
			rec := model.RecurrenceFromIntent(*intent.Data)
			task, err := model.NewTask(intent.Data.Title, intent.Data.Time, "", rec, now)
			if err != nil {
				continue
			}
			if intent.Data.Priority == model.PriorityHigh {
				task.Priority = model.PriorityHigh
			}
			tasks = append(tasks, task)
			applied++

		case model.IntentUpdate:
			for i := range tasks {
				if !titleMatches(tasks[i].Title, intent.Query) {
					continue
				}
				if intent.Updates.Title != "" {
					tasks[i].Title = intent.Updates.Title
				}
				if intent.Updates.Time != "" {
					tasks[i].Time = intent.Updates.Time
				}
				if intent.Updates.Priority != "" {
					tasks[i].Priority = intent.Updates.Priority
				}
				applied++
				break
			}

		case model.IntentDelete:
			kept := tasks[:0]
			for _, t := range tasks {
				if titleMatches(t.Title, intent.Query) {
					applied++
					continue
				}
				kept = append(kept, t)
			}
			tasks = kept
		}
	}

	m.saveTasks(tasks)
	m.scheduleView.SetTasks(tasks, now)
	return fmt.Sprintf("Applied %d action(s).", applied)
}

// titleMatches reports whether a task title matches an intent query,
// case-insensitively and by substring in either direction.
func titleMatches(title, query string) bool {
	if query == "" {
		return false
	}
	t := strings.ToLower(title)
	q := strings.ToLower(query)
	return strings.Contains(t, q) || strings.Contains(q, t)
}

// View renders the active view inside the standard frame, or the alarm
// overlay while an alarm is firing.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if task := m.alarm.Firing(); task != nil {
		overlay := theme.AlarmOverlayStyle.Render(
			"EXECUTE PROTOCOL\n\n" + task.Title + "\n\n[d] dismiss",
		)
		return m.layout.RenderOverlay(overlay)
	}

	if m.modal != "" {
		panel := theme.PanelStyle.Width(min(m.layout.Width-8, 72)).Render(
			m.modal + "\n\n" + theme.HelpStyle.Render("press any key"),
		)
		return m.layout.RenderOverlay(panel)
	}

	now := time.Now()
	clock := now.Format("Mon Jan 2 15:04:05")
	countdown := ""
	if m.countdown != "" {
		countdown = fmt.Sprintf("%s T-%s", m.nextTitle, m.countdown)
	}
	header := m.layout.RenderHeader(clock, countdown)

	var content string
	switch m.currentView {
	case ViewSchedule:
		content = m.scheduleView.View()
	case ViewStats:
		content = m.statsView.View()
	case ViewVault:
		content = m.vaultView.View()
	case ViewSavings:
		content = m.savingsView.View()
	case ViewTaskForm:
		content = m.taskForm.View()
	case ViewCommand:
		content = m.commandView.View()
	}
	content = lipgloss.NewStyle().Height(m.layout.ContentHeight()).Render(content)

	hints := "1 plan · 2 stats · 3 vault · 4 savings · space done · n new · : ai · q quit"
	statusBar := m.layout.RenderStatusBar(hints)

	return m.layout.RenderWithFrame(header, content, statusBar)
}
