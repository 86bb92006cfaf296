package vaultview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/keys"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

// SummarizeRequestedMsg asks the app to run the AI note summary.
type SummarizeRequestedMsg struct {
	NoteID string
}

// noteItem wraps a model.Note for the bubbles list.
type noteItem struct {
	note    model.Note
	folders map[string]string
}

// FilterValue returns the string used for fuzzy filtering.
func (i noteItem) FilterValue() string { return i.note.Title }

// noteDelegate renders note rows.
type noteDelegate struct{}

func (d noteDelegate) Height() int  { return 1 }
func (d noteDelegate) Spacing() int { return 0 }

func (d noteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ni, ok := item.(noteItem)
	if !ok {
		return
	}

	folder := ni.folders[ni.note.FolderID]
	if folder == "" {
		folder = "General"
	}

	line := fmt.Sprintf("%s  [%s]", ni.note.Title, folder)
	if len(ni.note.Tags) > 0 {
		line += "  #" + strings.Join(ni.note.Tags, " #")
	}

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the notes vault view.
type Model struct {
	list    list.Model
	keys    *keys.KeyMap
	folders map[string]string
	width   int
	height  int
}

// New creates the vault view.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, noteDelegate{}, width, height-2)
	l.Title = "Vault"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{
		list:    l,
		keys:    k,
		folders: map[string]string{},
		width:   width,
		height:  height,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// SetNotes replaces the displayed notes and folder names.
func (m *Model) SetNotes(notes []model.Note, folders []model.Folder) {
	m.folders = make(map[string]string, len(folders))
	for _, f := range folders {
		m.folders[f.ID] = f.Name
	}

	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n, folders: m.folders}
	}
	m.list.SetItems(items)
}

// Selected returns the note under the cursor, if any.
func (m Model) Selected() (model.Note, bool) {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return model.Note{}, false
	}
	return item.note, true
}

// Update handles messages for the vault view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Summarize) {
			if note, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SummarizeRequestedMsg{NoteID: note.ID} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the vault list.
func (m Model) View() string {
	return m.list.View()
}
