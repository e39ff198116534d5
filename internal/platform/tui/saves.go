package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

// SavesKeyMap defines the key bindings for the saved puzzles screen.
type SavesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Resume key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SavesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Resume, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SavesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Resume, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultSavesKeyMap returns default key bindings.
func DefaultSavesKeyMap() SavesKeyMap {
	return SavesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Resume: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SavesModel lists saved puzzles and lets the player resume or delete them.
type SavesModel struct {
	store     *storage.Store
	prefix    string // Only slots with this prefix are listed
	saves     []storage.SaveEntry
	table     table.Model
	help      help.Model
	keys      SavesKeyMap
	width     int
	height    int
	err       error
	resume    string // Slot chosen for resuming
	quitting  bool
	goingBack bool
}

// NewSavesModel creates the saved puzzles screen listing the slots that
// start with prefix.
func NewSavesModel(store *storage.Store, prefix string, width, height int) SavesModel {
	m := SavesModel{
		store:  store,
		prefix: prefix,
		keys:   DefaultSavesKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *SavesModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Slot", Width: 24},
			{Title: "Grid", Width: 8},
			{Title: "Saved", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the save list from the store.
func (m *SavesModel) load() {
	m.saves = nil
	if m.store != nil {
		var all []storage.SaveEntry
		all, m.err = m.store.ListStates()
		for _, e := range all {
			if strings.HasPrefix(e.Slot, m.prefix) {
				m.saves = append(m.saves, e)
			}
		}
	}

	rows := make([]table.Row, len(m.saves))
	for i, e := range m.saves {
		rows[i] = table.Row{
			e.Slot,
			fmt.Sprintf("%dx%d", e.Rows, e.Cols),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the saves model.
func (m SavesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the saves screen.
func (m SavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Resume):
			if e, ok := m.current(); ok {
				m.resume = e.Slot
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.current(); ok && m.store != nil {
				m.err = m.store.DeleteState(e.Slot)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SavesModel) current() (storage.SaveEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.saves) {
		return storage.SaveEntry{}, false
	}
	return m.saves[i], true
}

// View renders the saves screen.
func (m SavesModel) View() string {
	if m.quitting || m.goingBack || m.resume != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.MarginBottom(1).Render(centerText("SAVED PUZZLES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.store == nil:
		content = "No database available."
	case len(m.saves) == 0:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4).
			Render("Nothing saved yet.\nPress w while playing to save.")
	default:
		content = m.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Resume returns the slot chosen for resuming, or "".
func (m SavesModel) Resume() string {
	return m.resume
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SavesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SavesModel) IsQuitting() bool {
	return m.quitting
}

// RunSaves runs the saved puzzles screen and returns the slot to resume, if
// any, and whether the user wants to go back to the menu.
func RunSaves(store *storage.Store, width, height int) (slot string, goBack bool, err error) {
	p := tea.NewProgram(NewSavesModel(store, "", width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(SavesModel)
	if !ok {
		return "", false, nil
	}
	return m.Resume(), m.IsGoingBack(), nil
}
