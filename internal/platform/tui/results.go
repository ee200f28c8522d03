package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

// ResultsView selects which results the table shows.
type ResultsView int

const (
	ViewRecent ResultsView = iota
	ViewBest
)

func (v ResultsView) String() string {
	if v == ViewBest {
		return "BEST HUNTS"
	}
	return "RECENT HUNTS"
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results history screen.
type ResultsModel struct {
	store    *storage.Store
	limit    int
	view     ResultsView
	results  []storage.Result
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	quitting bool
}

// NewResultsModel creates a new results model.
func NewResultsModel(store *storage.Store, limit, width, height int) ResultsModel {
	m := ResultsModel{
		store:  store,
		limit:  limit,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// ResultColumns are the table columns shared by the TUI and CLI views.
func ResultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Rounds", Width: 7},
		{Title: "Index", Width: 7},
		{Title: "Board", Width: 7},
		{Title: "Layout", Width: 12},
		{Title: "Player", Width: 10},
		{Title: "Ended", Width: 18},
		{Title: "Date", Width: 12},
	}
}

// ResultRows converts results to table rows.
func ResultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		layoutID := r.LayoutID
		if layoutID == "" {
			layoutID = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Rounds),
			r.PerformanceIndex.StringFixed(2),
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			layoutID,
			r.Player,
			r.EndReason,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(ResultColumns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)), // Leave room for header, help, and margins
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

// load fetches results for the current view.
func (m *ResultsModel) load() {
	m.results, m.loadErr = nil, nil
	if m.store != nil {
		if m.view == ViewBest {
			m.results, m.loadErr = m.store.BestResults(m.limit)
		} else {
			m.results, m.loadErr = m.store.RecentResults(m.limit)
		}
	}
	m.table.SetRows(ResultRows(m.results))
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewRecent {
				m.view = ViewBest
			} else {
				m.view = ViewRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(ResultRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return errorStyle.Render(m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No hunts recorded yet.\nRun 'hunt play' to start one!")
	}
	return m.table.View()
}

// centerText pads s to center it within width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunResults runs the interactive results screen.
func RunResults(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
