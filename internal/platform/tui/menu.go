package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	games    []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	selected string // Set when user selects a game
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the game table with one row per registered game.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 22},
		{Title: "ID", Width: 10},
		{Title: "Tick", Width: 6},
		{Title: "Canvas", Width: 10},
	}

	rows := make([]table.Row, 0, len(m.games))
	for _, info := range m.games {
		row := table.Row{info.Title, info.ID, "-", "-"}
		if g, err := registry.Create(info.ID); err == nil {
			w, h := g.CanvasSize()
			row[2] = fmt.Sprintf("%d", g.TickRate())
			row[3] = fmt.Sprintf("%.0fx%.0f", w, h)
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-8, 3))),
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

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[1]
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("A R C A D E", m.width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the menu and returns the selected game ID.
// An empty ID means the user quit.
func RunMenu(width, height int) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
