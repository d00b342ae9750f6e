package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem represents a selectable entry of the title screen.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Label: "PLAY", Choice: MenuChoicePlay},
	{Label: "SCORES", Choice: MenuChoiceScores},
	{Label: "QUIT", Choice: MenuChoiceQuit},
}

// MenuKeyMap defines the key bindings of the title screen.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap mirrors KeyMapper.MapKeyToMenuAction.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	highScore  int
	scoreTable []invaders.ScoreTableRow
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       MenuKeyMap
	help       help.Model
	choice     MenuChoice
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		scoreTable: invaders.ScoreTable(invaders.DefaultSettings()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	if store != nil {
		if high, err := store.HighScore(invaders.GameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("HI-SCORE "+invaders.FormatScore(m.highScore)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("S P A C E   I N V A D E R S"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(accentStyle.Render("*SCORE ADVANCE TABLE*"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(styleFor(core.ColorBrightRed).Render("<=>")+" =? MYSTERY", m.width))
	b.WriteString("\n")
	for _, row := range m.scoreTable {
		line := styleFor(row.Color).Render(row.Glyph) + fmt.Sprintf(" =%d POINTS", row.Points)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		label := "  " + item.Label + "  "
		if i == m.cursor {
			label = accentStyle.Render("> " + item.Label + " <")
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuChoiceNone while undecided.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring its printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the title screen and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
