package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	config  *Config
	session *Session

	// UI state
	focus        PanelFocus
	viewMode     ViewMode
	width        int
	height       int
	leftWidth    int // Fixed left panel width
	rightWidth   int // Fixed right panel width
	cursor       int // Visible row under the cursor
	scrollOffset int
	status       string

	// Search input
	searchInput textinput.Model
	searching   bool

	// Styles
	focusedStyle  lipgloss.Style
	blurredStyle  lipgloss.Style
	selectedStyle lipgloss.Style
	cursorStyle   lipgloss.Style
	headerStyle   lipgloss.Style
	severityStyles map[Severity]lipgloss.Style
}

func NewModel(config *Config, session *Session) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search (case-insensitive)"
	searchInput.CharLimit = 128
	if config.Search != "" {
		searchInput.SetValue(config.Search)
	}

	m := &Model{
		config:      config,
		session:     session,
		focus:       RightPanel,
		viewMode:    ListView,
		searchInput: searchInput,

		focusedStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")),
		blurredStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
		selectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("117")),
		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true),
		severityStyles: map[Severity]lipgloss.Style{
			Error:   lipgloss.NewStyle().Foreground(Error.Color()).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(Warning.Color()),
			Info:    lipgloss.NewStyle().Foreground(Info.Color()),
		},
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnterAltScreen,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate fixed panel widths once on resize
		m.leftWidth = m.width * 30 / 100
		if m.leftWidth < 25 {
			m.leftWidth = 25
		}
		if m.leftWidth > 40 {
			m.leftWidth = 40
		}
		m.rightWidth = m.width - m.leftWidth

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input grabs every key except enter/esc
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.session.Filter().Search)
			m.focus = RightPanel
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.focus = RightPanel
			m.session.SetSearch(m.searchInput.Value())
			m.resetCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// Context inspector only reads navigation-out keys
	if m.viewMode == ContextView {
		switch msg.String() {
		case "esc", "q", "enter":
			m.viewMode = ListView
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focus == LeftPanel {
			m.focus = RightPanel
		} else {
			m.focus = LeftPanel
		}
		return m, nil

	case "/":
		m.searching = true
		m.focus = LeftPanel
		m.searchInput.Focus()
		return m, nil

	case "x":
		m.searchInput.SetValue("")
		m.session.SetSearch("")
		m.resetCursor()
		return m, nil

	case "1":
		m.session.ToggleSeverity(Error)
		m.resetCursor()
		return m, nil

	case "2":
		m.session.ToggleSeverity(Warning)
		m.resetCursor()
		return m, nil

	case "3":
		m.session.ToggleSeverity(Info)
		m.resetCursor()
		return m, nil

	case "u":
		m.session.ToggleDuplicates()
		m.resetCursor()
		return m, nil

	case "c":
		m.session.CycleCategory(1)
		m.resetCursor()
		return m, nil

	case "C":
		m.session.CycleCategory(-1)
		m.resetCursor()
		return m, nil

	case "a":
		m.session.SetCategory(CategoryAll)
		m.resetCursor()
		return m, nil

	case "f":
		if record, ok := m.session.RecordAt(m.cursor); ok {
			m.session.SetCategory(record.Category)
			m.resetCursor()
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustScrollOffset()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.session.View())-1 {
			m.cursor++
			m.adjustScrollOffset()
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		m.scrollOffset = 0
		return m, nil

	case "G", "end":
		m.cursor = len(m.session.View()) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.adjustScrollOffset()
		return m, nil

	case " ":
		if _, ok := m.session.RecordAt(m.cursor); ok {
			m.session.Selection().Toggle(m.cursor)
		}
		return m, nil

	case "v":
		if _, ok := m.session.RecordAt(m.cursor); ok {
			if m.session.Selection().Anchor() >= 0 {
				m.session.Selection().SelectRange(m.cursor)
			} else {
				m.selectAtCursor()
			}
		}
		return m, nil

	case "enter":
		if m.focus == RightPanel {
			if m.selectAtCursor() {
				m.viewMode = ContextView
			}
		}
		return m, nil

	case "y":
		m.copySelection()
		return m, nil
	}

	return m, nil
}

// selectAtCursor performs a plain single select: one row, new anchor, and
// the context focus jumps to the record's raw index.
func (m *Model) selectAtCursor() bool {
	record, ok := m.session.RecordAt(m.cursor)
	if !ok {
		return false
	}
	m.session.Selection().Select(m.cursor, record.SequenceIndex)
	return true
}

func (m *Model) copySelection() {
	text := ExportSelection(m.session.Selection(), m.session.View(), m.session.Records())
	count := m.session.Selection().Len()
	if text == "" {
		record, ok := m.session.RecordAt(m.cursor)
		if !ok {
			m.status = "Nothing to copy"
			return
		}
		text = ExportRecord(record)
		count = 1
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Copied %d line(s)", count)
}

// resetCursor pulls the cursor and scroll back into the new view after any
// filter change.
func (m *Model) resetCursor() {
	if m.cursor >= len(m.session.View()) {
		m.cursor = len(m.session.View()) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScrollOffset()
}

func (m *Model) adjustScrollOffset() {
	viewHeight := m.getLogViewHeight()
	if viewHeight < 1 {
		viewHeight = 1
	}

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+viewHeight {
		m.scrollOffset = m.cursor - viewHeight + 1
	}
}

func (m *Model) getLogViewHeight() int {
	return m.height - 8 // Account for borders, titles, footer
}

func (m *Model) View() string {
	// Wait for initial size
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.width < 80 || m.height < 20 {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Padding(2).
			Align(lipgloss.Center)
		return errorStyle.Render(fmt.Sprintf(
			"Terminal too small!\nCurrent: %dx%d\nRequired: 80x20 minimum",
			m.width, m.height))
	}

	if m.leftWidth == 0 || m.rightWidth == 0 {
		m.leftWidth = m.width * 30 / 100
		if m.leftWidth < 25 {
			m.leftWidth = 25
		}
		if m.leftWidth > 40 {
			m.leftWidth = 40
		}
		m.rightWidth = m.width - m.leftWidth
	}

	header := m.renderHeader()
	leftPanel := m.renderFilterPanel(m.leftWidth)

	var rightPanel string
	if m.viewMode == ContextView {
		rightPanel = m.renderContextPanel(m.rightWidth)
	} else {
		rightPanel = m.renderLogPanel(m.rightWidth)
	}

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	return lipgloss.JoinVertical(lipgloss.Left, header, mainContent)
}

func (m *Model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("238")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("117"))
	title := titleStyle.Render("Uelog")

	name := m.config.File
	if name == "" {
		name = "(no file)"
	}

	status := fmt.Sprintf("%s | Lines: %d/%d",
		name, len(m.session.View()), len(m.session.Records()))
	if m.status != "" {
		status = m.status + " | " + status
	}

	padding := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 4
	if padding < 0 {
		padding = 0
	}

	return headerStyle.Width(m.width).Render(
		fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", padding), status))
}

func (m *Model) renderFilterPanel(width int) string {
	panelStyle := m.blurredStyle
	if m.focus == LeftPanel {
		panelStyle = m.focusedStyle
	}
	panelStyle = panelStyle.
		Width(width - 2).
		MaxWidth(width - 2).
		Height(m.height - 3).
		MaxHeight(m.height - 3)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	filter := m.session.Filter()

	checkbox := func(checked bool) string {
		if checked {
			return "[✓]"
		}
		return "[ ]"
	}

	var content strings.Builder
	content.WriteString(m.headerStyle.Render("FILTERS") + "\n\n")

	content.WriteString(labelStyle.Render("Severity:") + "\n")
	content.WriteString(fmt.Sprintf("  1 %s %s (%d)\n",
		checkbox(filter.ShowErrors),
		m.severityStyles[Error].Render("Errors"),
		m.session.SeverityCount(Error)))
	content.WriteString(fmt.Sprintf("  2 %s %s (%d)\n",
		checkbox(filter.ShowWarnings),
		m.severityStyles[Warning].Render("Warnings"),
		m.session.SeverityCount(Warning)))
	content.WriteString(fmt.Sprintf("  3 %s %s (%d)\n",
		checkbox(filter.ShowInfo),
		m.severityStyles[Info].Render("Info"),
		m.session.SeverityCount(Info)))
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("  u %s Hide duplicates\n\n", checkbox(filter.HideDuplicates)))

	content.WriteString(labelStyle.Render("Category (c/C/a):") + "\n")
	content.WriteString("  " + filter.Category + "\n\n")

	content.WriteString(labelStyle.Render("Search (/):") + "\n")
	if m.searching {
		content.WriteString(m.searchInput.View() + "\n")
	} else if filter.Search != "" {
		content.WriteString("  " + filter.Search + "\n")
	} else {
		content.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	content.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	content.WriteString(statsStyle.Render(fmt.Sprintf(
		"Total:    %d\nVisible:  %d\nSelected: %d",
		len(m.session.Records()),
		len(m.session.View()),
		m.session.Selection().Len())))

	return panelStyle.Render(content.String())
}

func (m *Model) renderLogPanel(width int) string {
	panelStyle := m.blurredStyle
	if m.focus == RightPanel {
		panelStyle = m.focusedStyle
	}
	panelStyle = panelStyle.
		Width(width - 2).
		MaxWidth(width - 2).
		Height(m.height - 3).
		MaxHeight(m.height - 3)

	var content strings.Builder
	title := "LOG"
	if len(m.session.View()) > 0 {
		title += fmt.Sprintf(" (%d/%d)", m.cursor+1, len(m.session.View()))
	}
	content.WriteString(m.headerStyle.Render(title) + "\n")

	viewHeight := m.getLogViewHeight()
	view := m.session.View()

	for i := m.scrollOffset; i < m.scrollOffset+viewHeight && i < len(view); i++ {
		if i < 0 {
			continue
		}

		record := m.session.Records()[view[i]]
		line := record.Text
		if maxLen := width - 6; maxLen > 3 && len(line) > maxLen {
			line = line[:maxLen-3] + "..."
		}
		line = m.severityStyles[record.Severity].Render(line)

		switch {
		case i == m.cursor:
			line = m.cursorStyle.Render("▶ ") + line
		case m.session.Selection().Contains(i):
			line = m.selectedStyle.Render("▌ ") + line
		default:
			line = "  " + line
		}

		content.WriteString(line + "\n")
	}

	if len(view) == 0 {
		noDataStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
		content.WriteString("\n" + noDataStyle.Render("No log lines match current filters..."))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		MarginTop(1)
	shortcuts := "j/k=Move | Space=Toggle | v=Range | Enter=Context | y=Copy | /=Search | q=Quit"

	lines := strings.Split(content.String(), "\n")
	for len(lines) < m.height-5 {
		lines = append(lines, "")
	}
	lines = append(lines, footerStyle.Render(shortcuts))

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderContextPanel(width int) string {
	panelStyle := m.focusedStyle.
		Width(width - 2).
		MaxWidth(width - 2).
		Height(m.height - 3).
		MaxHeight(m.height - 3)

	focus := m.session.Selection().Focus()
	start, records := m.session.Context(m.config.ContextRadius)

	var content strings.Builder
	content.WriteString(m.headerStyle.Render(fmt.Sprintf("CONTEXT around line #%d", focus)) + "\n\n")

	if len(records) == 0 {
		noDataStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
		content.WriteString(noDataStyle.Render("Select a log line to view context."))
	}

	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	for i, record := range records {
		rawIndex := start + i
		line := fmt.Sprintf("[%d] %s", rawIndex, record.Text)
		if maxLen := width - 6; maxLen > 3 && len(line) > maxLen {
			line = line[:maxLen-3] + "..."
		}

		if rawIndex == focus {
			content.WriteString(focusStyle.Render(line) + "\n")
		} else {
			content.WriteString(dimStyle.Render(line) + "\n")
		}
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		MarginTop(1)

	lines := strings.Split(content.String(), "\n")
	for len(lines) < m.height-5 {
		lines = append(lines, "")
	}
	lines = append(lines, footerStyle.Render("ESC=Back to log | q=Quit"))

	return panelStyle.Render(strings.Join(lines, "\n"))
}
