// File: shell.go
// Title: Interactive Shell
// Description: bubbletea program wrapping the command engine: a command
//              input line, a feedback pane, and tabbed student/session
//              list views driven by the active model filters.

package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/tutorbase/internal/logic"
	"github.com/msto63/tutorbase/internal/logic/commands"
)

// Model is the bubbletea model of the interactive shell.
type Model struct {
	engine *logic.Logic

	input     textinput.Model
	feedback  string
	isError   bool
	activeTab commands.Tab
	focusedID int
	width     int
}

// New returns a shell over the given engine.
func New(engine *logic.Logic) Model {
	input := textinput.New()
	input.Placeholder = "type a command, e.g. 'help'"
	input.Prompt = "> "
	input.Focus()
	return Model{
		engine:    engine,
		input:     input,
		feedback:  commands.HelpMessage,
		activeTab: commands.TabStudents,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			if m.activeTab == commands.TabStudents {
				m.activeTab = commands.TabSessions
			} else {
				m.activeTab = commands.TabStudents
			}
			m.focusedID = 0
			return m, nil
		case tea.KeyEnter:
			return m.execute(m.input.Value())
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one command line through the engine and folds the result
// into the view state.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.input.Reset()

	result, err := m.engine.Execute(line)
	if err != nil {
		m.feedback = err.Error()
		m.isError = true
		return m, nil
	}
	m.feedback = result.Feedback
	m.isError = false
	if result.Tab != commands.TabNone {
		m.activeTab = result.Tab
		m.focusedID = result.EntityID
	}
	if result.Exit {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tutorbase"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(listStyle.Render(m.renderList()))
	b.WriteString("\n")
	if m.isError {
		b.WriteString(errorStyle.Render(m.feedback))
	} else {
		b.WriteString(feedbackStyle.Render(m.feedback))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch view · ctrl+c or 'exit': quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	students := tabStyle
	sessions := tabStyle
	if m.activeTab == commands.TabSessions {
		sessions = activeTabStyle
	} else {
		students = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		students.Render("Students"),
		sessions.Render("Sessions"),
	)
}

// renderList renders the active tab's filtered entries, highlighting the
// entity focused by the last command.
func (m Model) renderList() string {
	var lines []string
	switch m.activeTab {
	case commands.TabSessions:
		for _, session := range m.engine.Model().FilteredSessions() {
			line := session.String()
			if session.ID == m.focusedID && m.focusedID != 0 {
				lines = append(lines, focusedEntryStyle.Render("* "+line))
			} else {
				lines = append(lines, entryStyle.Render("  "+line))
			}
		}
		if len(lines) == 0 {
			lines = append(lines, helpStyle.Render("no sessions to show"))
		}
	default:
		for i, person := range m.engine.Model().FilteredPersons() {
			line := fmt.Sprintf("%d. %s", i+1, person)
			if person.ID == m.focusedID && m.focusedID != 0 {
				lines = append(lines, focusedEntryStyle.Render("* "+line))
			} else {
				lines = append(lines, entryStyle.Render("  "+line))
			}
		}
		if len(lines) == 0 {
			lines = append(lines, helpStyle.Render("no students to show"))
		}
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive shell and blocks until exit.
func Run(engine *logic.Logic) error {
	_, err := tea.NewProgram(New(engine), tea.WithAltScreen()).Run()
	return err
}
