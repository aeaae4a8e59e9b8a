// Package tui implements the interactive entry prompt.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tlog/internal/complete"
	"tlog/internal/report"
	"tlog/internal/timelog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	slackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	totalsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("70"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Model is the interactive entry prompt: the day's entries, running totals,
// and a completing input line. Enter appends to the log and saves it; Tab
// asks the Completer for candidates and cycles through them.
type Model struct {
	log        *timelog.Timelog
	completer  *complete.Completer
	input      textinput.Model
	candidates []string
	candIdx    int
	message    string
	width      int
}

// New creates the prompt over an open log and a completion snapshot.
func New(log *timelog.Timelog, completer *complete.Completer) *Model {
	ti := textinput.New()
	ti.Placeholder = "task, or project: task -- detail"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return &Model{
		log:       log,
		completer: completer,
		input:     ti,
	}
}

// Run starts the prompt and blocks until the user quits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if len(m.candidates) > 0 {
				m.candIdx = (m.candIdx + 1) % len(m.candidates)
				m.input.SetValue(m.candidates[m.candIdx])
				m.input.CursorEnd()
				return m, nil
			}
			// textinput positions count runes; Complete expects bytes.
			value := m.input.Value()
			cursor := len(string([]rune(value)[:m.input.Position()]))
			_, candidates := m.completer.Complete(value, cursor)
			if len(candidates) == 0 {
				return m, nil
			}
			// Replacement starts at position 0: the candidate replaces the
			// whole line, not just the unmatched remainder.
			m.candidates = candidates
			m.candIdx = 0
			m.input.SetValue(candidates[0])
			m.input.CursorEnd()
			return m, nil

		case "enter":
			task := m.input.Value()
			if strings.TrimSpace(task) == "" {
				return m, nil
			}
			m.log.Add(task)
			if err := m.log.Save(); err != nil {
				m.message = errorStyle.Render(err.Error())
			} else {
				m.completer.Add(task)
				m.message = messageStyle.Render("logged: " + task)
			}
			m.input.SetValue("")
			m.candidates = nil
			return m, nil
		}

		// Any other key restarts the completion cycle.
		m.candidates = nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(time.Now().Format("Monday, 02 Jan 2006")))
	b.WriteString("\n\n")

	count := 0
	for e := range m.log.GetToday() {
		b.WriteString(timeStyle.Render(e.Stop.Format("15:04")))
		b.WriteString("  ")
		if strings.HasPrefix(e.Task, report.SlackMarker) {
			b.WriteString(slackStyle.Render(e.Task))
		} else {
			b.WriteString(e.Task)
		}
		b.WriteString("\n")
		count++
	}
	if count == 0 {
		b.WriteString(helpStyle.Render("no entries yet today"))
		b.WriteString("\n")
	}

	s := report.ForDay(m.log.GetToday())
	b.WriteString("\n")
	b.WriteString(totalsStyle.Render(fmt.Sprintf(
		"work %s · slack %s",
		report.FormatDuration(s.Work), report.FormatDuration(s.Slack),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab complete · enter log · esc quit"))
	b.WriteString("\n")

	return b.String()
}
