package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			day, ok := m.selectedDay()
			if !ok {
				return commands.Result{}, commands.Rejected("no day selected")
			}
			if a.Position > len(day.Activities) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("day %d has %d tasks", day.DayNumber, len(day.Activities)),
				}
			}
			m.Cursor = a.Position - 1
			m, teaCmd = m.toggle(day.DayNumber, day.Activities[a.Position-1].ID)
			if m.Status.IsError {
				return commands.Result{}, commands.Rejected("%s", m.Status.Text)
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Day: func(a commands.DayArgs) (commands.Result, error) {
			if !m.selectDay(a.Number) {
				return commands.Result{}, commands.Rejected("%s", m.Status.Text)
			}
			return commands.Result{Message: fmt.Sprintf("day %d selected", a.Number)}, nil
		},
		Today: func() (commands.Result, error) {
			m.selectDay(m.Session.Boundary())
			return commands.Result{Message: fmt.Sprintf("today is day %d", m.Session.Boundary())}, nil
		},
		Streak: func() (commands.Result, error) {
			m.StreakVisible = true
			return commands.Result{Message: fmt.Sprintf("Current: %d | Longest: %d", m.Session.CurrentStreak(), m.Session.LongestStreak())}, nil
		},
		Expand: func() (commands.Result, error) {
			m.Expanded = true
			return commands.Result{Message: "tasks expanded"}, nil
		},
		Collapse: func() (commands.Result, error) {
			m.Expanded = false
			return commands.Result{Message: "tasks collapsed"}, nil
		},
		Name: func(a commands.NameArgs) (commands.Result, error) {
			m.Username = a.Name
			return commands.Result{Message: fmt.Sprintf("username set to %s", a.Name)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Debug("palette command failed", "input", raw, "error", err)
		return m, teaCmd
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, teaCmd
}
