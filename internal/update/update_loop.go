package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/views"
)

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ToggleTaskMsg toggles a task without going through the keyboard.
type ToggleTaskMsg struct {
	DayNumber int
	TaskID    string
}

type SelectDayMsg struct {
	DayNumber int
}

type HintExpiredMsg struct {
	Event scheduler.Event
}

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForHintCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.StreakVisible {
			if key.Matches(typed, m.Keys.Streak, m.Keys.Close) {
				m.StreakVisible = false
				return m, nil
			}
			if key.Matches(typed, m.Keys.Quit) {
				m.Quitting = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.streakViewport, cmd = m.streakViewport.Update(typed)
			return m, cmd
		}

		switch {
		case key.Matches(typed, m.Keys.Palette):
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case key.Matches(typed, m.Keys.PrevDay):
			m.shiftSelectedDay(-1)
			return m, nil
		case key.Matches(typed, m.Keys.NextDay):
			m.shiftSelectedDay(1)
			return m, nil
		case key.Matches(typed, m.Keys.Today):
			m.selectDay(m.Session.Boundary())
			return m, nil
		case key.Matches(typed, m.Keys.Expand):
			m.Expanded = !m.Expanded
			return m, nil
		case key.Matches(typed, m.Keys.Compact):
			m.CompactList = !m.CompactList
			return m, nil
		case key.Matches(typed, m.Keys.Streak):
			m.StreakVisible = true
			return m, nil
		case key.Matches(typed, m.Keys.Journal):
			m.JournalVisible = !m.JournalVisible
			return m, nil
		case key.Matches(typed, m.Keys.Help):
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case key.Matches(typed, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleTaskKey(typed)
	case spinner.TickMsg:
		if m.pulseActive {
			var cmd tea.Cmd
			m.pulse, cmd = m.pulse.Update(typed)
			return m, cmd
		}
	case ToggleTaskMsg:
		return m.toggle(typed.DayNumber, typed.TaskID)
	case SelectDayMsg:
		m.selectDay(typed.DayNumber)
		return m, nil
	case HintExpiredMsg:
		m.applyHintExpiry(typed.Event)
		if m.Scheduler != nil {
			return m, waitForHintCmd(m.Scheduler.C())
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	side := strings.TrimSpace(strings.Join([]string{
		m.renderCommandPalette(),
		m.renderHelpIfVisible(),
		m.journalIfVisible(),
	}, "\n\n"))

	modal := ""
	if m.StreakVisible {
		modal = m.renderStreakModal()
	}

	return views.RenderApp(views.AppData{
		Header: views.RenderHeader(views.HeaderData{
			Username:      m.Username,
			Now:           m.now(),
			CurrentStreak: m.Session.CurrentStreak(),
		}),
		DayStrip:     m.renderDayStrip(),
		MainPane:     m.renderTaskPanel(),
		SidePane:     side,
		Modal:        modal,
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer:       m.footer(),
	})
}

func (m Model) journalIfVisible() string {
	if !m.JournalVisible {
		return ""
	}
	return m.renderJournalPanel()
}
