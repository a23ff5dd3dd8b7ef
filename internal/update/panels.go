package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/habitd/internal/views"
)

type taskItem struct {
	title       string
	description string
}

func (i taskItem) FilterValue() string { return i.title + " " + i.description }
func (i taskItem) Title() string       { return i.title }
func (i taskItem) Description() string { return i.description }

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Daily Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Day", Width: 5},
		{Title: "Tasks", Width: 7},
		{Title: "Done", Width: 6},
		{Title: "Streak", Width: 8},
	}
	m.streakTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 128
	m.commandInput.Width = 48

	m.dayProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.pulse = spinner.New()
	m.pulse.Spinner = spinner.Pulse

	m.helpModel = help.New()
	m.streakViewport = viewport.New(60, 10)
	m.focusViewport = viewport.New(56, 5)
}

func (m *Model) syncBubbleData() {
	day, ok := m.selectedDay()
	if ok {
		items := make([]list.Item, 0, len(day.Activities))
		for _, task := range day.Activities {
			items = append(items, taskItem{title: task.Title, description: task.DurationLabel})
		}
		m.taskList.SetItems(items)
		if len(items) > 0 && m.Cursor < len(items) {
			m.taskList.Select(m.Cursor)
		}
		_ = m.dayProgress.SetPercent(dayPercent(day.CompletedCount(), len(day.Activities)))
	}

	m.syncFocusCard()

	if m.StreakVisible {
		m.streakTable.SetRows(m.streakRows())
		m.streakViewport.SetContent(views.RenderMarkdown(views.StreakMarkdown(
			m.Session.CurrentStreak(),
			m.Session.LongestStreak(),
			m.Session.CompletedDays(),
		)))
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}

// streakRows lists every interactive day with the run length ending on it.
func (m Model) streakRows() []table.Row {
	days := m.Session.Days()
	boundary := m.Session.Boundary()
	rows := make([]table.Row, 0, boundary)
	run := 0
	for _, d := range days {
		if d.DayNumber > boundary {
			break
		}
		done := "no"
		if d.FullyCompleted() {
			done = "yes"
			run++
		} else {
			run = 0
		}
		rows = append(rows, table.Row{
			strconv.Itoa(d.DayNumber),
			fmt.Sprintf("%d/%d", d.CompletedCount(), len(d.Activities)),
			done,
			strconv.Itoa(run),
		})
	}
	return rows
}

func dayPercent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

func (m Model) renderTaskPanel() string {
	day, ok := m.selectedDay()
	if !ok {
		return "tasks:\n(no day selected)"
	}
	if m.CompactList && m.Expanded {
		return m.renderFocusCard() + "\n\n" + m.taskList.View()
	}
	rows := make([]views.TaskRowData, 0, len(day.Activities))
	for i, task := range day.Activities {
		rows = append(rows, views.TaskRowData{
			Position:     i + 1,
			Title:        task.Title,
			Duration:     task.DurationLabel,
			Category:     string(task.Category),
			Completed:    task.Completed,
			Locked:       task.Locked,
			JustUnlocked: m.isJustUnlocked(day.DayNumber, i),
			Cursor:       i == m.Cursor,
		})
	}
	pulse := ""
	if m.pulseActive {
		pulse = m.pulse.View()
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		DayNumber:      day.DayNumber,
		Rows:           rows,
		Expanded:       m.Expanded,
		FullyCompleted: day.FullyCompleted(),
		ProgressView:   m.dayProgress.ViewAs(dayPercent(day.CompletedCount(), len(day.Activities))),
		PulseFrame:     pulse,
		FocusView:      m.renderFocusCard(),
	})
}

func (m Model) renderStreakModal() string {
	return views.RenderStreakPanel(views.StreakPanelData{
		Current:       m.Session.CurrentStreak(),
		Longest:       m.Session.LongestStreak(),
		CompletedDays: m.Session.CompletedDays(),
		TableView:     m.streakTable.View(),
		DetailView:    m.streakViewport.View(),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.logger.Warn("desktop notification failed", "error", err)
		}
	}
}
