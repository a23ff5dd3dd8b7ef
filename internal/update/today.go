package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/progression"
)

func (m Model) handleTaskKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if day, ok := m.selectedDay(); ok && m.Cursor < len(day.Activities)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		day, ok := m.selectedDay()
		if !ok || !m.Expanded || m.Cursor >= len(day.Activities) {
			return m, nil
		}
		return m.toggle(day.DayNumber, day.Activities[m.Cursor].ID)
	}
	return m, nil
}

func (m Model) selectedDay() (model.Day, bool) {
	return m.Session.Day(m.Session.Selected())
}

// resetCursor puts the cursor on the first actionable task of the selected
// day, or on its last task when everything is done.
func (m *Model) resetCursor() {
	day, ok := m.selectedDay()
	if !ok || len(day.Activities) == 0 {
		m.Cursor = 0
		return
	}
	for i, task := range day.Activities {
		if !task.Completed && !task.Locked {
			m.Cursor = i
			return
		}
	}
	m.Cursor = len(day.Activities) - 1
}

func (m Model) toggle(dayNumber int, taskID string) (Model, tea.Cmd) {
	if dayNumber > m.Session.Boundary() {
		m.Status = StatusBar{Text: fmt.Sprintf("day %d is not available yet", dayNumber), IsError: true}
		return m, nil
	}
	wasComplete := false
	if before, ok := m.Session.Day(dayNumber); ok {
		wasComplete = before.FullyCompleted()
	}

	outcome := m.Session.ToggleTask(dayNumber, taskID)
	unlocks, expand := m.hints.drain()
	if outcome != progression.ToggleApplied {
		m.Status = StatusBar{Text: fmt.Sprintf("cannot toggle: %s", outcome), IsError: true}
		return m, nil
	}

	day, _ := m.Session.Day(dayNumber)
	idx := day.TaskIndex(taskID)
	task := day.Activities[idx]
	if expand != nil && expand.DayNumber == m.Session.Selected() {
		m.Expanded = expand.Expand
	}

	verb := "completed"
	if !task.Completed {
		verb = "reopened"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s %q", verb, task.Title)}
	m.recordToggle(context.Background(), day, task)

	var cmds []tea.Cmd
	if len(unlocks) > 0 {
		cmds = append(cmds, m.startUnlockHint(unlocks[len(unlocks)-1]))
		m.Cursor = unlocks[len(unlocks)-1].TaskIndex
	}
	if day.FullyCompleted() && !wasComplete {
		m.notify("Day complete", fmt.Sprintf("Day %d complete! Current streak: %d", dayNumber, m.Session.CurrentStreak()), "info")
	}
	return m, tea.Batch(cmds...)
}
