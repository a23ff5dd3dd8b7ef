package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/progression"
	"github.com/sandeepkv93/habitd/internal/scheduler"
)

// startUnlockHint replaces any active hint with ev and arms its expiry.
func (m *Model) startUnlockHint(ev progression.UnlockEvent) tea.Cmd {
	hint := &UnlockHint{ID: m.newID(), DayNumber: ev.DayNumber, TaskIndex: ev.TaskIndex}
	if m.Scheduler != nil && m.UnlockHint != nil {
		m.Scheduler.Cancel(m.UnlockHint.ID)
	}
	m.UnlockHint = hint
	if m.Scheduler != nil {
		err := m.Scheduler.After(scheduler.Event{
			ID:        hint.ID,
			Kind:      scheduler.KindClearUnlockHint,
			DayNumber: hint.DayNumber,
			TaskIndex: hint.TaskIndex,
		}, m.hintDuration)
		if err != nil {
			m.logger.Warn("unlock hint not scheduled", "error", err)
			m.Status = StatusBar{Text: fmt.Sprintf("unlock hint: %v", err), IsError: true}
		}
	}
	if m.pulseActive {
		return nil
	}
	m.pulseActive = true
	return m.pulse.Tick
}

func (m *Model) applyHintExpiry(ev scheduler.Event) {
	if ev.Kind != scheduler.KindClearUnlockHint {
		return
	}
	if m.UnlockHint != nil && m.UnlockHint.ID == ev.ID {
		m.UnlockHint = nil
		m.pulseActive = false
	}
}

func (m Model) isJustUnlocked(dayNumber, taskIndex int) bool {
	return m.UnlockHint != nil && m.UnlockHint.DayNumber == dayNumber && m.UnlockHint.TaskIndex == taskIndex
}

func waitForHintCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return HintExpiredMsg{Event: ev}
	}
}
