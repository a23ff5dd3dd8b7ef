package update

import (
	"fmt"

	"github.com/sandeepkv93/habitd/internal/views"
)

const dayStripWindow = 9

func (m *Model) shiftSelectedDay(delta int) {
	m.selectDay(m.Session.Selected() + delta)
}

func (m *Model) selectDay(n int) bool {
	if n == m.Session.Selected() {
		return true
	}
	if !m.Session.SelectDay(n) {
		switch {
		case n < 1 || n > m.Session.TotalDays():
			m.Status = StatusBar{Text: fmt.Sprintf("day %d does not exist", n), IsError: true}
		default:
			m.Status = StatusBar{Text: fmt.Sprintf("day %d is not available yet", n), IsError: true}
		}
		return false
	}
	m.resetCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("day %d selected", n)}
	return true
}

func (m Model) renderDayStrip() string {
	days := m.Session.Days()
	boundary := m.Session.Boundary()
	chips := make([]views.DayChipData, 0, len(days))
	for _, d := range days {
		chips = append(chips, views.DayChipData{
			Number:    d.DayNumber,
			IsToday:   d.DayNumber == boundary,
			Completed: d.FullyCompleted(),
			Disabled:  d.DayNumber > boundary,
			Selected:  d.DayNumber == m.Session.Selected(),
		})
	}
	return views.RenderDayStrip(chips, dayStripWindow)
}
