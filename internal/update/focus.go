package update

import (
	"github.com/sandeepkv93/habitd/internal/views"
)

// syncFocusCard renders the selected day's focus text into the focus viewport.
func (m *Model) syncFocusCard() {
	text := m.Session.FocusText(m.Session.Selected())
	m.focusViewport.SetContent(views.RenderMarkdown(views.FocusMarkdown(text)))
}

func (m Model) renderFocusCard() string {
	return m.focusViewport.View()
}
