package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/habitd/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PrevDay, k.NextDay, k.Toggle, k.Today,
		k.Expand, k.Compact, k.Streak, k.Journal, k.Palette, k.Help, k.Quit,
	}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.Keys.bindings()
	plain := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		plain = append(plain, fmt.Sprintf("- %s: %s", h.Key, h.Desc))
	}
	plain = append(plain, "- commands: toggle <n>, day <n>, today, streak, expand, collapse, name <text>")
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) footer() string {
	return m.helpModel.ShortHelpView([]key.Binding{
		m.Keys.Toggle, m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Streak, m.Keys.Palette, m.Keys.Help, m.Keys.Quit,
	})
}
