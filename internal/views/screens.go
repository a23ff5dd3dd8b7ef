package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const GreatJob = "Yeah, Great Job!"

type DayChipData struct {
	Number    int
	IsToday   bool
	Completed bool
	Disabled  bool
	Selected  bool
}

// RenderDayStrip renders at most maxVisible chips, keeping the selected
// chip inside the window.
func RenderDayStrip(chips []DayChipData, maxVisible int) string {
	if len(chips) == 0 {
		return ""
	}
	selected := 0
	for i, c := range chips {
		if c.Selected {
			selected = i
			break
		}
	}
	start, end := visibleWindow(len(chips), selected, maxVisible)

	parts := make([]string, 0, end-start+2)
	if start > 0 {
		parts = append(parts, mutedStyle.Render("‹"))
	}
	for _, c := range chips[start:end] {
		parts = append(parts, renderChip(c))
	}
	if end < len(chips) {
		parts = append(parts, mutedStyle.Render("›"))
	}
	return strings.Join(parts, " ")
}

func renderChip(c DayChipData) string {
	label := "Day"
	if c.IsToday {
		label = "Today"
	}
	text := fmt.Sprintf("%s %d", label, c.Number)
	if c.Completed {
		text += " 🔥"
	}
	switch {
	case c.Selected:
		return selectedStyle.Render("[" + text + "]")
	case c.Disabled:
		return mutedStyle.Render(" " + text + " ")
	case c.Completed:
		return accentStyle.Render(" " + text + " ")
	default:
		return " " + text + " "
	}
}

func visibleWindow(total, selected, maxVisible int) (int, int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start := selected - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
	}
	return start, end
}

func FocusMarkdown(focusText string) string {
	return "### Focus of Today\n\n" + focusText
}

type TaskRowData struct {
	Position     int
	Title        string
	Duration     string
	Category     string
	Completed    bool
	Locked       bool
	JustUnlocked bool
	Cursor       bool
}

type TaskPanelData struct {
	DayNumber      int
	Rows           []TaskRowData
	Expanded       bool
	FullyCompleted bool
	ProgressView   string
	PulseFrame     string
	FocusView      string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	if data.FocusView != "" {
		b.WriteString(data.FocusView + "\n\n")
	}

	done := 0
	for _, r := range data.Rows {
		if r.Completed {
			done++
		}
	}
	chevron := "▾"
	if !data.Expanded {
		chevron = "▸"
	}
	b.WriteString(fmt.Sprintf("%s Daily Tasks (day %d, %d/%d)", chevron, data.DayNumber, done, len(data.Rows)))
	if !data.Expanded && data.FullyCompleted {
		b.WriteString("  " + doneStyle.Render(GreatJob))
	}
	b.WriteString("\n")
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	if !data.Expanded {
		return strings.TrimSpace(b.String())
	}

	if data.FullyCompleted {
		b.WriteString(doneStyle.Render(GreatJob) + "\n")
	}
	for i, row := range data.Rows {
		b.WriteString(renderTaskRow(row, data.PulseFrame) + "\n")
		if i < len(data.Rows)-1 && row.Completed && data.Rows[i+1].Completed {
			b.WriteString(accentStyle.Render("     │") + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func renderTaskRow(row TaskRowData, pulse string) string {
	cursor := " "
	if row.Cursor {
		cursor = ">"
	}
	status := accentStyle.Render("●")
	switch {
	case row.Completed:
		status = doneStyle.Render("✓")
	case row.Locked:
		status = "🔒"
	case row.JustUnlocked && pulse != "":
		status = accentStyle.Render(pulse)
	}
	title := row.Title
	if row.Locked {
		title = mutedStyle.Render(title)
	}
	line := fmt.Sprintf("%s %d. %s %s %s", cursor, row.Position, status, CategoryIcon(row.Category), title)
	if row.Duration != "" {
		line += " " + mutedStyle.Render("("+row.Duration+")")
	}
	return line
}

// CategoryIcon maps a task category symbol to a terminal glyph.
func CategoryIcon(category string) string {
	switch category {
	case "leaf":
		return "🌿"
	case "book":
		return "📖"
	case "figure.walk":
		return "🚶"
	case "book.fill":
		return "📚"
	case "calendar":
		return "📅"
	case "tree":
		return "🌳"
	case "lightbulb":
		return "💡"
	default:
		return "•"
	}
}

type StreakPanelData struct {
	Current       int
	Longest       int
	CompletedDays []int
	TableView     string
	DetailView    string
}

func RenderStreakPanel(data StreakPanelData) string {
	var b strings.Builder
	b.WriteString("streak:\n")
	b.WriteString(fmt.Sprintf("Current: %d | Longest: %d\n", data.Current, data.Longest))
	if data.TableView != "" {
		b.WriteString("\n" + data.TableView + "\n")
	}
	if data.DetailView != "" {
		b.WriteString("\n" + data.DetailView + "\n")
	}
	b.WriteString("\n[s/esc] close")
	return strings.TrimSpace(b.String())
}

// StreakMarkdown summarises streaks as a markdown report.
func StreakMarkdown(current, longest int, completedDays []int) string {
	var b strings.Builder
	b.WriteString("## Streak\n\n")
	b.WriteString(fmt.Sprintf("- **Current:** %d\n", current))
	b.WriteString(fmt.Sprintf("- **Longest:** %d\n\n", longest))
	if len(completedDays) == 0 {
		b.WriteString("_No completed days yet._\n")
		return b.String()
	}
	days := make([]string, 0, len(completedDays))
	for _, d := range completedDays {
		days = append(days, strconv.Itoa(d))
	}
	b.WriteString("Completed days: " + strings.Join(days, ", ") + "\n")
	return b.String()
}

type JournalEntryData struct {
	At           time.Time
	DayNumber    int
	Title        string
	Action       string
	DayCompleted bool
}

func RenderJournalPanel(entries []JournalEntryData) string {
	var b strings.Builder
	b.WriteString("activity:\n")
	if len(entries) == 0 {
		b.WriteString("(nothing yet)")
		return b.String()
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s day %d %s %s", e.At.Local().Format("15:04:05"), e.DayNumber, e.Action, e.Title)
		if e.DayCompleted {
			line += " 🔥"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}
