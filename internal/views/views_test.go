package views

import (
	"strings"
	"testing"
	"time"
)

func TestGreetingByHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{17, "Good Afternoon"},
		{18, "Good Evening"},
		{23, "Good Evening"},
	}
	for _, tc := range cases {
		at := time.Date(2026, 2, 9, tc.hour, 30, 0, 0, time.UTC)
		if got := Greeting(at); got != tc.want {
			t.Fatalf("Greeting(%02d:30) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	if got := FormatDate(at); got != "February 9, 2026" {
		t.Fatalf("unexpected date: %q", got)
	}
}

func TestRenderHeaderDefaultsUsername(t *testing.T) {
	out := RenderHeader(HeaderData{Now: time.Date(2026, 2, 9, 19, 0, 0, 0, time.UTC), CurrentStreak: 4})
	for _, want := range []string{"Good Evening, User", "February 9, 2026", "4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in header: %q", want, out)
		}
	}
}

func TestVisibleWindowKeepsSelectionInView(t *testing.T) {
	cases := []struct {
		total, selected, max int
		start, end           int
	}{
		{5, 2, 9, 0, 5},
		{25, 0, 9, 0, 9},
		{25, 14, 9, 10, 19},
		{25, 24, 9, 16, 25},
		{25, 3, 0, 0, 25},
	}
	for _, tc := range cases {
		start, end := visibleWindow(tc.total, tc.selected, tc.max)
		if start != tc.start || end != tc.end {
			t.Fatalf("visibleWindow(%d,%d,%d) = %d,%d want %d,%d", tc.total, tc.selected, tc.max, start, end, tc.start, tc.end)
		}
		if tc.selected < start || tc.selected >= end {
			t.Fatalf("selection %d outside window %d..%d", tc.selected, start, end)
		}
	}
}

func TestRenderDayStripLabelsTodayAndCompletion(t *testing.T) {
	chips := []DayChipData{
		{Number: 1, Completed: true},
		{Number: 2, IsToday: true, Selected: true},
		{Number: 3, Disabled: true},
	}
	out := RenderDayStrip(chips, 0)
	if !strings.Contains(out, "Day 1 🔥") {
		t.Fatalf("expected flame on completed day: %q", out)
	}
	if !strings.Contains(out, "[Today 2]") {
		t.Fatalf("expected selected today chip: %q", out)
	}
	if !strings.Contains(out, "Day 3") {
		t.Fatalf("expected disabled day to render: %q", out)
	}
	if strings.Contains(out, "‹") || strings.Contains(out, "›") {
		t.Fatalf("did not expect scroll markers: %q", out)
	}

	many := make([]DayChipData, 20)
	for i := range many {
		many[i] = DayChipData{Number: i + 1, Selected: i == 10}
	}
	out = RenderDayStrip(many, 5)
	if !strings.Contains(out, "‹") || !strings.Contains(out, "›") || !strings.Contains(out, "[Day 11]") {
		t.Fatalf("expected windowed strip around day 11: %q", out)
	}
}

func TestRenderTaskPanelConnectorsAndIcons(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{
		DayNumber: 4,
		Expanded:  true,
		Rows: []TaskRowData{
			{Position: 1, Title: "Morning Meditation", Duration: "5 min", Category: "leaf", Completed: true},
			{Position: 2, Title: "Journal Reflection", Duration: "10 min", Category: "book", Completed: true},
			{Position: 3, Title: "Quick Workout", Duration: "15 min", Category: "figure.walk", Cursor: true},
			{Position: 4, Title: "Gratitude Practice", Duration: "5 min", Category: "tree", Locked: true},
		},
	})
	if !strings.Contains(out, "day 4, 2/4") {
		t.Fatalf("expected progress counts: %q", out)
	}
	if strings.Count(out, "│") != 1 {
		t.Fatalf("expected exactly one connector between the completed pair: %q", out)
	}
	for _, want := range []string{"✓", "🔒", "🌿", "🚶", "> 3.", "(10 min)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in task panel: %q", want, out)
		}
	}
	if strings.Contains(out, GreatJob) {
		t.Fatalf("did not expect completion banner: %q", out)
	}
}

func TestRenderTaskPanelCollapsedCompletedDay(t *testing.T) {
	rows := []TaskRowData{
		{Position: 1, Title: "Read a Book", Completed: true},
		{Position: 2, Title: "Plan Tomorrow", Completed: true},
	}
	collapsed := RenderTaskPanel(TaskPanelData{DayNumber: 2, Rows: rows, FullyCompleted: true})
	if !strings.Contains(collapsed, "▸") || !strings.Contains(collapsed, GreatJob) {
		t.Fatalf("expected collapsed banner: %q", collapsed)
	}
	if strings.Contains(collapsed, "Read a Book") {
		t.Fatalf("collapsed panel should hide rows: %q", collapsed)
	}

	expanded := RenderTaskPanel(TaskPanelData{DayNumber: 2, Rows: rows, FullyCompleted: true, Expanded: true})
	if !strings.Contains(expanded, GreatJob) || !strings.Contains(expanded, "Plan Tomorrow") {
		t.Fatalf("expected expanded completed panel: %q", expanded)
	}
}

func TestRenderTaskRowPulse(t *testing.T) {
	row := TaskRowData{Position: 2, Title: "Walk", JustUnlocked: true}
	if out := renderTaskRow(row, "◐"); !strings.Contains(out, "◐") {
		t.Fatalf("expected pulse frame: %q", out)
	}
	if out := renderTaskRow(row, ""); !strings.Contains(out, "●") {
		t.Fatalf("expected plain dot without pulse: %q", out)
	}
}

func TestCategoryIconFallback(t *testing.T) {
	if CategoryIcon("lightbulb") != "💡" {
		t.Fatal("unexpected lightbulb icon")
	}
	if CategoryIcon("unknown") != "•" {
		t.Fatal("expected fallback icon")
	}
}

func TestStreakMarkdownAndPanel(t *testing.T) {
	md := StreakMarkdown(2, 5, []int{1, 2, 3, 4, 5, 9, 10})
	if !strings.Contains(md, "**Current:** 2") || !strings.Contains(md, "1, 2, 3, 4, 5, 9, 10") {
		t.Fatalf("unexpected markdown: %q", md)
	}
	if !strings.Contains(StreakMarkdown(0, 0, nil), "No completed days") {
		t.Fatal("expected empty streak note")
	}

	panel := RenderStreakPanel(StreakPanelData{Current: 2, Longest: 5, TableView: "table"})
	if !strings.Contains(panel, "Current: 2 | Longest: 5") || !strings.Contains(panel, "table") {
		t.Fatalf("unexpected panel: %q", panel)
	}
}

func TestRenderJournalPanel(t *testing.T) {
	if out := RenderJournalPanel(nil); !strings.Contains(out, "nothing yet") {
		t.Fatalf("unexpected empty journal: %q", out)
	}
	out := RenderJournalPanel([]JournalEntryData{
		{At: time.Now(), DayNumber: 3, Title: "Quick Workout", Action: "completed", DayCompleted: true},
	})
	if !strings.Contains(out, "day 3 completed Quick Workout 🔥") {
		t.Fatalf("unexpected journal line: %q", out)
	}
}

func TestRenderAppWithModalHidesPanes(t *testing.T) {
	out := RenderApp(AppData{Header: "hdr", MainPane: "main-pane", Modal: "streak-modal", StatusLine: "error: nope", Footer: "keys"})
	if strings.Contains(out, "main-pane") || !strings.Contains(out, "streak-modal") {
		t.Fatalf("modal should replace panes: %q", out)
	}
	if !strings.Contains(out, "error: nope") || !strings.Contains(out, "keys") {
		t.Fatalf("expected status and footer: %q", out)
	}
}
