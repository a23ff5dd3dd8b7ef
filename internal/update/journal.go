package update

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/views"
)

const journalPanelSize = 8

func (m *Model) recordToggle(ctx context.Context, day model.Day, task model.Task) {
	if m.Journal == nil {
		return
	}
	action := storage.ActionCompleted
	if !task.Completed {
		action = storage.ActionReopened
	}
	err := m.Journal.Record(ctx, storage.Entry{
		ID:           m.newID(),
		DayNumber:    day.DayNumber,
		TaskID:       task.ID,
		TaskTitle:    task.Title,
		Action:       action,
		DayCompleted: day.FullyCompleted(),
		CreatedAt:    m.now(),
	})
	if err != nil {
		m.logger.Error("journal record failed", "day", day.DayNumber, "task_id", task.ID, "error", err)
		m.Status = StatusBar{Text: fmt.Sprintf("journal: %v", err), IsError: true}
		return
	}
	m.refreshJournal(ctx)
}

func (m *Model) refreshJournal(ctx context.Context) {
	if m.Journal == nil {
		return
	}
	entries, err := m.Journal.List(ctx, storage.ListFilter{Limit: journalPanelSize})
	if err != nil {
		m.logger.Error("journal list failed", "error", err)
		return
	}
	m.JournalLog = entries
}

func (m Model) renderJournalPanel() string {
	entries := make([]views.JournalEntryData, 0, len(m.JournalLog))
	for _, e := range m.JournalLog {
		entries = append(entries, views.JournalEntryData{
			At:           e.CreatedAt,
			DayNumber:    e.DayNumber,
			Title:        e.TaskTitle,
			Action:       string(e.Action),
			DayCompleted: e.DayCompleted,
		})
	}
	return views.RenderJournalPanel(entries)
}
