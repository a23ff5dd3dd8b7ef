package storage

import "time"

type Action string

const (
	ActionCompleted Action = "completed"
	ActionReopened  Action = "reopened"
)

// Entry is one applied toggle.
type Entry struct {
	ID           string
	DayNumber    int
	TaskID       string
	TaskTitle    string
	Action       Action
	DayCompleted bool
	CreatedAt    time.Time
}

type ListFilter struct {
	DayNumber int
	Limit     int
	Offset    int
}

// DayActivity aggregates the journal for one day.
type DayActivity struct {
	DayNumber   int
	Completions int
	Reopenings  int
	LastAt      time.Time
}
