package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDayNumber = errors.New("model: invalid day number")
	ErrDuplicateTaskID  = errors.New("model: duplicate task id")
	ErrLockInvariant    = errors.New("model: lock invariant violated")
	ErrCompletionOrder  = errors.New("model: task completed after an incomplete task")
)

type Day struct {
	ID         string
	DayNumber  int
	Activities []Task
	FocusText  string
}

// FullyCompleted reports whether every task of the day is completed.
func (d Day) FullyCompleted() bool {
	for _, t := range d.Activities {
		if !t.Completed {
			return false
		}
	}
	return true
}

// CompletedCount returns how many tasks of the day are completed.
func (d Day) CompletedCount() int {
	n := 0
	for _, t := range d.Activities {
		if t.Completed {
			n++
		}
	}
	return n
}

// LastCompletedIndex returns the index of the last completed task, or -1.
func (d Day) LastCompletedIndex() int {
	last := -1
	for i, t := range d.Activities {
		if t.Completed {
			last = i
		}
	}
	return last
}

// TaskIndex returns the position of the task with the given id, or -1.
func (d Day) TaskIndex(taskID string) int {
	for i, t := range d.Activities {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose task slice does not alias the receiver's.
func (d Day) Clone() Day {
	out := d
	out.Activities = make([]Task, len(d.Activities))
	copy(out.Activities, d.Activities)
	return out
}

func (d Day) Validate() error {
	if d.DayNumber < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDayNumber, d.DayNumber)
	}
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("model: day id is required")
	}
	seen := make(map[string]bool, len(d.Activities))
	for i, t := range d.Activities {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("day %d task %d: %w", d.DayNumber, i, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: day %d task %q", ErrDuplicateTaskID, d.DayNumber, t.ID)
		}
		seen[t.ID] = true

		wantLocked := i != 0 && !d.Activities[i-1].Completed
		if t.Locked != wantLocked {
			return fmt.Errorf("%w: day %d task %d locked=%t", ErrLockInvariant, d.DayNumber, i, t.Locked)
		}
		if i > 0 && t.Completed && !d.Activities[i-1].Completed {
			return fmt.Errorf("%w: day %d task %d", ErrCompletionOrder, d.DayNumber, i)
		}
	}
	return nil
}
