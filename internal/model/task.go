package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrEmptyTaskPool   = errors.New("model: task pool is empty")
)

// Category selects the icon a task is drawn with. Nothing else depends on it.
type Category string

const (
	CategoryLeaf      Category = "leaf"
	CategoryBook      Category = "book"
	CategoryWalk      Category = "figure.walk"
	CategoryBookFill  Category = "book.fill"
	CategoryCalendar  Category = "calendar"
	CategoryTree      Category = "tree"
	CategoryLightbulb Category = "lightbulb"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryLeaf, CategoryBook, CategoryWalk, CategoryBookFill, CategoryCalendar, CategoryTree, CategoryLightbulb:
		return true
	default:
		return false
	}
}

type Task struct {
	ID            string
	Title         string
	DurationLabel string
	Category      Category
	Completed     bool
	// Locked is derived from the previous task's completion. Only the lock
	// propagation pass writes it.
	Locked bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	return nil
}

// TaskTemplate is a catalog entry that tasks are instantiated from.
type TaskTemplate struct {
	Title         string   `yaml:"title"`
	DurationLabel string   `yaml:"duration"`
	Category      Category `yaml:"category"`
}

type TaskPool []TaskTemplate

// DefaultTaskPool returns a fresh copy of the built-in catalog.
func DefaultTaskPool() TaskPool {
	return TaskPool{
		{Title: "Morning Meditation", DurationLabel: "5 min", Category: CategoryLeaf},
		{Title: "Journal Reflection", DurationLabel: "10 min", Category: CategoryBook},
		{Title: "Quick Workout", DurationLabel: "15 min", Category: CategoryWalk},
		{Title: "Read a Chapter", DurationLabel: "20 min", Category: CategoryBookFill},
		{Title: "Plan Tomorrow", DurationLabel: "10 min", Category: CategoryCalendar},
		{Title: "Mindful Walk", DurationLabel: "15 min", Category: CategoryTree},
		{Title: "Learn Something New", DurationLabel: "20 min", Category: CategoryLightbulb},
	}
}

func (p TaskPool) Validate() error {
	if len(p) == 0 {
		return ErrEmptyTaskPool
	}
	for i, tpl := range p {
		if strings.TrimSpace(tpl.Title) == "" {
			return fmt.Errorf("model: task pool entry %d has no title", i)
		}
		if !tpl.Category.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidCategory, tpl.Category)
		}
	}
	return nil
}

// Instantiate builds an incomplete, unlocked task from the template.
func (tpl TaskTemplate) Instantiate(id string) Task {
	return Task{
		ID:            id,
		Title:         tpl.Title,
		DurationLabel: tpl.DurationLabel,
		Category:      tpl.Category,
	}
}
