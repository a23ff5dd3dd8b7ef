package progression

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/habitd/internal/model"
)

var ErrInvalidConfig = errors.New("progression: invalid config")

// Config fixes the shape of a session: how many days exist, how many of them
// start out completed, where the interactive boundary sits and how many
// tasks each day samples from the pool.
type Config struct {
	TotalDays        int
	PreCompletedDays int
	CurrentDay       int
	MinTasks         int
	MaxTasks         int
	Pool             model.TaskPool
}

func DefaultConfig() Config {
	return Config{
		TotalDays:        25,
		PreCompletedDays: 3,
		CurrentDay:       15,
		MinTasks:         3,
		MaxTasks:         5,
		Pool:             model.DefaultTaskPool(),
	}
}

func (c Config) Validate() error {
	if c.TotalDays < 1 {
		return fmt.Errorf("%w: total days must be >= 1, got %d", ErrInvalidConfig, c.TotalDays)
	}
	if c.PreCompletedDays < 0 || c.PreCompletedDays > c.TotalDays {
		return fmt.Errorf("%w: pre-completed days must be within [0, %d], got %d", ErrInvalidConfig, c.TotalDays, c.PreCompletedDays)
	}
	if c.CurrentDay < 1 {
		return fmt.Errorf("%w: current day must be >= 1, got %d", ErrInvalidConfig, c.CurrentDay)
	}
	if c.MinTasks < 1 || c.MinTasks > c.MaxTasks {
		return fmt.Errorf("%w: task range [%d, %d] is empty", ErrInvalidConfig, c.MinTasks, c.MaxTasks)
	}
	if err := c.Pool.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinTasks > len(c.Pool) {
		return fmt.Errorf("%w: pool has %d templates, need at least %d", ErrInvalidConfig, len(c.Pool), c.MinTasks)
	}
	return nil
}

// Boundary is the last day that accepts interaction.
func (c Config) Boundary() int {
	return min(c.CurrentDay, c.TotalDays)
}

// taskRange returns the inclusive per-day task count range, capped by the
// pool size since templates are sampled without replacement.
func (c Config) taskRange() (int, int) {
	return c.MinTasks, min(c.MaxTasks, len(c.Pool))
}
