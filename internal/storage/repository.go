package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("storage: not found")
	ErrInvalidEntry = errors.New("storage: invalid entry")
)

// Journal records applied toggles for the lifetime of a process.
type Journal interface {
	Record(ctx context.Context, in Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	Activity(ctx context.Context) ([]DayActivity, error)
	Close() error
}
