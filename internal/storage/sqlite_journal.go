package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// MemoryDSN keeps the journal in process memory; nothing survives exit.
const MemoryDSN = ":memory:"

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLiteJournal(db *sql.DB) (*SQLiteJournal, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteJournal{db: db}, nil
}

// OpenMemoryJournal opens a migrated in-memory journal. Every pooled
// connection to :memory: would see its own database, so the pool is pinned
// to one connection.
func OpenMemoryJournal(ctx context.Context) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteJournal(db)
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func (j *SQLiteJournal) Record(ctx context.Context, in Entry) error {
	if in.ID == "" || in.DayNumber < 1 || in.TaskID == "" {
		return fmt.Errorf("%w: id=%q day=%d task=%q", ErrInvalidEntry, in.ID, in.DayNumber, in.TaskID)
	}
	if in.Action != ActionCompleted && in.Action != ActionReopened {
		return fmt.Errorf("%w: action %q", ErrInvalidEntry, in.Action)
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, day_number, task_id, task_title, action, day_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.DayNumber, in.TaskID, in.TaskTitle, string(in.Action), boolInt(in.DayCompleted), mustTime(in.CreatedAt),
	)
	return err
}

func (j *SQLiteJournal) Get(ctx context.Context, id string) (Entry, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, day_number, task_id, task_title, action, day_completed, created_at
		FROM journal_entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

// List returns entries newest first.
func (j *SQLiteJournal) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	query := `SELECT id, day_number, task_id, task_title, action, day_completed, created_at FROM journal_entries`
	args := make([]any, 0, 3)
	if filter.DayNumber > 0 {
		query += ` WHERE day_number = ?`
		args = append(args, filter.DayNumber)
	}
	query += ` ORDER BY seq DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Activity returns per-day toggle counts ordered by day number.
func (j *SQLiteJournal) Activity(ctx context.Context) ([]DayActivity, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT day_number,
			SUM(CASE WHEN action = 'completed' THEN 1 ELSE 0 END),
			SUM(CASE WHEN action = 'reopened' THEN 1 ELSE 0 END),
			MAX(created_at)
		FROM journal_entries
		GROUP BY day_number
		ORDER BY day_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DayActivity, 0)
	for rows.Next() {
		var item DayActivity
		var last string
		if err := rows.Scan(&item.DayNumber, &item.Completions, &item.Reopenings, &last); err != nil {
			return nil, err
		}
		lastAt, err := parseRequiredTime(last)
		if err != nil {
			return nil, err
		}
		item.LastAt = lastAt
		out = append(out, item)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var out Entry
	var action string
	var dayCompleted int
	var created string
	if err := s.Scan(&out.ID, &out.DayNumber, &out.TaskID, &out.TaskTitle, &action, &dayCompleted, &created); err != nil {
		return Entry{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Entry{}, err
	}
	out.Action = Action(action)
	out.DayCompleted = dayCompleted == 1
	out.CreatedAt = createdAt
	return out, nil
}
