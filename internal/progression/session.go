package progression

import (
	"log/slog"

	"github.com/sandeepkv93/habitd/internal/model"
)

// ToggleOutcome describes what ToggleTask did. Only ToggleApplied changes
// state; the rest are silent rejections.
type ToggleOutcome int

const (
	ToggleApplied ToggleOutcome = iota
	ToggleDayNotFound
	ToggleTaskNotFound
	ToggleLocked
	ToggleOutOfOrder
)

func (o ToggleOutcome) String() string {
	switch o {
	case ToggleApplied:
		return "applied"
	case ToggleDayNotFound:
		return "day not found"
	case ToggleTaskNotFound:
		return "task not found"
	case ToggleLocked:
		return "task locked"
	case ToggleOutOfOrder:
		return "not the last completed task"
	default:
		return "unknown"
	}
}

// Session owns the day collection for one user. It is created empty,
// populated once by Initialize and afterwards mutated only by ToggleTask.
// A Session is not safe for concurrent use.
type Session struct {
	cfg         Config
	days        []model.Day
	index       map[int]int
	selected    int
	initialized bool

	listener Listener
	logger   *slog.Logger
	genOpts  []GeneratorOption
}

type Option func(*Session)

func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listener = l
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGeneratorOptions forwards options to the generator used by Initialize.
func WithGeneratorOptions(opts ...GeneratorOption) Option {
	return func(s *Session) {
		s.genOpts = append(s.genOpts, opts...)
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		listener: nopListener{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize generates the day collection. Once a collection exists later
// calls are no-ops, whatever cfg they pass.
func (s *Session) Initialize(cfg Config) error {
	if s.initialized {
		s.logger.Debug("session already initialized, skipping generation")
		return nil
	}
	gen, err := NewGenerator(cfg, s.genOpts...)
	if err != nil {
		return err
	}
	days, err := gen.Generate()
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.days = days
	s.index = make(map[int]int, len(days))
	for i, d := range days {
		s.index[d.DayNumber] = i
	}
	s.selected = cfg.Boundary()
	s.initialized = true

	s.logger.Info("session initialized",
		"total_days", cfg.TotalDays,
		"pre_completed_days", cfg.PreCompletedDays,
		"current_day", cfg.CurrentDay,
		"current_streak", s.CurrentStreak(),
	)
	return nil
}

func (s *Session) Initialized() bool { return s.initialized }

// Boundary returns the last interactive day number, or 0 before Initialize.
func (s *Session) Boundary() int {
	if !s.initialized {
		return 0
	}
	return s.cfg.Boundary()
}

func (s *Session) TotalDays() int { return len(s.days) }

func (s *Session) Selected() int { return s.selected }

// SelectDay moves the selection to dayNumber if it exists and is not past
// the boundary.
func (s *Session) SelectDay(dayNumber int) bool {
	if _, ok := s.index[dayNumber]; !ok || dayNumber > s.Boundary() {
		return false
	}
	s.selected = dayNumber
	return true
}

// Days returns a deep copy of the collection ordered by day number.
func (s *Session) Days() []model.Day {
	out := make([]model.Day, len(s.days))
	for i, d := range s.days {
		out[i] = d.Clone()
	}
	return out
}

func (s *Session) Day(dayNumber int) (model.Day, bool) {
	pos, ok := s.index[dayNumber]
	if !ok {
		return model.Day{}, false
	}
	return s.days[pos].Clone(), true
}

func (s *Session) FocusText(dayNumber int) string {
	return model.FocusText(dayNumber)
}

// ToggleTask flips the completion of one task. Incomplete tasks can be
// completed when unlocked; a completed task can only be reopened when no
// later task in the day is completed.
func (s *Session) ToggleTask(dayNumber int, taskID string) ToggleOutcome {
	outcome := s.toggle(dayNumber, taskID)
	if outcome != ToggleApplied {
		s.logger.Debug("toggle rejected", "day", dayNumber, "task_id", taskID, "reason", outcome.String())
	}
	return outcome
}

func (s *Session) toggle(dayNumber int, taskID string) ToggleOutcome {
	pos, ok := s.index[dayNumber]
	if !ok {
		return ToggleDayNotFound
	}
	day := s.days[pos].Clone()
	i := day.TaskIndex(taskID)
	if i < 0 {
		return ToggleTaskNotFound
	}
	task := day.Activities[i]
	if task.Locked {
		return ToggleLocked
	}
	if task.Completed && i != day.LastCompletedIndex() {
		return ToggleOutOfOrder
	}

	day.Activities[i].Completed = !task.Completed
	var unlocked []int
	day = RecomputeLocks(day, func(idx int) { unlocked = append(unlocked, idx) })
	s.days[pos] = day

	s.logger.Debug("task toggled",
		"day", dayNumber,
		"task_index", i,
		"completed", day.Activities[i].Completed,
		"day_completed", day.FullyCompleted(),
	)
	for _, idx := range unlocked {
		s.listener.TaskJustUnlocked(UnlockEvent{
			DayNumber: dayNumber,
			TaskIndex: idx,
			TaskID:    day.Activities[idx].ID,
		})
	}
	s.listener.SuggestExpand(ExpandHint{DayNumber: dayNumber, Expand: !day.FullyCompleted()})
	return ToggleApplied
}

func (s *Session) CurrentStreak() int {
	return CurrentStreak(s.days, s.Boundary())
}

func (s *Session) LongestStreak() int {
	return LongestStreak(s.days, s.Boundary())
}

func (s *Session) CompletedDays() []int {
	return CompletedDays(s.days)
}
