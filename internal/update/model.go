package update

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"
	"github.com/sandeepkv93/habitd/internal/progression"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Toggle  key.Binding
	Today   key.Binding
	Expand  key.Binding
	Streak  key.Binding
	Journal key.Binding
	Compact key.Binding
	Palette key.Binding
	Help    key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "previous task")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "next task")),
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next day")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "toggle task")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "jump to today")),
		Expand:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand/collapse tasks")),
		Streak:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "streak")),
		Journal: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "activity panel")),
		Compact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compact list")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// UnlockHint marks a task as "just unlocked" until its clear event fires.
type UnlockHint struct {
	ID        string
	DayNumber int
	TaskIndex int
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// hintRecorder collects session hints during a single ToggleTask call. It
// is held by pointer so copies of the value Model share it.
type hintRecorder struct {
	unlocks []progression.UnlockEvent
	expand  *progression.ExpandHint
}

func (r *hintRecorder) TaskJustUnlocked(ev progression.UnlockEvent) {
	r.unlocks = append(r.unlocks, ev)
}

func (r *hintRecorder) SuggestExpand(h progression.ExpandHint) {
	r.expand = &h
}

func (r *hintRecorder) drain() ([]progression.UnlockEvent, *progression.ExpandHint) {
	unlocks, expand := r.unlocks, r.expand
	r.unlocks, r.expand = nil, nil
	return unlocks, expand
}

type Model struct {
	Session        *progression.Session
	Username       string
	Cursor         int
	Expanded       bool
	StreakVisible  bool
	JournalVisible bool
	CompactList    bool
	HelpVisible    bool
	UnlockHint     *UnlockHint
	Scheduler      *scheduler.Engine
	Journal        storage.Journal
	JournalLog     []storage.Entry
	Palette        CommandPaletteState
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           KeyMap
	Quitting       bool
	LastError      error

	hints        *hintRecorder
	hintDuration time.Duration
	notifier     DesktopNotifier
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string

	pendingGenOpts []progression.GeneratorOption

	taskList       list.Model
	dayProgress    progress.Model
	streakTable    table.Model
	commandInput   textinput.Model
	streakViewport viewport.Model
	focusViewport  viewport.Model
	pulse          spinner.Model
	helpModel      help.Model
	pulseActive    bool
}

type Option func(*Model)

func WithScheduler(engine *scheduler.Engine) Option {
	return func(m *Model) { m.Scheduler = engine }
}

func WithJournal(j storage.Journal) Option {
	return func(m *Model) { m.Journal = j }
}

func WithNotifier(n DesktopNotifier) Option {
	return func(m *Model) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDFunc replaces the generator used for hint and journal entry ids.
func WithIDFunc(fn func() string) Option {
	return func(m *Model) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithGeneratorOptions is forwarded to the session the model creates.
func WithGeneratorOptions(opts ...progression.GeneratorOption) Option {
	return func(m *Model) {
		m.pendingGenOpts = append(m.pendingGenOpts, opts...)
	}
}

// NewModel builds the session from cfg and wires the TUI around it.
func NewModel(cfg RuntimeConfig, opts ...Option) (Model, error) {
	m := Model{
		Username:       cfg.Username,
		Expanded:       true,
		DesktopEnabled: cfg.DesktopNotifications,
		Keys:           DefaultKeyMap(),
		hints:          &hintRecorder{},
		hintDuration:   cfg.UnlockHintDuration(),
		notifier:       NoopDesktopNotifier{},
		logger:         slog.New(slog.DiscardHandler),
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Username == "" {
		m.Username = "User"
	}

	genOpts := m.pendingGenOpts
	if cfg.Seed != 0 {
		genOpts = append([]progression.GeneratorOption{progression.WithSeed(cfg.Seed)}, genOpts...)
	}
	m.Session = progression.NewSession(
		progression.WithListener(m.hints),
		progression.WithLogger(m.logger),
		progression.WithGeneratorOptions(genOpts...),
	)
	if err := m.Session.Initialize(cfg.ProgressionConfig()); err != nil {
		return Model{}, fmt.Errorf("initialize session: %w", err)
	}
	m.pendingGenOpts = nil

	m.initBubbleComponents()
	m.resetCursor()
	m.refreshJournal(context.Background())
	m.syncBubbleData()
	return m, nil
}
