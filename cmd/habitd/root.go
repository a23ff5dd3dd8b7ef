package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sandeepkv93/habitd/internal/scheduler"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/update"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "habitd",
		Short: "Daily habit tracker for the terminal",
		Long: `habitd generates a run of days, each with a short ordered list of habits.
A habit unlocks once the one before it is done, and fully completed days
build your streak.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	addConfigFlags(root)
	root.Flags().Bool("ask-name", false, "prompt for a username before starting")
	root.AddCommand(newSummaryCmd())
	return root
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "habitd.yaml", "YAML config file (ignored when missing)")
	f.Int("days", 0, "total number of generated days")
	f.Int("current-day", 0, "day number treated as today")
	f.Int("pre-completed", 0, "number of leading days generated as completed")
	f.Int("min-tasks", 0, "minimum tasks per day")
	f.Int("max-tasks", 0, "maximum tasks per day")
	f.Uint64("seed", 0, "generator seed (0 picks a random one)")
	f.String("name", "", "username shown in the header")
	f.String("log-file", "", "write logs to this file")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.Bool("desktop-notifications", false, "send a desktop notification when a day is completed")
}

// resolveConfig layers defaults, the YAML file, HABITD_* variables and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()

	path, _ := cmd.Flags().GetString("config")
	if v := strings.TrimSpace(os.Getenv("HABITD_CONFIG")); v != "" && !cmd.Flags().Changed("config") {
		path = v
	}
	cfg, err := update.LoadRuntimeConfigFile(path, cfg)
	if err != nil {
		return cfg, err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	flags := cmd.Flags()
	intFlags := map[string]*int{
		"days":          &cfg.TotalDays,
		"current-day":   &cfg.CurrentDay,
		"pre-completed": &cfg.PreCompletedDays,
		"min-tasks":     &cfg.MinTasks,
		"max-tasks":     &cfg.MaxTasks,
	}
	for name, dst := range intFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return cfg, err
		}
		*dst = v
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		if name = strings.TrimSpace(name); name != "" {
			cfg.Username = name
		}
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("desktop-notifications") {
		cfg.DesktopNotifications, _ = flags.GetBool("desktop-notifications")
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if ask, _ := cmd.Flags().GetBool("ask-name"); ask {
		name, err := askName(cfg.Username)
		if err != nil {
			return err
		}
		cfg.Username = name
	}

	logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	journal, err := storage.OpenMemoryJournal(cmd.Context())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer journal.Close()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	m, err := update.NewModel(cfg,
		update.WithScheduler(engine),
		update.WithJournal(journal),
		update.WithNotifier(update.ExecDesktopNotifier{}),
		update.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("starting habitd", "days", cfg.TotalDays, "current_day", cfg.CurrentDay, "config", cfg.ConfigPath)

	program := tea.NewProgram(m, tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func askName(current string) (string, error) {
	name := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return current, fmt.Errorf("ask name: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// newLogger writes text logs to path. Without a path logs are discarded so
// they never draw over the TUI.
func newLogger(path, level string) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler), f.Close, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
