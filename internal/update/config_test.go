package update

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.TotalDays != 25 || cfg.CurrentDay != 15 || cfg.PreCompletedDays != 3 {
		t.Fatalf("unexpected day defaults: %+v", cfg)
	}
	if cfg.MinTasks != 3 || cfg.MaxTasks != 5 || cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.Username != "User" || cfg.ConfigPath != "habitd.yaml" {
		t.Fatalf("unexpected ui defaults: %+v", cfg)
	}
	if cfg.UnlockHintDuration() != 500*time.Millisecond {
		t.Fatalf("unexpected hint duration %s", cfg.UnlockHintDuration())
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("HABITD_TOTAL_DAYS", "30")
	t.Setenv("HABITD_CURRENT_DAY", "10")
	t.Setenv("HABITD_PRE_COMPLETED_DAYS", "0")
	t.Setenv("HABITD_SEED", "42")
	t.Setenv("HABITD_UNLOCK_HINT_MILLIS", "250")
	t.Setenv("HABITD_SCHEDULER_BUFFER", "128")
	t.Setenv("HABITD_USERNAME", "Ada")
	t.Setenv("HABITD_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("HABITD_LOG_LEVEL", "debug")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.TotalDays != 30 || cfg.CurrentDay != 10 || cfg.PreCompletedDays != 0 {
		t.Fatalf("unexpected day overrides: %+v", cfg)
	}
	if cfg.Seed != 42 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected config overrides: %+v", cfg)
	}
	if cfg.UnlockHintDuration() != 250*time.Millisecond {
		t.Fatalf("unexpected hint duration %s", cfg.UnlockHintDuration())
	}
	if cfg.Username != "Ada" || !cfg.DesktopNotifications || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected ui overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("HABITD_TOTAL_DAYS", "many")
	t.Setenv("HABITD_CURRENT_DAY", "-3")
	t.Setenv("HABITD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.TotalDays != 25 || cfg.CurrentDay != 15 || cfg.DesktopNotifications {
		t.Fatalf("expected defaults to survive bad env, got %+v", cfg)
	}
}

func TestLoadRuntimeConfigFileMissingIsNotAnError(t *testing.T) {
	base := DefaultRuntimeConfig()
	cfg, err := LoadRuntimeConfigFile(filepath.Join(t.TempDir(), "absent.yaml"), base)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TotalDays != base.TotalDays || cfg.ConfigPath != base.ConfigPath {
		t.Fatalf("expected base config, got %+v", cfg)
	}
}

func TestLoadRuntimeConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitd.yaml")
	raw := `days:
  total: 10
  current: 4
  pre_completed: 1
  max_tasks: 4
  seed: 99
ui:
  username: Grace
  unlock_hint_ms: 800
  desktop_notifications: true
log:
  file: habitd.log
task_pool:
  - title: Stretch
    duration: 5 min
    category: leaf
  - title: Read
    duration: 15 min
    category: book
  - title: Walk
    duration: 20 min
    category: figure.walk
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadRuntimeConfigFile(path, DefaultRuntimeConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TotalDays != 10 || cfg.CurrentDay != 4 || cfg.PreCompletedDays != 1 || cfg.MaxTasks != 4 {
		t.Fatalf("unexpected days block: %+v", cfg)
	}
	if cfg.MinTasks != 3 {
		t.Fatalf("unset keys must keep base values, got min_tasks=%d", cfg.MinTasks)
	}
	if cfg.Seed != 99 || cfg.Username != "Grace" || !cfg.DesktopNotifications {
		t.Fatalf("unexpected overlay: %+v", cfg)
	}
	if cfg.UnlockHintDuration() != 800*time.Millisecond || cfg.LogFile != "habitd.log" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected ui/log overlay: %+v", cfg)
	}
	if len(cfg.TaskPool) != 3 || cfg.TaskPool[2].Category != model.CategoryWalk {
		t.Fatalf("unexpected task pool: %+v", cfg.TaskPool)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.ConfigPath)
	}

	pc := cfg.ProgressionConfig()
	if pc.TotalDays != 10 || pc.CurrentDay != 4 || len(pc.Pool) != 3 {
		t.Fatalf("unexpected progression config: %+v", pc)
	}
}

func TestLoadRuntimeConfigFileRejectsBadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitd.yaml")
	raw := "task_pool:\n  - title: Nap\n    category: pillow\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	base := DefaultRuntimeConfig()
	cfg, err := LoadRuntimeConfigFile(path, base)
	if !errors.Is(err, model.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(cfg.TaskPool) != 0 {
		t.Fatalf("expected base config on error, got %+v", cfg.TaskPool)
	}
}

func TestLoadRuntimeConfigFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitd.yaml")
	if err := os.WriteFile(path, []byte("days: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadRuntimeConfigFile(path, DefaultRuntimeConfig()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestProgressionConfigDefaultsPool(t *testing.T) {
	pc := DefaultRuntimeConfig().ProgressionConfig()
	if len(pc.Pool) != len(model.DefaultTaskPool()) {
		t.Fatalf("expected built-in pool, got %d templates", len(pc.Pool))
	}
	if pc.MinTasks != 3 || pc.MaxTasks != 5 {
		t.Fatalf("unexpected task bounds: %+v", pc)
	}
}
