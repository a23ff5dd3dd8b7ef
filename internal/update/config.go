package update

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/progression"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	TotalDays            int
	CurrentDay           int
	PreCompletedDays     int
	MinTasks             int
	MaxTasks             int
	Seed                 uint64
	UnlockHintMillis     int
	SchedulerBuffer      int
	Username             string
	DesktopNotifications bool
	TaskPool             model.TaskPool
	ConfigPath           string
	LogFile              string
	LogLevel             string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TotalDays:            25,
		CurrentDay:           15,
		PreCompletedDays:     3,
		MinTasks:             3,
		MaxTasks:             5,
		UnlockHintMillis:     500,
		SchedulerBuffer:      64,
		Username:             "User",
		DesktopNotifications: false,
		ConfigPath:           "habitd.yaml",
		LogLevel:             "info",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("HABITD_TOTAL_DAYS"); ok && v > 0 {
		cfg.TotalDays = v
	}
	if v, ok := getEnvInt("HABITD_CURRENT_DAY"); ok && v > 0 {
		cfg.CurrentDay = v
	}
	if v, ok := getEnvInt("HABITD_PRE_COMPLETED_DAYS"); ok && v >= 0 {
		cfg.PreCompletedDays = v
	}
	if v, ok := getEnvInt("HABITD_MIN_TASKS"); ok && v > 0 {
		cfg.MinTasks = v
	}
	if v, ok := getEnvInt("HABITD_MAX_TASKS"); ok && v > 0 {
		cfg.MaxTasks = v
	}
	if v, ok := getEnvUint("HABITD_SEED"); ok {
		cfg.Seed = v
	}
	if v, ok := getEnvInt("HABITD_UNLOCK_HINT_MILLIS"); ok && v > 0 {
		cfg.UnlockHintMillis = v
	}
	if v, ok := getEnvInt("HABITD_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_USERNAME")); v != "" {
		cfg.Username = v
	}
	if v, ok := getEnvBool("HABITD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

type fileConfig struct {
	Days struct {
		Total        *int    `yaml:"total"`
		Current      *int    `yaml:"current"`
		PreCompleted *int    `yaml:"pre_completed"`
		MinTasks     *int    `yaml:"min_tasks"`
		MaxTasks     *int    `yaml:"max_tasks"`
		Seed         *uint64 `yaml:"seed"`
	} `yaml:"days"`
	UI struct {
		Username             string `yaml:"username"`
		UnlockHintMillis     *int   `yaml:"unlock_hint_ms"`
		DesktopNotifications *bool  `yaml:"desktop_notifications"`
	} `yaml:"ui"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	TaskPool []model.TaskTemplate `yaml:"task_pool"`
}

// LoadRuntimeConfigFile overlays the YAML file at path onto base. A missing
// file leaves base untouched.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	setInt(&cfg.TotalDays, fc.Days.Total)
	setInt(&cfg.CurrentDay, fc.Days.Current)
	setInt(&cfg.PreCompletedDays, fc.Days.PreCompleted)
	setInt(&cfg.MinTasks, fc.Days.MinTasks)
	setInt(&cfg.MaxTasks, fc.Days.MaxTasks)
	if fc.Days.Seed != nil {
		cfg.Seed = *fc.Days.Seed
	}
	if name := strings.TrimSpace(fc.UI.Username); name != "" {
		cfg.Username = name
	}
	setInt(&cfg.UnlockHintMillis, fc.UI.UnlockHintMillis)
	if fc.UI.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fc.UI.DesktopNotifications
	}
	if fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if len(fc.TaskPool) > 0 {
		pool := model.TaskPool(fc.TaskPool)
		if err := pool.Validate(); err != nil {
			return base, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.TaskPool = pool
	}
	cfg.ConfigPath = path
	return cfg, nil
}

// ProgressionConfig builds the generation parameters. An empty TaskPool
// falls back to the built-in templates.
func (c RuntimeConfig) ProgressionConfig() progression.Config {
	pool := c.TaskPool
	if len(pool) == 0 {
		pool = model.DefaultTaskPool()
	}
	return progression.Config{
		TotalDays:        c.TotalDays,
		PreCompletedDays: c.PreCompletedDays,
		CurrentDay:       c.CurrentDay,
		MinTasks:         c.MinTasks,
		MaxTasks:         c.MaxTasks,
		Pool:             pool,
	}
}

func (c RuntimeConfig) UnlockHintDuration() time.Duration {
	if c.UnlockHintMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.UnlockHintMillis) * time.Millisecond
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvUint(name string) (uint64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
