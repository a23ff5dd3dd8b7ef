package main

import (
	"fmt"
	"io"

	"github.com/sandeepkv93/habitd/internal/progression"
	"github.com/sandeepkv93/habitd/internal/update"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print streaks and per-day completion without starting the TUI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			session, err := newSession(cfg)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), session)
		},
	}
}

func newSession(cfg update.RuntimeConfig) (*progression.Session, error) {
	var genOpts []progression.GeneratorOption
	if cfg.Seed != 0 {
		genOpts = append(genOpts, progression.WithSeed(cfg.Seed))
	}
	s := progression.NewSession(progression.WithGeneratorOptions(genOpts...))
	if err := s.Initialize(cfg.ProgressionConfig()); err != nil {
		return nil, err
	}
	return s, nil
}

func writeSummary(w io.Writer, s *progression.Session) error {
	if _, err := fmt.Fprintf(w, "Current: %d | Longest: %d\n", s.CurrentStreak(), s.LongestStreak()); err != nil {
		return err
	}
	boundary := s.Boundary()
	for _, day := range s.Days() {
		done := 0
		for _, t := range day.Activities {
			if t.Completed {
				done++
			}
		}
		label := "Day"
		if day.DayNumber == boundary {
			label = "Today"
		}
		mark := ""
		switch {
		case day.FullyCompleted():
			mark = " 🔥"
		case day.DayNumber > boundary:
			mark = " (upcoming)"
		}
		if _, err := fmt.Fprintf(w, "%-5s %2d  %d/%d%s\n", label, day.DayNumber, done, len(day.Activities), mark); err != nil {
			return err
		}
	}
	return nil
}
