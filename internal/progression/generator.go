package progression

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sandeepkv93/habitd/internal/model"
)

// Generator builds the full day sequence for a Config.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	newID func() string
}

type GeneratorOption func(*Generator)

// WithRand injects the random source used for task counts and sampling.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithIDFunc replaces the uuid-based id source for days and tasks.
func WithIDFunc(fn func() string) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

func NewGenerator(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns TotalDays days numbered 1..TotalDays with locks already
// propagated. Every day is checked against the day invariants before it is
// returned.
func (g *Generator) Generate() ([]model.Day, error) {
	days := make([]model.Day, 0, g.cfg.TotalDays)
	for n := 1; n <= g.cfg.TotalDays; n++ {
		preCompleted := n <= g.cfg.PreCompletedDays
		templates := g.sample(g.taskCount())
		tasks := make([]model.Task, 0, len(templates))
		for i, tpl := range templates {
			task := tpl.Instantiate(g.newID())
			task.Completed = preCompleted
			task.Locked = i != 0 && !preCompleted
			tasks = append(tasks, task)
		}
		days = append(days, model.Day{
			ID:         g.newID(),
			DayNumber:  n,
			Activities: tasks,
			FocusText:  model.FocusText(n),
		})
	}

	for i := range days {
		days[i] = RecomputeLocks(days[i], nil)
		if err := days[i].Validate(); err != nil {
			return nil, fmt.Errorf("progression: generated invalid day: %w", err)
		}
		if days[i].DayNumber <= g.cfg.PreCompletedDays && !days[i].FullyCompleted() {
			return nil, fmt.Errorf("progression: pre-completed day %d has open tasks", days[i].DayNumber)
		}
	}
	return days, nil
}

func (g *Generator) taskCount() int {
	lo, hi := g.cfg.taskRange()
	return lo + g.rng.IntN(hi-lo+1)
}

// sample draws n distinct templates in random order using a partial
// Fisher-Yates shuffle over template indexes. The pool itself is not touched.
func (g *Generator) sample(n int) []model.TaskTemplate {
	pool := g.cfg.Pool
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	out := make([]model.TaskTemplate, 0, n)
	for i := 0; i < n; i++ {
		j := i + g.rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, pool[idx[i]])
	}
	return out
}
