package progression

import (
	"testing"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/stretchr/testify/assert"
)

func rawDay(completed []bool, locked []bool) model.Day {
	d := model.Day{ID: "day", DayNumber: 1}
	for i := range completed {
		d.Activities = append(d.Activities, model.Task{ID: string(rune('a' + i)), Title: "t", Completed: completed[i], Locked: locked[i]})
	}
	return d
}

func TestRecomputeLocksFromArbitraryState(t *testing.T) {
	in := rawDay(
		[]bool{true, false, true, false},
		[]bool{true, true, false, false},
	)
	out := RecomputeLocks(in, nil)

	want := []bool{false, false, true, false}
	for i, task := range out.Activities {
		assert.Equal(t, want[i], task.Locked, "task %d", i)
		assert.Equal(t, in.Activities[i].Completed, task.Completed, "completion must not change")
	}
	assert.True(t, in.Activities[0].Locked, "input day must not be mutated")
}

func TestRecomputeLocksReportsTransitionsOnly(t *testing.T) {
	var unlocked []int
	in := rawDay(
		[]bool{true, true, false},
		[]bool{false, true, false},
	)
	RecomputeLocks(in, func(i int) { unlocked = append(unlocked, i) })
	assert.Equal(t, []int{1}, unlocked, "task 2 was already unlocked so it is not reported")

	unlocked = nil
	settled := RecomputeLocks(in, nil)
	RecomputeLocks(settled, func(i int) { unlocked = append(unlocked, i) })
	assert.Empty(t, unlocked)
}

func TestRecomputeLocksEmptyDay(t *testing.T) {
	out := RecomputeLocks(model.Day{DayNumber: 3}, func(int) { t.Fatal("unexpected unlock") })
	assert.Empty(t, out.Activities)
}
