package progression

import "github.com/sandeepkv93/habitd/internal/model"

// RecomputeLocks returns a copy of day whose tasks satisfy the lock rule:
// the first task is never locked and every later task is locked while its
// predecessor is incomplete. Completion flags are left as they are.
//
// onUnlock, when non-nil, is called with the index of each task that goes
// from locked to unlocked during the pass.
func RecomputeLocks(day model.Day, onUnlock func(taskIndex int)) model.Day {
	out := day.Clone()
	for i := range out.Activities {
		wasLocked := out.Activities[i].Locked
		locked := i != 0 && !out.Activities[i-1].Completed
		out.Activities[i].Locked = locked
		if wasLocked && !locked && onUnlock != nil {
			onUnlock(i)
		}
	}
	return out
}
