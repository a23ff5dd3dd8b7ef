package progression

// UnlockEvent reports a task that just became actionable because the task
// before it was completed. It is transient: a newer event supersedes it.
type UnlockEvent struct {
	DayNumber int
	TaskIndex int
	TaskID    string
}

// ExpandHint tells the presentation layer whether the task list of a day
// should be shown expanded after a toggle.
type ExpandHint struct {
	DayNumber int
	Expand    bool
}

// Listener receives session hints synchronously from within ToggleTask.
type Listener interface {
	TaskJustUnlocked(UnlockEvent)
	SuggestExpand(ExpandHint)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnUnlock func(UnlockEvent)
	OnExpand func(ExpandHint)
}

func (l ListenerFuncs) TaskJustUnlocked(ev UnlockEvent) {
	if l.OnUnlock != nil {
		l.OnUnlock(ev)
	}
}

func (l ListenerFuncs) SuggestExpand(h ExpandHint) {
	if l.OnExpand != nil {
		l.OnExpand(h)
	}
}

type nopListener struct{}

func (nopListener) TaskJustUnlocked(UnlockEvent) {}
func (nopListener) SuggestExpand(ExpandHint)     {}
