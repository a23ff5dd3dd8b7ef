package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(Event{ID: "later", Kind: KindClearUnlockHint, FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Event{ID: "sooner", Kind: KindClearUnlockHint, FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineKeepsInsertionOrderForEqualFireTimes(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	at := time.Now().UTC().Add(20 * time.Millisecond)
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.Schedule(Event{ID: id, FireAt: at}); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	for _, want := range []string{"a", "b", "c"} {
		if got := waitEvent(t, engine.C(), time.Second); got.ID != want {
			t.Fatalf("got %s, want %s", got.ID, want)
		}
	}
}

func TestEngineAfterCarriesPayload(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	if err := engine.After(Event{ID: "hint-1", Kind: KindClearUnlockHint, DayNumber: 4, TaskIndex: 2}, 10*time.Millisecond); err != nil {
		t.Fatalf("after: %v", err)
	}
	ev := waitEvent(t, engine.C(), time.Second)
	if ev.DayNumber != 4 || ev.TaskIndex != 2 || ev.Kind != KindClearUnlockHint {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", engine.Pending())
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Event{ID: "evt", FireAt: at}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesFireTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Event{ID: "bad"}); !errors.Is(err, ErrInvalidFireTime) {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.After(Event{ID: "late"}, time.Millisecond); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected closed channel after stop")
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}

func TestEngineCancelRemovesPendingEvent(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().UTC().Add(30 * time.Millisecond)
	for _, id := range []string{"stale", "fresh"} {
		if err := engine.Schedule(Event{ID: id, Kind: KindClearUnlockHint, FireAt: fireAt}); err != nil {
			t.Fatalf("schedule %s: %v", id, err)
		}
	}
	if !engine.Cancel("stale") {
		t.Fatal("expected pending event to be cancelled")
	}
	if engine.Cancel("stale") || engine.Cancel("unknown") {
		t.Fatal("cancel must report false for absent events")
	}

	select {
	case ev := <-engine.C():
		if ev.ID != "fresh" {
			t.Fatalf("expected fresh event, got %s", ev.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", engine.Pending())
	}
}
