package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Hints are superseded from many goroutines while the loop is firing; only
// the hints that were never cancelled may come out.
func TestEngineConcurrentHintSupersession(t *testing.T) {
	engine := NewEngine(1024)
	engine.Start()
	defer engine.Stop()

	const days = 6
	const hintsPerDay = 60

	start := time.Now().UTC().Add(20 * time.Millisecond)
	var wg sync.WaitGroup
	var mu sync.Mutex
	survivors := map[string]bool{}

	for d := 1; d <= days; d++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			prev := ""
			for i := 0; i < hintsPerDay; i++ {
				id := fmt.Sprintf("day%d-hint%d", day, i)
				err := engine.Schedule(Event{
					ID:        id,
					Kind:      KindClearUnlockHint,
					DayNumber: day,
					TaskIndex: i % 5,
					FireAt:    start.Add(time.Duration(i%7) * time.Millisecond),
				})
				if err != nil {
					t.Errorf("schedule %s: %v", id, err)
					return
				}
				if prev != "" && engine.Cancel(prev) {
					mu.Lock()
					delete(survivors, prev)
					mu.Unlock()
				}
				mu.Lock()
				survivors[id] = true
				mu.Unlock()
				prev = id
			}
		}(d)
	}
	wg.Wait()

	mu.Lock()
	want := len(survivors)
	mu.Unlock()

	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(seen) < want {
		select {
		case <-deadline:
			t.Fatalf("timeout: got %d of %d hints, dropped=%d pending=%d", len(seen), want, engine.Dropped(), engine.Pending())
		case ev := <-engine.C():
			mu.Lock()
			ok := survivors[ev.ID]
			mu.Unlock()
			if !ok {
				t.Fatalf("cancelled hint %s fired", ev.ID)
			}
			if seen[ev.ID] {
				t.Fatalf("hint %s fired twice", ev.ID)
			}
			seen[ev.ID] = true
		}
	}

	// the newest hint per day is never cancelled
	for d := 1; d <= days; d++ {
		last := fmt.Sprintf("day%d-hint%d", d, hintsPerDay-1)
		if !seen[last] {
			t.Fatalf("expected newest hint %s to fire", last)
		}
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
}
