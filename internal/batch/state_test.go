package batch

import (
	"testing"

	"github.com/ytget/yt-batch/internal/model"
)

func testItems(urls ...string) []model.QueueItem {
	items := make([]model.QueueItem, 0, len(urls))
	for i, url := range urls {
		items = append(items, model.NewQueueItem(url, i+1))
	}
	return items
}

func TestIdleState(t *testing.T) {
	s := IdleState()
	if s.Phase != model.BatchPhaseIdle {
		t.Errorf("Expected idle phase, got %s", s.Phase)
	}
	if s.Current != nil || len(s.Pending) != 0 || s.Total != 0 {
		t.Errorf("Idle state should be empty: %+v", s)
	}
}

func TestState_AccountingHoldsThroughoutRun(t *testing.T) {
	items := testItems("a", "b", "c")
	s := Begin("batch", items, "/tmp/out")

	check := func(step string) {
		t.Helper()
		if s.Accounted() != s.Total {
			t.Errorf("%s: accounted %d != total %d", step, s.Accounted(), s.Total)
		}
	}
	check("begin")

	for i, want := range items {
		var item model.QueueItem
		var ok bool
		s, item, ok = s.Next()
		if !ok {
			t.Fatalf("Next %d: queue empty too early", i)
		}
		if item.ID != want.ID {
			t.Errorf("Next %d: got %s, want %s", i, item.URL, want.URL)
		}
		if s.Index() != i+1 {
			t.Errorf("Index = %d, want %d", s.Index(), i+1)
		}
		check("next")

		s = s.Complete(i == 1)
		check("complete")
	}

	s, _, ok := s.Next()
	if ok {
		t.Fatal("Expected empty queue")
	}
	if s.Phase != model.BatchPhaseIdle {
		t.Errorf("Expected idle after drain, got %s", s.Phase)
	}
	if s.Completed != 3 || s.Failed != 1 || s.Total != 3 {
		t.Errorf("Unexpected counters: %+v", s)
	}
	check("drained")
}

func TestState_BeginCopiesItems(t *testing.T) {
	items := testItems("a", "b")
	s := Begin("batch", items, "/out")
	items[0].URL = "mutated"

	if s.Pending[0].URL != "a" {
		t.Error("Begin must not alias the caller's slice")
	}
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := Begin("batch", testItems("a", "b"), "/out")

	next, _, _ := s.Next()
	if s.Current != nil || len(s.Pending) != 2 {
		t.Errorf("Next mutated receiver: %+v", s)
	}

	done := next.Complete(false)
	if next.Current == nil || next.Completed != 0 {
		t.Errorf("Complete mutated receiver: %+v", next)
	}
	if done.Completed != 1 {
		t.Errorf("Completed = %d, want 1", done.Completed)
	}
}

func TestState_CompleteWithoutCurrentIsNoop(t *testing.T) {
	s := Begin("batch", testItems("a"), "/out")
	if got := s.Complete(true); got.Completed != 0 || got.Failed != 0 {
		t.Errorf("Complete without current item changed counters: %+v", got)
	}
}

func TestState_IsCurrent(t *testing.T) {
	s, item, _ := Begin("batch", testItems("a"), "/out").Next()

	if !s.IsCurrent(item.ID) {
		t.Error("Expected popped item to be current")
	}
	if s.IsCurrent("other") {
		t.Error("Unexpected current match")
	}
	if IdleState().IsCurrent(item.ID) {
		t.Error("Idle state has no current item")
	}
}
