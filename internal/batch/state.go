package batch

import (
	"github.com/ytget/yt-batch/internal/model"
)

// State is an immutable snapshot of a batch. Transitions return a new value.
type State struct {
	BatchID   string
	Phase     model.BatchPhase
	OutputDir string
	Pending   []model.QueueItem
	Current   *model.QueueItem
	Total     int
	Completed int
	Failed    int
}

// IdleState is the state before the first batch and after every batch
func IdleState() State {
	return State{Phase: model.BatchPhaseIdle}
}

// Begin starts a batch over items
func Begin(batchID string, items []model.QueueItem, outputDir string) State {
	pending := make([]model.QueueItem, len(items))
	copy(pending, items)
	return State{
		BatchID:   batchID,
		Phase:     model.BatchPhaseRunning,
		OutputDir: outputDir,
		Pending:   pending,
		Total:     len(items),
	}
}

// Next pops the head of the queue. ok is false when the queue is empty, in
// which case the returned state is idle.
func (s State) Next() (State, model.QueueItem, bool) {
	if len(s.Pending) == 0 {
		idle := IdleState()
		idle.BatchID = s.BatchID
		idle.OutputDir = s.OutputDir
		idle.Total = s.Total
		idle.Completed = s.Completed
		idle.Failed = s.Failed
		return idle, model.QueueItem{}, false
	}

	item := s.Pending[0]
	next := s
	next.Pending = s.Pending[1:]
	next.Current = &item
	return next, item, true
}

// Complete records the end of the current item
func (s State) Complete(failed bool) State {
	if s.Current == nil {
		return s
	}
	next := s
	next.Current = nil
	next.Completed++
	if failed {
		next.Failed++
	}
	return next
}

// Index is the 1-based position of the current (or next) item
func (s State) Index() int {
	return s.Completed + 1
}

// Accounted returns pending + completed + in-flight items; it equals Total for
// the whole lifetime of a batch
func (s State) Accounted() int {
	n := len(s.Pending) + s.Completed
	if s.Current != nil {
		n++
	}
	return n
}

// IsCurrent reports whether item is the one in flight
func (s State) IsCurrent(itemID string) bool {
	return s.Current != nil && s.Current.ID == itemID
}
