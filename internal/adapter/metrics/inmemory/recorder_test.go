package inmemory

import (
	"sync"
	"testing"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("lookup.company")
	r.RecordSuccess("dashboard.suggest")
	r.RecordInvalid("lookup.company")
	r.RecordFailure("checkout.submit_reference")

	s := r.Snapshot()
	if s.DispatchTotal != 4 {
		t.Fatalf("expected total 4, got %d", s.DispatchTotal)
	}
	if s.DispatchSuccess != 2 {
		t.Fatalf("expected success 2, got %d", s.DispatchSuccess)
	}
	if s.DispatchInvalid != 1 {
		t.Fatalf("expected invalid 1, got %d", s.DispatchInvalid)
	}
	if s.DispatchFailure != 1 {
		t.Fatalf("expected failure 1, got %d", s.DispatchFailure)
	}
	if got := s.ByOperation["lookup.company"]; got.Success != 1 || got.Invalid != 1 {
		t.Fatalf("unexpected lookup counts: %+v", got)
	}
	if got := s.ByOperation["checkout.submit_reference"]; got.Failure != 1 {
		t.Fatalf("unexpected checkout counts: %+v", got)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("learn.topic")
	s := r.Snapshot()
	r.RecordSuccess("learn.topic")
	if s.ByOperation["learn.topic"].Success != 1 {
		t.Fatalf("snapshot mutated after record")
	}
}

func TestRecorderConcurrentRecords(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordSuccess("insights.report")
		}()
	}
	wg.Wait()
	if got := r.Snapshot().ByOperation["insights.report"].Success; got != 50 {
		t.Fatalf("expected 50 successes, got %d", got)
	}
}
