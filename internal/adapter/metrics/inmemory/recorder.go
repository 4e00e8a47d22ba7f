package inmemory

import (
	"sync"
)

type OperationCounts struct {
	Success uint64 `json:"success"`
	Invalid uint64 `json:"invalid"`
	Failure uint64 `json:"failure"`
}

type Snapshot struct {
	DispatchTotal   uint64                     `json:"dispatch_total"`
	DispatchSuccess uint64                     `json:"dispatch_success"`
	DispatchInvalid uint64                     `json:"dispatch_invalid"`
	DispatchFailure uint64                     `json:"dispatch_failure"`
	ByOperation     map[string]OperationCounts `json:"by_operation"`
}

type Recorder struct {
	mu    sync.Mutex
	byOp  map[string]*OperationCounts
	total OperationCounts
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp: map[string]*OperationCounts{},
	}
}

func (r *Recorder) RecordSuccess(operation string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total.Success++
	r.counts(operation).Success++
}

func (r *Recorder) RecordInvalid(operation string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total.Invalid++
	r.counts(operation).Invalid++
}

func (r *Recorder) RecordFailure(operation string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total.Failure++
	r.counts(operation).Failure++
}

// counts must be called with mu held.
func (r *Recorder) counts(operation string) *OperationCounts {
	c, ok := r.byOp[operation]
	if !ok {
		c = &OperationCounts{}
		r.byOp[operation] = c
	}
	return c
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		DispatchSuccess: r.total.Success,
		DispatchInvalid: r.total.Invalid,
		DispatchFailure: r.total.Failure,
		DispatchTotal:   r.total.Success + r.total.Invalid + r.total.Failure,
		ByOperation:     make(map[string]OperationCounts, len(r.byOp)),
	}
	for k, v := range r.byOp {
		out.ByOperation[k] = *v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
