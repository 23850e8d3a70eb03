package faces

import "sync"

// Accumulator guards the run-wide Result behind a mutex. Merges are
// serialized, so every snapshot reflects a complete set of batches and
// never an interleaved update. The raw result is never exposed for direct
// mutation.
type Accumulator struct {
	mu     sync.Mutex
	result Result
}

// NewAccumulator creates an empty accumulator labeled with context
// (typically the dataset root).
func NewAccumulator(context string) *Accumulator {
	return &Accumulator{result: WithContext(context)}
}

// Merge adds partial to the running total and returns a snapshot of the
// accumulated result after the merge.
func (a *Accumulator) Merge(partial Result) Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result.Add(partial)
	return a.result.Clone()
}

// Snapshot returns a copy of the current accumulated result.
func (a *Accumulator) Snapshot() Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result.Clone()
}
