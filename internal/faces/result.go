// Package faces holds the domain types shared by the processing pipeline,
// the remote face-service clients and the triage step.
package faces

import "fmt"

// Subject is a candidate identity returned by the face service together
// with its similarity score.
type Subject struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// FailureFace is a file the face service rejected or could not match. The
// two variants carry mode-specific payloads and are only distinguished at
// the triage boundary.
type FailureFace interface {
	failureFace()
}

// TrainFailure is a file the service refused to add to the training set.
type TrainFailure struct {
	Path string
}

// RecognizeFailure is a file whose response contained no candidate matching
// the expected subject. Subjects carries every candidate the service
// returned, in response order.
type RecognizeFailure struct {
	Path     string
	Subjects []Subject
}

func (TrainFailure) failureFace()     {}
func (RecognizeFailure) failureFace() {}

// Result accumulates the outcome of one or more batches sent to the face
// service. The invariant Total == Success + Failure + Missed holds after
// every Add as long as every processed file lands in exactly one bucket.
type Result struct {
	// Context names the source of the result: the batch's folder for a
	// partial result, the dataset root for the run accumulator.
	Context string

	Total   int
	Success int
	Failure int
	Missed  int

	FailureFaces []FailureFace
	MissedFaces  []string
}

// WithContext returns an empty result labeled with the given context.
func WithContext(context string) Result {
	return Result{Context: context}
}

// Add merges other into r. Counts are summed and the failure/missed lists
// are extended preserving other's order.
func (r *Result) Add(other Result) {
	r.Total += other.Total
	r.Success += other.Success
	r.Failure += other.Failure
	r.Missed += other.Missed
	r.FailureFaces = append(r.FailureFaces, other.FailureFaces...)
	r.MissedFaces = append(r.MissedFaces, other.MissedFaces...)
}

// Clone returns a deep copy of r so a snapshot can cross a channel without
// sharing the list backing arrays with the accumulator.
func (r Result) Clone() Result {
	out := r
	out.FailureFaces = append([]FailureFace(nil), r.FailureFaces...)
	out.MissedFaces = append([]string(nil), r.MissedFaces...)
	return out
}

func (r Result) String() string {
	return fmt.Sprintf("%s Total: %d, Success: %d, Failure: %d, missing: %d",
		r.Context, r.Total, r.Success, r.Failure, r.Missed)
}
