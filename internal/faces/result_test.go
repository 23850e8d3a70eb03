package faces

import "testing"

func partial(context string, success, failure, missed int) Result {
	r := WithContext(context)
	r.Success = success
	r.Failure = failure
	r.Missed = missed
	r.Total = success + failure + missed
	for i := 0; i < failure; i++ {
		r.FailureFaces = append(r.FailureFaces, TrainFailure{Path: context + "/failed.jpg"})
	}
	for i := 0; i < missed; i++ {
		r.MissedFaces = append(r.MissedFaces, context+"/missed.jpg")
	}
	return r
}

func checkInvariant(t *testing.T, r Result) {
	t.Helper()
	if r.Total != r.Success+r.Failure+r.Missed {
		t.Errorf("invariant violated: total %d != success %d + failure %d + missed %d",
			r.Total, r.Success, r.Failure, r.Missed)
	}
}

func TestResult_Add(t *testing.T) {
	r := WithContext("/data")
	r.Add(partial("/data/alice", 2, 1, 0))
	checkInvariant(t, r)
	r.Add(partial("/data/bob", 1, 0, 2))
	checkInvariant(t, r)

	if r.Total != 6 {
		t.Errorf("expected total 6, got %d", r.Total)
	}
	if r.Success != 3 {
		t.Errorf("expected success 3, got %d", r.Success)
	}
	if r.Failure != 1 {
		t.Errorf("expected failure 1, got %d", r.Failure)
	}
	if r.Missed != 2 {
		t.Errorf("expected missed 2, got %d", r.Missed)
	}
	if len(r.FailureFaces) != 1 {
		t.Errorf("expected 1 failure face, got %d", len(r.FailureFaces))
	}
	if len(r.MissedFaces) != 2 {
		t.Errorf("expected 2 missed faces, got %d", len(r.MissedFaces))
	}
}

func TestResult_AddIsAssociativeOnCounts(t *testing.T) {
	a := partial("/a", 1, 2, 3)
	b := partial("/b", 4, 0, 1)
	c := partial("/c", 0, 5, 0)

	// (a + b) + c
	left := WithContext("run")
	left.Add(a)
	left.Add(b)
	left.Add(c)

	// a + (b + c)
	bc := WithContext("partial")
	bc.Add(b)
	bc.Add(c)
	right := WithContext("run")
	right.Add(a)
	right.Add(bc)

	if left.Total != right.Total || left.Success != right.Success ||
		left.Failure != right.Failure || left.Missed != right.Missed {
		t.Errorf("grouping changed totals: %+v vs %+v", left, right)
	}
	if len(left.FailureFaces) != len(right.FailureFaces) {
		t.Errorf("grouping changed failure list length: %d vs %d",
			len(left.FailureFaces), len(right.FailureFaces))
	}
}

func TestResult_AddPreservesListOrder(t *testing.T) {
	r := WithContext("run")

	first := WithContext("/a")
	first.Failure = 1
	first.Total = 1
	first.FailureFaces = []FailureFace{TrainFailure{Path: "/a/1.jpg"}}

	second := WithContext("/b")
	second.Failure = 1
	second.Total = 1
	second.FailureFaces = []FailureFace{TrainFailure{Path: "/b/2.jpg"}}

	r.Add(first)
	r.Add(second)

	got0 := r.FailureFaces[0].(TrainFailure)
	got1 := r.FailureFaces[1].(TrainFailure)
	if got0.Path != "/a/1.jpg" || got1.Path != "/b/2.jpg" {
		t.Errorf("failure list reordered: %v, %v", got0, got1)
	}
}

func TestResult_CloneIsIndependent(t *testing.T) {
	r := partial("/a", 1, 1, 1)
	clone := r.Clone()

	r.Add(partial("/b", 1, 1, 1))

	if clone.Total != 3 {
		t.Errorf("clone changed after mutating original: total %d", clone.Total)
	}
	if len(clone.FailureFaces) != 1 {
		t.Errorf("clone failure list changed: %d", len(clone.FailureFaces))
	}
}

func TestResult_String(t *testing.T) {
	r := partial("/data", 2, 1, 1)

	got := r.String()
	want := "/data Total: 4, Success: 2, Failure: 1, missing: 1"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
