package faces

// Report is one progress event emitted by the pipeline. Events travel over
// a small bounded channel to a single consumer, are never reordered and are
// never dropped; a slow consumer simply throttles the pipeline.
type Report interface {
	report()
}

// IncreaseLength extends the progress denominator by N files.
type IncreaseLength struct {
	N int
}

// Increase advances the progress position by N files.
type Increase struct {
	N int
}

// Message sets a transient status label.
type Message struct {
	Text string
}

// PartialResult carries the result of a single batch. Informational only;
// it does not replace displayed totals.
type PartialResult struct {
	Result Result
}

// AccumulatedResult carries the authoritative running total after a batch
// was merged. It replaces any previously displayed totals.
type AccumulatedResult struct {
	Result Result
}

// Finished is the terminal event; no further events follow on the channel.
type Finished struct {
	Text string
}

func (IncreaseLength) report()    {}
func (Increase) report()          {}
func (Message) report()           {}
func (PartialResult) report()     {}
func (AccumulatedResult) report() {}
func (Finished) report()          {}
