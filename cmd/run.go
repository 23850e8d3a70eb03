package cmd

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/kozaktomas/face-trainer/internal/config"
	"github.com/kozaktomas/face-trainer/internal/faces"
	"github.com/kozaktomas/face-trainer/internal/pipeline"
)

// runFunc is the mode-specific pipeline entry (train or recognize).
type runFunc func(ctx context.Context, opts pipeline.Options, events chan<- faces.Report) (faces.Result, error)

// runPipeline wires the two tasks of a run: the pipeline producing progress
// events and the consumer rendering them. The pipeline runs in its own
// goroutine and closes the channel when done; the consumer drains it on the
// calling goroutine, so both have finished when this returns.
func runPipeline(cfg *config.Config, logger *log.Logger, run runFunc) (faces.Result, error) {
	if cfg.Dataset.Path == "" {
		return faces.Result{}, errors.New("dataset path is required (DATASET_PATH or --dataset)")
	}

	opts := pipeline.Options{
		DatasetPath:    cfg.Dataset.Path,
		MaxRequestSize: cfg.Dataset.MaxRequestSize,
		OverrideName:   cfg.Dataset.OverrideName,
	}

	// Small buffer on purpose: a slow consumer throttles the pipeline
	// instead of events piling up.
	events := make(chan faces.Report, 2)

	var (
		result faces.Result
		runErr error
	)

	go func() {
		defer close(events)
		result, runErr = run(context.Background(), opts, events)
		if runErr == nil {
			events <- faces.Finished{Text: "finished"}
		}
	}()

	consumeProgress(events, logger)
	return result, runErr
}
