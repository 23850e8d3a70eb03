package pipeline

import (
	"context"

	"github.com/kozaktomas/face-trainer/internal/faces"
)

// Train runs the full pipeline in training mode: every batch is uploaded
// through trainer and merged into the run accumulator. After each batch the
// per-batch result and the accumulated snapshot are published on events.
func Train(ctx context.Context, opts Options, trainer faces.Trainer, events chan<- faces.Report) (faces.Result, error) {
	return run(ctx, opts, events, func(ctx context.Context, name string, files []string) (faces.Result, error) {
		return trainer.SendToTrain(ctx, name, files, events)
	})
}

// Recognize runs the full pipeline in recognition mode.
func Recognize(ctx context.Context, opts Options, recognizer faces.Recognizer, events chan<- faces.Report) (faces.Result, error) {
	return run(ctx, opts, events, func(ctx context.Context, name string, files []string) (faces.Result, error) {
		return recognizer.Recognize(ctx, name, files, events)
	})
}

func run(ctx context.Context, opts Options, events chan<- faces.Report, call func(context.Context, string, []string) (faces.Result, error)) (faces.Result, error) {
	acc := faces.NewAccumulator(opts.DatasetPath)

	err := ProcessFiles(ctx, opts, events, func(ctx context.Context, name string, files []string) error {
		partial, err := call(ctx, name, files)
		if err != nil {
			return err
		}

		events <- faces.PartialResult{Result: partial}
		events <- faces.AccumulatedResult{Result: acc.Merge(partial)}
		return nil
	})
	if err != nil {
		return faces.Result{}, err
	}

	return acc.Snapshot(), nil
}
