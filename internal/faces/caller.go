package faces

import "context"

// Trainer uploads one batch of files to the face service to train the
// model under name. Implementations emit one Increase(1) event per file
// attempted, whatever the outcome, and report per-file failures inside the
// returned Result rather than as an error.
type Trainer interface {
	SendToTrain(ctx context.Context, name string, files []string, events chan<- Report) (Result, error)
}

// Recognizer uploads one batch of files and checks whether the service
// recognizes each of them as name. Same progress and error contract as
// Trainer.
type Recognizer interface {
	Recognize(ctx context.Context, name string, files []string, events chan<- Report) (Result, error)
}
