// Package triage relocates failed and missed files after a recognition run
// into per-subject output folders, according to the configured error
// behavior and placement strategy.
package triage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kozaktomas/face-trainer/internal/faces"
	"github.com/kozaktomas/face-trainer/internal/stream"
)

// Behavior controls what happens to a file picked up by triage.
type Behavior int

const (
	BehaviorIgnore Behavior = iota
	BehaviorCopy
	BehaviorMove
)

// ParseBehavior parses the error-behavior configuration value.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "ignore":
		return BehaviorIgnore, nil
	case "copy":
		return BehaviorCopy, nil
	case "move":
		return BehaviorMove, nil
	default:
		return BehaviorIgnore, fmt.Errorf("unknown error behavior %q (expected ignore, copy or move)", s)
	}
}

func (b Behavior) String() string {
	switch b {
	case BehaviorCopy:
		return "copy"
	case BehaviorMove:
		return "move"
	default:
		return "ignore"
	}
}

// Strategy selects the destination subject folder(s) for a failed
// recognition.
type Strategy int

const (
	// StrategyKeepAsIs re-uses the source file's own subject folder name.
	StrategyKeepAsIs Strategy = iota
	// StrategyMaxSimilarity picks the candidate with the highest
	// similarity; ties go to the first encountered maximum.
	StrategyMaxSimilarity
	// StrategyAboveThreshold picks every candidate whose similarity
	// strictly exceeds the configured threshold; zero matches is a valid
	// empty outcome.
	StrategyAboveThreshold
)

// ParseStrategy parses the post-recognize strategy configuration value.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "keep-as-is":
		return StrategyKeepAsIs, nil
	case "max-similarity":
		return StrategyMaxSimilarity, nil
	case "above-threshold":
		return StrategyAboveThreshold, nil
	default:
		return StrategyKeepAsIs, fmt.Errorf("unknown post-recognize strategy %q (expected keep-as-is, max-similarity or above-threshold)", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyMaxSimilarity:
		return "max-similarity"
	case StrategyAboveThreshold:
		return "above-threshold"
	default:
		return "keep-as-is"
	}
}

// Output subtrees under the configured output root.
const (
	failureTree = "failure_faces"
	missedTree  = "missed_faces"
)

// Triage places the failed and missed files of a finished recognition run.
type Triage struct {
	behavior  Behavior
	strategy  Strategy
	threshold float64
	outputDir string
	logger    *log.Logger
}

// New creates a triage step. threshold is only consulted when strategy is
// StrategyAboveThreshold.
func New(behavior Behavior, strategy Strategy, threshold float64, outputDir string, logger *log.Logger) *Triage {
	if logger == nil {
		logger = log.Default()
	}
	return &Triage{
		behavior:  behavior,
		strategy:  strategy,
		threshold: threshold,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Run triages every failed and missed file of result. A file whose triage
// fails does not stop the others; all per-file errors are joined into the
// returned error. With BehaviorIgnore the whole step is a no-op.
func (t *Triage) Run(result faces.Result) error {
	if t.behavior == BehaviorIgnore {
		return nil
	}
	if t.outputDir == "" {
		return errors.New("output dir is required when error behavior is not ignore")
	}

	var errs []error

	for _, face := range result.FailureFaces {
		failure, ok := face.(faces.RecognizeFailure)
		if !ok {
			// Training failures are handled by the service itself.
			continue
		}

		subjects, err := t.destinations(failure)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", failure.Path, err))
			continue
		}
		if err := t.place(failure.Path, failureTree, subjects); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", failure.Path, err))
		}
	}

	for _, path := range result.MissedFaces {
		subject := stream.Stem(filepath.Dir(path))
		if err := t.place(path, missedTree, []string{subject}); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}

// destinations resolves the subject folder name(s) a failed recognition
// should be placed under.
func (t *Triage) destinations(failure faces.RecognizeFailure) ([]string, error) {
	switch t.strategy {
	case StrategyKeepAsIs:
		return []string{stream.Stem(filepath.Dir(failure.Path))}, nil

	case StrategyMaxSimilarity:
		if len(failure.Subjects) == 0 {
			return nil, errors.New("no candidate subjects")
		}
		best := failure.Subjects[0]
		for _, subject := range failure.Subjects[1:] {
			if subject.Similarity > best.Similarity {
				best = subject
			}
		}
		return []string{best.Name}, nil

	case StrategyAboveThreshold:
		var subjects []string
		for _, subject := range failure.Subjects {
			if subject.Similarity > t.threshold {
				subjects = append(subjects, subject.Name)
			}
		}
		return subjects, nil

	default:
		return nil, fmt.Errorf("unknown strategy %d", t.strategy)
	}
}
