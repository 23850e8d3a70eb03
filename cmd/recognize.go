package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-trainer/internal/compreface"
	"github.com/kozaktomas/face-trainer/internal/config"
	"github.com/kozaktomas/face-trainer/internal/faces"
	"github.com/kozaktomas/face-trainer/internal/pipeline"
	"github.com/kozaktomas/face-trainer/internal/triage"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize",
	Short: "Verify a dataset against the trained CompreFace model",
	Long: `Recognize walks the dataset folder and asks CompreFace whether each image
is recognized as its folder's subject. Files that fail or cannot be
processed can afterwards be copied or moved into per-subject folders under
the output dir, based on the candidates the service returned.

Example:
  face-trainer recognize --dataset /data/faces
  face-trainer recognize --dataset /data/faces --behavior move --strategy max-similarity --output /data/review`,
	RunE: runRecognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	recognizeCmd.Flags().String("dataset", "", "Dataset root folder (overrides DATASET_PATH)")
	recognizeCmd.Flags().Int64("max-request-size", 0, "Request size budget in bytes (overrides MAX_REQUEST_SIZE)")
	recognizeCmd.Flags().String("name", "", "Subject name for all images (overrides the folder names)")
	recognizeCmd.Flags().String("behavior", "", "What to do with failed files: ignore, copy or move (overrides ERROR_BEHAVIOR)")
	recognizeCmd.Flags().String("strategy", "", "Destination strategy: keep-as-is, max-similarity or above-threshold (overrides POST_RECOGNIZE_STRATEGY)")
	recognizeCmd.Flags().Float64("threshold", 0, "Similarity threshold for above-threshold (overrides ABOVE_THRESHOLD)")
	recognizeCmd.Flags().String("output", "", "Output root for failed and missed files (overrides OUTPUT_DIR)")
}

func runRecognize(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDatasetFlags(cmd, cfg)
	applyErrorFlags(cmd, cfg)

	behavior, err := triage.ParseBehavior(cfg.Errors.Behavior)
	if err != nil {
		return err
	}
	strategy, err := triage.ParseStrategy(cfg.Errors.Strategy)
	if err != nil {
		return err
	}
	if behavior != triage.BehaviorIgnore && cfg.Errors.OutputDir == "" {
		return fmt.Errorf("output dir is required when error behavior is %s (OUTPUT_DIR or --output)", behavior)
	}

	client, err := compreface.New(cfg.CompreFace.URL, cfg.CompreFace.APIKey, logger)
	if err != nil {
		return err
	}

	result, err := runPipeline(cfg, logger, func(ctx context.Context, opts pipeline.Options, events chan<- faces.Report) (faces.Result, error) {
		return pipeline.Recognize(ctx, opts, client, events)
	})
	if err != nil {
		return fmt.Errorf("recognition failed: %w", err)
	}

	fmt.Println(result.String())

	if behavior != triage.BehaviorIgnore {
		tr := triage.New(behavior, strategy, cfg.Errors.AboveThreshold, cfg.Errors.OutputDir, logger)
		if err := tr.Run(result); err != nil {
			return fmt.Errorf("triage finished with errors: %w", err)
		}
	}

	return nil
}

// applyDatasetFlags overrides env configuration with explicitly set flags.
func applyDatasetFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset.Path = mustGetString(cmd, "dataset")
	}
	if cmd.Flags().Changed("max-request-size") {
		cfg.Dataset.MaxRequestSize = mustGetInt64(cmd, "max-request-size")
	}
	if cmd.Flags().Changed("name") {
		cfg.Dataset.OverrideName = mustGetString(cmd, "name")
	}
}

func applyErrorFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("behavior") {
		cfg.Errors.Behavior = mustGetString(cmd, "behavior")
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Errors.Strategy = mustGetString(cmd, "strategy")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Errors.AboveThreshold = mustGetFloat64(cmd, "threshold")
	}
	if cmd.Flags().Changed("output") {
		cfg.Errors.OutputDir = mustGetString(cmd, "output")
	}
}
