package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-trainer/internal/compreface"
	"github.com/kozaktomas/face-trainer/internal/faces"
	"github.com/kozaktomas/face-trainer/internal/pipeline"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Upload a dataset to CompreFace to train the recognition model",
	Long: `Train walks the dataset folder, groups images by their subject folder and
uploads them to CompreFace in size-bounded batches.

Example:
  face-trainer train --dataset /data/faces
  face-trainer train --dataset /data/faces --name "John Doe"  # one subject for all images`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().String("dataset", "", "Dataset root folder (overrides DATASET_PATH)")
	trainCmd.Flags().Int64("max-request-size", 0, "Request size budget in bytes (overrides MAX_REQUEST_SIZE)")
	trainCmd.Flags().String("name", "", "Subject name for all images (overrides the folder names)")
}

func runTrain(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDatasetFlags(cmd, cfg)

	client, err := compreface.New(cfg.CompreFace.URL, cfg.CompreFace.APIKey, logger)
	if err != nil {
		return err
	}

	result, err := runPipeline(cfg, logger, func(ctx context.Context, opts pipeline.Options, events chan<- faces.Report) (faces.Result, error) {
		return pipeline.Train(ctx, opts, client, events)
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	fmt.Println(result.String())
	return nil
}
