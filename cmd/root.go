package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/face-trainer/internal/config"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "face-trainer",
	Short: "Train and verify a CompreFace model from a folder of labeled face images",
	Long: `Face Trainer walks a dataset of face images organized as one folder per
subject, batches each subject's files under a request size budget and sends
them to a CompreFace server for training or recognition. After a recognition
run, failed and missed files can be copied or moved into per-subject output
folders based on the returned similarity scores.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file overriding environment values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// newLogger builds the run logger. Every entry carries a run id so logs
// from overlapping runs can be told apart.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run_id", uuid.New().String())
}

// loadConfig reads the environment configuration and overlays the optional
// --config file.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if configFile != "" {
		if err := cfg.ApplyFile(configFile); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
