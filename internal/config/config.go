package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	CompreFace CompreFaceConfig `yaml:"compreface"`
	Errors     ErrorConfig      `yaml:"errors"`
}

type DatasetConfig struct {
	Path string `yaml:"path"`

	// MaxRequestSize is the byte budget per request to the face service.
	// The service is called when the accumulated file sizes would exceed
	// this budget. Defaults to 10 MB.
	MaxRequestSize int64 `yaml:"max_request_size"`

	// OverrideName, when set, is used as the subject for all scanned
	// faces instead of the per-image folder name.
	OverrideName string `yaml:"override_name"`
}

type CompreFaceConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

type ErrorConfig struct {
	// OutputDir is where failed and missed files are placed when the
	// error behavior is copy or move.
	OutputDir string `yaml:"output_dir"`

	// Behavior is one of ignore, copy or move.
	Behavior string `yaml:"behavior"`

	// Strategy is one of keep-as-is, max-similarity or above-threshold.
	Strategy string `yaml:"strategy"`

	// AboveThreshold is the similarity cutoff for the above-threshold
	// strategy.
	AboveThreshold float64 `yaml:"above_threshold"`
}

// envInt64 reads an environment variable and parses it as a positive
// integer. Returns the default value if the env var is unset, empty, or
// invalid.
func envInt64(key string, defaultVal int64) int64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable as a float64, falling back to the
// default on unset or invalid values.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return defaultVal
}

// envDefault reads an environment variable, falling back to the default
// when unset.
func envDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:           os.Getenv("DATASET_PATH"),
			MaxRequestSize: envInt64("MAX_REQUEST_SIZE", 10485760),
			OverrideName:   os.Getenv("OVERRIDE_TRAINED_NAME"),
		},
		CompreFace: CompreFaceConfig{
			URL:    envDefault("COMPREFACE_URL", "http://localhost:8080"),
			APIKey: os.Getenv("COMPREFACE_API_KEY"),
		},
		Errors: ErrorConfig{
			OutputDir:      os.Getenv("OUTPUT_DIR"),
			Behavior:       envDefault("ERROR_BEHAVIOR", "ignore"),
			Strategy:       envDefault("POST_RECOGNIZE_STRATEGY", "max-similarity"),
			AboveThreshold: envFloat("ABOVE_THRESHOLD", 0.95),
		},
	}
}

// ApplyFile overlays values from a YAML config file on top of c. Only keys
// present in the file are overridden.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return nil
}
