// Package config loads application configuration from an optional YAML file
// and SPELLSLINGER_* environment variables, in that order of precedence over
// the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"spellslinger-go/domain/stroke"
	"spellslinger-go/infrastructure/classifier"
	"spellslinger-go/infrastructure/logging"
	"spellslinger-go/infrastructure/repository"
)

// Config is the complete application configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Labels     LabelsConfig     `yaml:"labels"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Log        LogConfig        `yaml:"log"`
}

// DatasetConfig locates the directory-per-class sample tree.
type DatasetConfig struct {
	Dir string `yaml:"dir" env:"SPELLSLINGER_DATASET_DIR"`
}

// CanvasConfig fixes the drawing geometry for the whole run.
type CanvasConfig struct {
	Size        int     `yaml:"size" env:"SPELLSLINGER_CANVAS_SIZE"`
	StrokeWidth float64 `yaml:"stroke_width" env:"SPELLSLINGER_STROKE_WIDTH"`
	PreviewSize int     `yaml:"preview_size" env:"SPELLSLINGER_PREVIEW_SIZE"`
}

// LabelsConfig optionally replaces the embedded label enumeration.
type LabelsConfig struct {
	File string `yaml:"file" env:"SPELLSLINGER_LABELS_FILE"`
}

// ClassifierConfig locates the trained model artifact.
type ClassifierConfig struct {
	ModelPath string `yaml:"model_path" env:"SPELLSLINGER_MODEL_PATH"`
}

// LedgerConfig controls the optional MongoDB contribution ledger.
type LedgerConfig struct {
	Enabled        bool          `yaml:"enabled" env:"SPELLSLINGER_LEDGER_ENABLED"`
	MongoURI       string        `yaml:"mongo_uri" env:"SPELLSLINGER_LEDGER_MONGO_URI"`
	Database       string        `yaml:"database" env:"SPELLSLINGER_LEDGER_DATABASE"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"SPELLSLINGER_LEDGER_CONNECT_TIMEOUT"`
}

// LogConfig controls log verbosity and location.
type LogConfig struct {
	Level string `yaml:"level" env:"SPELLSLINGER_LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"SPELLSLINGER_LOG_DIR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	canvas := stroke.DefaultConfig()
	mongo := repository.DefaultMongoDBConfig()

	return &Config{
		Dataset: DatasetConfig{Dir: "dataset"},
		Canvas: CanvasConfig{
			Size:        canvas.Size,
			StrokeWidth: canvas.Width,
			PreviewSize: 140,
		},
		Classifier: ClassifierConfig{ModelPath: classifier.DefaultConfig().ModelPath},
		Ledger: LedgerConfig{
			MongoURI:       mongo.URI,
			Database:       mongo.Database,
			ConnectTimeout: mongo.ConnectTimeout,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the tool cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Dataset.Dir == "" {
		errs = append(errs, errors.New("dataset.dir must not be empty"))
	}
	if c.Canvas.Size <= 0 {
		errs = append(errs, fmt.Errorf("canvas.size must be positive, got %d", c.Canvas.Size))
	}
	if c.Canvas.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("canvas.stroke_width must be positive, got %v", c.Canvas.StrokeWidth))
	}
	if c.Canvas.PreviewSize <= 0 {
		errs = append(errs, fmt.Errorf("canvas.preview_size must be positive, got %d", c.Canvas.PreviewSize))
	}
	if c.Ledger.Enabled && c.Ledger.MongoURI == "" {
		errs = append(errs, errors.New("ledger.mongo_uri is required when the ledger is enabled"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// StrokeConfig returns the canvas geometry.
func (c *Config) StrokeConfig() *stroke.Config {
	return &stroke.Config{
		Size:  c.Canvas.Size,
		Width: c.Canvas.StrokeWidth,
	}
}

// ClassifierConfig returns the classifier settings.
func (c *Config) ClassifierConfig() *classifier.Config {
	return &classifier.Config{ModelPath: c.Classifier.ModelPath}
}

// MongoDBConfig returns the ledger connection settings.
func (c *Config) MongoDBConfig() *repository.MongoDBConfig {
	mongo := repository.DefaultMongoDBConfig()
	mongo.URI = c.Ledger.MongoURI
	mongo.Database = c.Ledger.Database
	if c.Ledger.ConnectTimeout > 0 {
		mongo.ConnectTimeout = c.Ledger.ConnectTimeout
	}
	return mongo
}

// LoggingConfig returns the logging settings. Validate has already
// checked the level string.
func (c *Config) LoggingConfig() *logging.Config {
	logCfg := logging.DefaultConfig()
	logCfg.Level, _ = logging.ParseLevel(c.Log.Level)
	logCfg.Dir = c.Log.Dir
	return logCfg
}
