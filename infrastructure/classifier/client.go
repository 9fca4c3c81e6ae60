// Package classifier provides access to the trained rune classifier artifact.
//
// Inference is not wired into this tool: the trained model is produced by the
// offline trainer and no in-process runtime loads it. Open therefore always
// yields a client that reports itself unavailable, with a reason the UI can
// show when the operator picks identify mode.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
)

// ErrUnavailable is returned by every classification attempt when no usable
// classifier is loaded.
var ErrUnavailable = errors.New("rune classifier unavailable")

// Client classifies drawn runes.
type Client interface {
	// Classify predicts the label key of a drawing.
	Classify(ctx context.Context, img image.Image) (*Prediction, error)

	// IsAvailable returns true if Classify can succeed.
	IsAvailable() bool

	// Err explains why the client is unavailable; nil when available.
	Err() error
}

// Prediction is the classifier output for one drawing.
type Prediction struct {
	Key        int
	Confidence float64
}

// Config contains configuration for the classifier.
type Config struct {
	// ModelPath is the serialized model written by the offline trainer.
	ModelPath string
}

// DefaultConfig returns default classifier configuration.
func DefaultConfig() *Config {
	return &Config{
		ModelPath: "model/rune_classifier.h5",
	}
}

// Open checks the model artifact and returns a client for it.
func Open(cfg *Config, logger *slog.Logger) Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(cfg.ModelPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = fmt.Errorf("%w: model %s not found", ErrUnavailable, cfg.ModelPath)
	case err != nil:
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	case info.IsDir():
		err = fmt.Errorf("%w: model path %s is a directory", ErrUnavailable, cfg.ModelPath)
	default:
		err = fmt.Errorf("%w: no inference runtime for %s", ErrUnavailable, cfg.ModelPath)
	}

	logger.Info("Classifier disabled", "model", cfg.ModelPath, "reason", err)
	return NewUnavailableClient(err)
}

// UnavailableClient rejects every classification.
type UnavailableClient struct {
	reason error
}

// NewUnavailableClient creates a client that always fails with reason.
// A nil reason falls back to ErrUnavailable.
func NewUnavailableClient(reason error) *UnavailableClient {
	if reason == nil {
		reason = ErrUnavailable
	}
	return &UnavailableClient{reason: reason}
}

func (c *UnavailableClient) Classify(ctx context.Context, img image.Image) (*Prediction, error) {
	return nil, c.reason
}

func (c *UnavailableClient) IsAvailable() bool {
	return false
}

func (c *UnavailableClient) Err() error {
	return c.reason
}

var _ Client = (*UnavailableClient)(nil)
