package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading a catalogue dataset from a
// JSON file on disk.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a file-based catalogue loader.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads and parses the dataset file.
func (l *fileLoader) Load(ctx context.Context) (*model.Dataset, error) {
	l.logger.Info().Str("file", l.path).Msg("loading catalogue file")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", l.path, err)
	}

	var dataset model.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", l.path, err)
	}

	l.logger.Info().
		Str("file", l.path).
		Int("products", len(dataset.Products)).
		Int("collections", len(dataset.Collections)).
		Msg("catalogue file loaded successfully")

	return &dataset, nil
}
