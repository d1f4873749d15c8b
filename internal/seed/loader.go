package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader reads a seed catalog document from some source.
type Loader interface {
	// Load reads and parses the seed document at the given path or key.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// fileLoader implements Loader for local JSON seed files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed catalog")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse seed file")
		return nil, fmt.Errorf("seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(catalog.Products)).
		Int("users", len(catalog.Users)).
		Msg("seed catalog loaded")

	return catalog, nil
}
