package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileStore implements Storage with one file per slot under a
// directory. This is the default backend: like the browser storage it
// replaces, it is durable across restarts without any external service.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed slot store rooted at dir. The
// directory is created if it does not exist.
func NewFileStore(dir string, logger zerolog.Logger) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("component", "file-storage").Logger(),
	}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read slot")
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, nil
}

func (s *fileStore) Set(_ context.Context, key string, value []byte) error {
	// Write-then-rename keeps a crash mid-write from corrupting the slot.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write slot")
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to replace slot")
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete slot")
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
