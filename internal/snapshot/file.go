package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/models"
)

// FileStore persists the collection as a single JSON document on disk.
// This is the default backend.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed snapshot store at path.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads the snapshot file. A missing file or unparseable content
// yields an empty collection, not an error.
func (s *FileStore) Load(_ context.Context) ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("snapshot_invalid_starting_empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return []models.Task{}, nil
	}
	return decodeRecords(records), nil
}

// Save writes the snapshot file, creating parent directories as needed.
func (s *FileStore) Save(_ context.Context, tasks []models.Task) error {
	data, err := json.MarshalIndent(encodeRecords(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
