// Package practices implements the best-practices store port over a YAML
// file on disk. Absence of the file is a valid state the caller recovers
// from with the built-in default guides.
package practices

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// FileStore reads the guide set from a single YAML file
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed best-practices store
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

type guideFile struct {
	Guides []core.BestPracticeGuide `yaml:"guides"`
}

// LoadGuides reads and parses the guide file. Any read or parse failure is
// returned as an error; the caller decides whether to fall back.
func (s *FileStore) LoadGuides(ctx context.Context) ([]core.BestPracticeGuide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read best-practices file %s: %w", s.path, err)
	}

	var parsed guideFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse best-practices file %s: %w", s.path, err)
	}
	if len(parsed.Guides) == 0 {
		return nil, fmt.Errorf("best-practices file %s contains no guides", s.path)
	}

	s.logger.Debug("loaded best-practices guides",
		zap.String("path", s.path),
		zap.Int("count", len(parsed.Guides)))

	return parsed.Guides, nil
}
