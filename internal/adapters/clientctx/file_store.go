// Package clientctx implements the client context store port over a
// directory of per-client YAML files. A missing record is reported as
// core.ErrContextNotFound, which callers treat as a handled state.
package clientctx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/outboundhq/campaign-validator/internal/core"
)

// FileStore reads client context records from <dir>/<clientID>.yaml
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file-backed client context store
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// LoadContext returns the context record for a client id. An empty id or a
// missing file yields core.ErrContextNotFound.
func (s *FileStore) LoadContext(ctx context.Context, clientID string) (*core.ClientContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(clientID) == "" {
		return nil, core.ErrContextNotFound
	}

	// Client ids come from the request; keep the lookup inside the store dir.
	name := filepath.Base(clientID) + ".yaml"
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.ErrContextNotFound
		}
		return nil, fmt.Errorf("failed to read client context %s: %w", path, err)
	}

	var record core.ClientContext
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse client context %s: %w", path, err)
	}
	if record.ClientID == "" {
		record.ClientID = clientID
	}

	s.logger.Debug("loaded client context",
		zap.String("client_id", clientID),
		zap.String("path", path))

	return &record, nil
}
