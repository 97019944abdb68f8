// Package local stores rendered invoice documents on the local filesystem.
// Used in development and in deployments without object storage.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
)

type store struct {
	dir string
}

// NewStore creates a filesystem-backed ArtifactStore rooted at dir. The
// directory is created on first use.
func NewStore(dir string) port.ArtifactStore {
	return &store{dir: dir}
}

func (s *store) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating artifact dir: %v", domain.ErrArtifactStore, err)
	}

	// name is always a single path segment; reject anything that escapes it
	if filepath.Base(name) != name {
		return "", fmt.Errorf("%w: invalid artifact name %q", domain.ErrArtifactStore, name)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing artifact: %v", domain.ErrArtifactStore, err)
	}
	return path, nil
}

// PresignedURL returns the filesystem path; local storage has no URL scheme.
func (s *store) PresignedURL(_ context.Context, name string, _ int64) (string, error) {
	return filepath.Join(s.dir, name), nil
}
