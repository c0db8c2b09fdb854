// Package media implements a local-disk media store. Files land under a
// configured directory and are served under a configured base URL; the
// rest of the system treats the returned URLs as opaque.
package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/config"
)

// DiskStore writes uploads to a local directory.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the upload directory if missing and returns a store.
func NewDiskStore(cfg config.MediaConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create dir %q: %w", cfg.Dir, err)
	}
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Store writes the bytes under a collision-free name and returns the
// public URL. The original extension is kept; the rest of the name is
// replaced to avoid path tricks in user-supplied file names.
func (s *DiskStore) Store(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := uuid.New().String() + sanitizeExt(name)
	dst := filepath.Join(s.dir, stored)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("media: write %q: %w", stored, err)
	}

	return s.baseURL + "/" + stored, nil
}

// sanitizeExt keeps only a plain extension from the uploaded name.
func sanitizeExt(name string) string {
	ext := strings.ToLower(path.Ext(path.Base(name)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
