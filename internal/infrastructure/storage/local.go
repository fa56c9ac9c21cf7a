package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStore writes uploads to a directory served statically by the
// HTTP layer. The default backend when S3 is not configured.
type LocalImageStore struct {
	dir     string
	baseURL string
}

// NewLocalImageStore creates the upload directory if needed.
func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir, baseURL: baseURL}, nil
}

// Dir returns the directory uploads are written to, for the static route.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

func (s *LocalImageStore) Save(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	name := objectName(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// objectName derives a collision-free name for the stored object, keeping
// the original extension (falling back to .bin).
func objectName(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	return uuid.NewString() + ext
}
