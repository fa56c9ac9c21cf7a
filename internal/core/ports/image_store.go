package ports

import (
	"context"
	"io"
)

// ImageStore persists an uploaded image and returns its public URL.
// Implementations: local disk (served statically) and S3.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}
