// Package storage persists uploaded product photos on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

// DiskStore writes photos under a single uploads directory. Stored names are
// random, so two uploads of the same file never collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save sniffs the content type, rejects anything that is not an image, and
// writes the photo as photos-<uuid><ext>. The returned path is what gets
// recorded on the product and served at /uploads.
func (s *DiskStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", filename, err)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", domain.ErrUnsupportedPhotoType
	}

	name := "photos-" + uuid.NewString() + mt.Extension()
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %q: %w", name, err)
	}

	return filepath.ToSlash(path), nil
}
