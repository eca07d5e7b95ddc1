package ports

import (
	"context"
	"io"
)

// PhotoStore persists uploaded product photos and returns the stored path
// recorded on the product document.
type PhotoStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
