package ports

import (
	"context"
	"io"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

// PhotoUpload is a single uploaded image, streamed from the multipart body.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput carries all data needed to create a catalog entry.
// SellerID comes from the verified token claims, never from the request body.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Colors      []string
	Materials   string
	Sizes       string
	SellerID    string
	Photos      []PhotoUpload
}

// ProductService defines the catalog use cases.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
