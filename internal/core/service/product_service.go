package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
	"github.com/threadmarket/marketplace-api/internal/core/ports"
)

// CatalogCache abstracts the read-through cache over catalog listings.
// A nil-tolerant contract: lookups that miss or fail return ok=false and the
// service falls back to the repository.
type CatalogCache interface {
	GetProducts(ctx context.Context, key string) ([]domain.Product, bool)
	SetProducts(ctx context.Context, key string, products []domain.Product)
	Invalidate(ctx context.Context, keys ...string)
}

const (
	cacheKeyAll      = "catalog:all"
	cacheKeyCategory = "catalog:category:"
)

// ProductService implements the catalog use cases.
type ProductService struct {
	repo   ports.ProductRepository
	photos ports.PhotoStore
	cache  CatalogCache
	log    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, photos ports.PhotoStore, cache CatalogCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, photos: photos, cache: cache, log: log}
}

// Create persists the uploaded photos first, then the product document.
// A storage failure aborts the whole operation; photos already written are
// left behind for the next cleanup sweep rather than rolled back.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	paths := make([]string, 0, len(input.Photos))
	for _, photo := range input.Photos {
		path, err := s.photos.Save(ctx, photo.Filename, photo.Content)
		if err != nil {
			s.log.Error().Err(err).Str("filename", photo.Filename).Msg("failed to store photo")
			return nil, fmt.Errorf("store photo %q: %w", photo.Filename, err)
		}
		paths = append(paths, path)
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Colors:      input.Colors,
		Materials:   input.Materials,
		Sizes:       input.Sizes,
		Photos:      paths,
		SellerID:    input.SellerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeyAll, cacheKeyCategory+created.Category)

	s.log.Info().
		Str("product_id", created.ID).
		Str("category", created.Category).
		Str("seller_id", created.SellerID).
		Int("photos", len(paths)).
		Msg("product created")

	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns the whole catalog, served from cache when warm.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if products, ok := s.cache.GetProducts(ctx, cacheKeyAll); ok {
		return products, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetProducts(ctx, cacheKeyAll, products)
	return products, nil
}

// ListByCategory returns the catalog entries for one category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	key := cacheKeyCategory + category
	if products, ok := s.cache.GetProducts(ctx, key); ok {
		return products, nil
	}

	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.SetProducts(ctx, key, products)
	return products, nil
}
