package catalog

import (
	"context"
	"fmt"

	"github.com/barista-preorder/internal/domain"
	genaiinfra "github.com/barista-preorder/internal/infrastructure/genai"
	"github.com/rs/zerolog"
)

// Catalog is the product store the service reads from and caches image URLs into.
type Catalog interface {
	List() []domain.Product
	Get(id string) (domain.Product, bool)
	SetImageURL(id, url string) bool
}

type Service interface {
	List(ctx context.Context) []domain.Product
	// ResolveImage returns the product's image URL, generating and caching
	// one on first request when the product has no curated image.
	ResolveImage(ctx context.Context, productID string) (string, error)
}

type service struct {
	catalog Catalog
	images  genaiinfra.ImageGenerator // nil when no API key is configured
	log     *zerolog.Logger
}

func NewService(catalog Catalog, images genaiinfra.ImageGenerator, log *zerolog.Logger) Service {
	return &service{catalog: catalog, images: images, log: log}
}

func (s *service) List(ctx context.Context) []domain.Product {
	return s.catalog.List()
}

func (s *service) ResolveImage(ctx context.Context, productID string) (string, error) {
	p, ok := s.catalog.Get(productID)
	if !ok {
		return "", fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	if p.ImageURL != "" {
		return p.ImageURL, nil
	}
	if s.images == nil {
		return genaiinfra.PlaceholderImageURL, nil
	}

	url, err := s.images.GenerateProductImage(ctx, p.Name)
	if err != nil {
		// Catalogue reads must not depend on provider availability.
		s.log.Warn().Err(err).Str("product_id", productID).Msg("image generation failed")
		return genaiinfra.PlaceholderImageURL, nil
	}
	s.catalog.SetImageURL(productID, url)
	return url, nil
}
