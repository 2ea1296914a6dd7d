package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/texcare/storefront/internal/logging"
	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/shopify"
)

// Service serves the product catalog. The remote Admin API is the source of
// truth; the last successful listing is cached, and the static fallback list
// is used when neither is available.
type Service struct {
	Shopify *shopify.Client

	mu     sync.RWMutex
	cached []models.Product
}

func NewService(client *shopify.Client) *Service {
	return &Service{Shopify: client}
}

// List never fails: remote catalog, then last cached listing, then fallback.
func (s *Service) List(ctx context.Context) []models.Product {
	if err := s.Refresh(ctx); err != nil {
		logging.FromContext(ctx).Warn("catalog refresh failed, serving cached data", "error", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.cached) > 0 {
		out := make([]models.Product, len(s.cached))
		copy(out, s.cached)
		return out
	}
	return Fallback()
}

func (s *Service) BySKU(ctx context.Context, sku string) (models.Product, bool) {
	for _, p := range s.List(ctx) {
		if strings.EqualFold(strings.TrimSpace(p.SKU), strings.TrimSpace(sku)) {
			return p, true
		}
	}
	return models.Product{}, false
}

// Refresh re-reads the full catalog from the Admin API and replaces the cache.
func (s *Service) Refresh(ctx context.Context) error {
	remote, err := s.Shopify.ListProducts(ctx, "")
	if err != nil {
		return err
	}

	products := make([]models.Product, 0, len(remote))
	for _, p := range remote {
		products = append(products, FromAdminProduct(p))
	}

	s.mu.Lock()
	s.cached = products
	s.mu.Unlock()
	return nil
}
