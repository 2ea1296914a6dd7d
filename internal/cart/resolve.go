package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/texcare/storefront/internal/logging"
)

// ResolveVariant maps a human-readable SKU to the platform's opaque variant
// id. The search index does not return SKU matches for a single query shape
// reliably, so four shapes are tried in increasing order of looseness; the
// first variant whose SKU matches (case-insensitive, trimmed) wins.
func (s *Service) ResolveVariant(ctx context.Context, sku string) (string, error) {
	want := strings.TrimSpace(sku)
	queries := []string{
		fmt.Sprintf("%q", want),
		fmt.Sprintf("variants.sku:%s", want),
		fmt.Sprintf("sku:%s", want),
		want,
	}

	for _, q := range queries {
		products, err := s.Shopify.SearchProducts(ctx, q)
		if err != nil {
			logging.FromContext(ctx).Warn("sku search query failed", "query", q, "error", err)
			continue
		}
		for _, p := range products {
			for _, v := range p.Variants.Nodes {
				if strings.EqualFold(strings.TrimSpace(v.SKU), want) {
					return v.ID, nil
				}
			}
		}
	}
	return "", fmt.Errorf("%w: sku %q", ErrVariantNotFound, sku)
}
