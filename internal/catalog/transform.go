package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/shopify"
)

const (
	defaultRating    = 4.8
	placeholderImage = "/images/product-placeholder.png"
)

// FromAdminProduct flattens the Admin API product into the storefront shape.
// Pure and deterministic: missing optional data degrades to defaults instead
// of failing.
func FromAdminProduct(p shopify.AdminProduct) models.Product {
	out := models.Product{
		ID:          p.ID,
		Name:        p.Title,
		Description: p.Description,
		Rating:      defaultRating,
		Image:       placeholderImage,
	}

	price, compareAt := variantPrices(p)
	out.Price = price
	// price > 0 guards against an unparsable or free price turning compareAt
	// into a 100% discount.
	if price > 0 && compareAt > price {
		orig := compareAt
		out.OriginalPrice = &orig
		discount := int(math.Round((compareAt - price) / compareAt * 100))
		out.Discount = &discount
	}

	if len(p.Variants.Nodes) > 0 {
		out.SKU = p.Variants.Nodes[0].SKU
	}

	fields := metafieldMap(p.Metafields.Nodes)
	if v, ok := fields["rating"]; ok {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			out.Rating = r
		}
	}
	if v, ok := fields["review_count"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			out.ReviewCount = n
		}
	}
	out.Volume = fields["volume"]
	out.Application = fields["application"]

	out.Category = models.CategoryB2C
	if strings.EqualFold(p.ProductType, string(models.CategoryB2B)) ||
		strings.EqualFold(fields["category"], string(models.CategoryB2B)) {
		out.Category = models.CategoryB2B
	}

	gallery := make([]string, 0, len(p.Media.Nodes))
	for _, m := range p.Media.Nodes {
		if m.Image != nil && m.Image.URL != "" {
			gallery = append(gallery, m.Image.URL)
		}
	}
	if len(gallery) > 0 {
		out.Image = gallery[0]
		out.Gallery = gallery
	}

	out.DetailsURL = detailsURL(out.Category, p.Handle)
	return out
}

func variantPrices(p shopify.AdminProduct) (price, compareAt float64) {
	if len(p.Variants.Nodes) > 0 {
		v := p.Variants.Nodes[0]
		price, _ = strconv.ParseFloat(v.Price, 64)
		compareAt, _ = strconv.ParseFloat(v.CompareAtPrice, 64)
	}
	if price == 0 {
		price, _ = strconv.ParseFloat(p.PriceRangeV2.MinVariantPrice.Amount, 64)
	}
	return price, compareAt
}

func metafieldMap(fields []shopify.Metafield) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}

func detailsURL(cat models.Category, handle string) string {
	if cat == models.CategoryB2B {
		return "/products/professional/" + handle
	}
	return "/products/home/" + handle
}
