package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/shopify"
)

func adminProduct() shopify.AdminProduct {
	var p shopify.AdminProduct
	p.ID = "gid://shopify/Product/10"
	p.Title = "TexCare Home 500 ml"
	p.Handle = "texcare-home"
	p.Description = "Fabric-care concentrate"
	p.ProductType = "B2C"
	p.Variants.Nodes = []shopify.AdminVariant{
		{ID: "gid://shopify/ProductVariant/1", SKU: "TC-HOME-500", Price: "800", CompareAtPrice: "1000"},
	}
	p.Media.Nodes = []shopify.AdminMedia{
		{MediaContentType: "IMAGE", Image: &shopify.Image{URL: "https://cdn.example.com/front.png"}},
		{MediaContentType: "IMAGE", Image: &shopify.Image{URL: "https://cdn.example.com/back.png"}},
	}
	return p
}

func TestDiscountComputation(t *testing.T) {
	p := adminProduct()

	out := FromAdminProduct(p)
	require.Equal(t, 800.0, out.Price)
	require.NotNil(t, out.OriginalPrice)
	require.Equal(t, 1000.0, *out.OriginalPrice)
	require.NotNil(t, out.Discount)
	require.Equal(t, 20, *out.Discount)
}

func TestNoCompareAtPriceMeansNoDiscount(t *testing.T) {
	p := adminProduct()
	p.Variants.Nodes[0].CompareAtPrice = ""

	out := FromAdminProduct(p)
	require.Nil(t, out.OriginalPrice)
	require.Nil(t, out.Discount)
}

func TestCompareAtBelowPriceMeansNoDiscount(t *testing.T) {
	p := adminProduct()
	p.Variants.Nodes[0].CompareAtPrice = "700"

	out := FromAdminProduct(p)
	require.Nil(t, out.Discount)
}

func TestZeroPriceNeverDiscounts(t *testing.T) {
	p := adminProduct()
	p.Variants.Nodes[0].Price = "0"
	p.Variants.Nodes[0].CompareAtPrice = "1000"

	out := FromAdminProduct(p)
	require.Equal(t, 0.0, out.Price)
	require.Nil(t, out.OriginalPrice)
	require.Nil(t, out.Discount)

	p.Variants.Nodes[0].Price = "not-a-number"
	out = FromAdminProduct(p)
	require.Equal(t, 0.0, out.Price)
	require.Nil(t, out.Discount)
}

func TestPriceFallsBackToMinVariantPrice(t *testing.T) {
	p := adminProduct()
	p.Variants.Nodes = nil
	p.PriceRangeV2.MinVariantPrice.Amount = "14.90"

	out := FromAdminProduct(p)
	require.Equal(t, 14.90, out.Price)
	require.Empty(t, out.SKU)
}

func TestRatingDefaults(t *testing.T) {
	out := FromAdminProduct(adminProduct())
	require.Equal(t, defaultRating, out.Rating)
	require.Equal(t, 0, out.ReviewCount)
}

func TestRatingFromMetafields(t *testing.T) {
	p := adminProduct()
	p.Metafields.Nodes = []shopify.Metafield{
		{Namespace: "custom", Key: "rating", Value: "4.2"},
		{Namespace: "custom", Key: "review_count", Value: "57"},
		{Namespace: "custom", Key: "volume", Value: "500 ml"},
		{Namespace: "custom", Key: "application", Value: "Household laundry"},
	}

	out := FromAdminProduct(p)
	require.Equal(t, 4.2, out.Rating)
	require.Equal(t, 57, out.ReviewCount)
	require.Equal(t, "500 ml", out.Volume)
	require.Equal(t, "Household laundry", out.Application)
}

func TestCategoryClassification(t *testing.T) {
	p := adminProduct()
	require.Equal(t, models.CategoryB2C, FromAdminProduct(p).Category)

	p.ProductType = "B2B"
	require.Equal(t, models.CategoryB2B, FromAdminProduct(p).Category)

	p.ProductType = "Cleaning"
	p.Metafields.Nodes = []shopify.Metafield{{Namespace: "custom", Key: "category", Value: "b2b"}}
	require.Equal(t, models.CategoryB2B, FromAdminProduct(p).Category)
}

func TestDetailsURLByCategory(t *testing.T) {
	p := adminProduct()
	require.Equal(t, "/products/home/texcare-home", FromAdminProduct(p).DetailsURL)

	p.ProductType = "B2B"
	require.Equal(t, "/products/professional/texcare-home", FromAdminProduct(p).DetailsURL)
}

func TestImageFallback(t *testing.T) {
	p := adminProduct()
	out := FromAdminProduct(p)
	require.Equal(t, "https://cdn.example.com/front.png", out.Image)
	require.Len(t, out.Gallery, 2)

	p.Media.Nodes = nil
	out = FromAdminProduct(p)
	require.Equal(t, placeholderImage, out.Image)
	require.Empty(t, out.Gallery)
}
