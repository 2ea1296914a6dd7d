package shopify

import (
	"context"
	"fmt"
)

const adminProductsQuery = `
query listProducts($first: Int!, $after: String, $query: String) {
  products(first: $first, after: $after, query: $query) {
    nodes {
      id
      title
      handle
      description
      productType
      priceRangeV2 { minVariantPrice { amount currencyCode } }
      variants(first: 10) { nodes { id title sku price compareAtPrice } }
      media(first: 10) { nodes { mediaContentType image { url altText } } }
      metafields(first: 20) { nodes { namespace key value } }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const adminPageSize = 50

// ListProducts pages through the Admin API catalog. productType narrows the
// listing when non-empty; an empty value lists the whole catalog.
func (c *Client) ListProducts(ctx context.Context, productType string) ([]AdminProduct, error) {
	vars := map[string]any{"first": adminPageSize}
	if productType != "" {
		vars["query"] = fmt.Sprintf("product_type:%s", productType)
	}

	var all []AdminProduct
	for {
		var data struct {
			Products struct {
				Nodes    []AdminProduct `json:"nodes"`
				PageInfo PageInfo       `json:"pageInfo"`
			} `json:"products"`
		}
		if err := c.admin(ctx, adminProductsQuery, vars, &data); err != nil {
			return nil, err
		}
		all = append(all, data.Products.Nodes...)
		if !data.Products.PageInfo.HasNextPage {
			return all, nil
		}
		vars["after"] = data.Products.PageInfo.EndCursor
	}
}
