package shopify

import "context"

const cartFields = `
id
checkoutUrl
totalQuantity
cost { subtotalAmount { amount currencyCode } }
lines(first: 50) {
  nodes {
    id
    quantity
    cost { totalAmount { amount currencyCode } }
    merchandise {
      ... on ProductVariant {
        id
        title
        sku
        price { amount currencyCode }
        image { url altText }
        product { title featuredImage { url altText } }
      }
    }
  }
}`

const searchProductsQuery = `
query searchProducts($query: String!) {
  products(first: 20, query: $query) {
    nodes {
      id
      title
      variants(first: 50) {
        nodes {
          id
          title
          sku
          price { amount currencyCode }
          image { url altText }
          product { title featuredImage { url altText } }
        }
      }
    }
  }
}`

const cartCreateMutation = `
mutation cartCreate {
  cartCreate {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesAddMutation = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesUpdateMutation = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesRemoveMutation = `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartQuery = `
query getCart($cartId: ID!) {
  cart(id: $cartId) {` + cartFields + `}
}`

type cartPayload struct {
	Cart       *Cart       `json:"cart"`
	UserErrors []UserError `json:"userErrors"`
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]SearchProduct, error) {
	var data struct {
		Products struct {
			Nodes []SearchProduct `json:"nodes"`
		} `json:"products"`
	}
	if err := c.storefront(ctx, searchProductsQuery, map[string]any{"query": query}, &data); err != nil {
		return nil, err
	}
	return data.Products.Nodes, nil
}

func (c *Client) CartCreate(ctx context.Context) (*Cart, error) {
	var data struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.storefront(ctx, cartCreateMutation, nil, &data); err != nil {
		return nil, err
	}
	if err := wrapUserErrors("cartCreate", data.CartCreate.UserErrors); err != nil {
		return nil, err
	}
	return data.CartCreate.Cart, nil
}

func (c *Client) CartLinesAdd(ctx context.Context, cartID, merchandiseID string, quantity int) (*Cart, error) {
	vars := map[string]any{
		"cartId": cartID,
		"lines":  []map[string]any{{"merchandiseId": merchandiseID, "quantity": quantity}},
	}
	var data struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	if err := c.storefront(ctx, cartLinesAddMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := wrapUserErrors("cartLinesAdd", data.CartLinesAdd.UserErrors); err != nil {
		return nil, err
	}
	if data.CartLinesAdd.Cart == nil {
		return nil, ErrCartNotFound
	}
	return data.CartLinesAdd.Cart, nil
}

func (c *Client) CartLinesUpdate(ctx context.Context, cartID, lineID string, quantity int) (*Cart, error) {
	vars := map[string]any{
		"cartId": cartID,
		"lines":  []map[string]any{{"id": lineID, "quantity": quantity}},
	}
	var data struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	if err := c.storefront(ctx, cartLinesUpdateMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := wrapUserErrors("cartLinesUpdate", data.CartLinesUpdate.UserErrors); err != nil {
		return nil, err
	}
	if data.CartLinesUpdate.Cart == nil {
		return nil, ErrCartNotFound
	}
	return data.CartLinesUpdate.Cart, nil
}

func (c *Client) CartLinesRemove(ctx context.Context, cartID string, lineIDs []string) (*Cart, error) {
	vars := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	var data struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	if err := c.storefront(ctx, cartLinesRemoveMutation, vars, &data); err != nil {
		return nil, err
	}
	if err := wrapUserErrors("cartLinesRemove", data.CartLinesRemove.UserErrors); err != nil {
		return nil, err
	}
	if data.CartLinesRemove.Cart == nil {
		return nil, ErrCartNotFound
	}
	return data.CartLinesRemove.Cart, nil
}

// GetCart returns ErrCartNotFound when the platform reports the id as gone,
// which it does by returning a null cart rather than an error.
func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	var data struct {
		Cart *Cart `json:"cart"`
	}
	if err := c.storefront(ctx, cartQuery, map[string]any{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, ErrCartNotFound
	}
	return data.Cart, nil
}
