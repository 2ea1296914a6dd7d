package shopify

import "encoding/json"

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type UserError struct {
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Storefront API shapes. Only the fields this application consumes are
// declared; everything else the platform returns is ignored at decode time.

type ProductRef struct {
	Title         string `json:"title"`
	FeaturedImage *Image `json:"featuredImage"`
}

type Variant struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	SKU     string     `json:"sku"`
	Price   MoneyV2    `json:"price"`
	Image   *Image     `json:"image"`
	Product ProductRef `json:"product"`
}

type SearchProduct struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Variants struct {
		Nodes []Variant `json:"nodes"`
	} `json:"variants"`
}

type CartLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Cost     struct {
		TotalAmount MoneyV2 `json:"totalAmount"`
	} `json:"cost"`
	Merchandise Variant `json:"merchandise"`
}

type Cart struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
	Cost          struct {
		SubtotalAmount MoneyV2 `json:"subtotalAmount"`
	} `json:"cost"`
	Lines struct {
		Nodes []CartLine `json:"nodes"`
	} `json:"lines"`
}

// Admin API shapes.

type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type AdminVariant struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	SKU            string `json:"sku"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compareAtPrice"`
}

type AdminMedia struct {
	MediaContentType string `json:"mediaContentType"`
	Image            *Image `json:"image"`
}

type AdminProduct struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Handle       string `json:"handle"`
	Description  string `json:"description"`
	ProductType  string `json:"productType"`
	PriceRangeV2 struct {
		MinVariantPrice MoneyV2 `json:"minVariantPrice"`
	} `json:"priceRangeV2"`
	Variants struct {
		Nodes []AdminVariant `json:"nodes"`
	} `json:"variants"`
	Media struct {
		Nodes []AdminMedia `json:"nodes"`
	} `json:"media"`
	Metafields struct {
		Nodes []Metafield `json:"nodes"`
	} `json:"metafields"`
}
