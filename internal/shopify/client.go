package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/texcare/storefront/internal/config"
)

// Client talks to both Shopify GraphQL endpoints: the public Storefront API
// (cart operations, product search) and the private Admin API (catalog
// listing). Identifiers and checkout URLs are opaque platform strings.
type Client struct {
	http            *resty.Client
	storefrontURL   string
	adminURL        string
	storefrontToken string
	adminToken      string
}

func New(storefrontURL, adminURL, storefrontToken, adminToken string) *Client {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:            client,
		storefrontURL:   storefrontURL,
		adminURL:        adminURL,
		storefrontToken: storefrontToken,
		adminToken:      adminToken,
	}
}

func FromConfig(cfg *config.Config) *Client {
	storefrontURL := fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.SHOPIFY_STORE_DOMAIN, cfg.SHOPIFY_API_VERSION)
	adminURL := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.SHOPIFY_STORE_DOMAIN, cfg.SHOPIFY_API_VERSION)
	return New(storefrontURL, adminURL, cfg.SHOPIFY_STOREFRONT_TOKEN, cfg.SHOPIFY_ADMIN_TOKEN)
}

func (c *Client) storefront(ctx context.Context, query string, vars map[string]any, out any) error {
	headers := map[string]string{"X-Shopify-Storefront-Access-Token": c.storefrontToken}
	return c.do(ctx, c.storefrontURL, headers, query, vars, out)
}

func (c *Client) admin(ctx context.Context, query string, vars map[string]any, out any) error {
	headers := map[string]string{"X-Shopify-Access-Token": c.adminToken}
	return c.do(ctx, c.adminURL, headers, query, vars, out)
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string, query string, vars map[string]any, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(graphQLRequest{Query: query, Variables: vars}).
		Post(url)
	if err != nil {
		return fmt.Errorf("shopify: request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("shopify: http %d: %s", resp.StatusCode(), resp.String())
	}

	var env envelope
	if err := json.Unmarshal(resp.Bytes(), &env); err != nil {
		return fmt.Errorf("shopify: decode response: %w", err)
	}
	if len(env.Errors) > 0 {
		return wrapGraphQLErrors(env.Errors)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("shopify: decode data: %w", err)
		}
	}
	return nil
}
