package cart_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeShopify is an in-memory rendition of the Storefront API, just enough
// for the queries the cart service issues.
type fakeShopify struct {
	mu       sync.Mutex
	variants []stubVariant
	carts    map[string]*stubCart
	seq      int

	// answerQuery, when set, makes product search return results only for
	// that exact query string. Used to exercise the resolution fallbacks.
	answerQuery string
	searchCalls []string
}

type stubVariant struct {
	id    string
	sku   string
	title string
	price float64
}

type stubLine struct {
	id        string
	variantID string
	qty       int
}

type stubCart struct {
	id    string
	lines []stubLine
}

func newFakeShopify() *fakeShopify {
	return &fakeShopify{
		variants: []stubVariant{
			{id: "gid://shopify/ProductVariant/1", sku: "TC-HOME-500", title: "500 ml", price: 14.90},
			{id: "gid://shopify/ProductVariant/2", sku: "TC-PRO-5L", title: "5 L", price: 89.00},
		},
		carts: map[string]*stubCart{},
	}
}

func (f *fakeShopify) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeShopify) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.Contains(req.Query, "searchProducts"):
		q, _ := req.Variables["query"].(string)
		f.searchCalls = append(f.searchCalls, q)
		nodes := []any{}
		if f.answerQuery == "" || q == f.answerQuery {
			nodes = f.productNodes()
		}
		writeJSON(w, map[string]any{"data": map[string]any{
			"products": map[string]any{"nodes": nodes},
		}})

	case strings.Contains(req.Query, "cartCreate"):
		f.seq++
		id := fmt.Sprintf("gid://shopify/Cart/%d", f.seq)
		f.carts[id] = &stubCart{id: id}
		writeJSON(w, mutationPayload("cartCreate", f.cartJSON(f.carts[id])))

	case strings.Contains(req.Query, "cartLinesAdd"):
		cart, ok := f.carts[req.Variables["cartId"].(string)]
		if !ok {
			writeJSON(w, mutationPayload("cartLinesAdd", nil))
			return
		}
		for _, raw := range req.Variables["lines"].([]any) {
			line := raw.(map[string]any)
			vid := line["merchandiseId"].(string)
			qty := int(line["quantity"].(float64))
			merged := false
			for i := range cart.lines {
				if cart.lines[i].variantID == vid {
					cart.lines[i].qty += qty
					merged = true
				}
			}
			if !merged {
				f.seq++
				cart.lines = append(cart.lines, stubLine{
					id:        fmt.Sprintf("gid://shopify/CartLine/%d", f.seq),
					variantID: vid,
					qty:       qty,
				})
			}
		}
		writeJSON(w, mutationPayload("cartLinesAdd", f.cartJSON(cart)))

	case strings.Contains(req.Query, "cartLinesUpdate"):
		cart, ok := f.carts[req.Variables["cartId"].(string)]
		if !ok {
			writeJSON(w, mutationPayload("cartLinesUpdate", nil))
			return
		}
		for _, raw := range req.Variables["lines"].([]any) {
			line := raw.(map[string]any)
			id := line["id"].(string)
			qty := int(line["quantity"].(float64))
			for i := range cart.lines {
				if cart.lines[i].id == id {
					cart.lines[i].qty = qty
				}
			}
		}
		writeJSON(w, mutationPayload("cartLinesUpdate", f.cartJSON(cart)))

	case strings.Contains(req.Query, "cartLinesRemove"):
		cart, ok := f.carts[req.Variables["cartId"].(string)]
		if !ok {
			writeJSON(w, mutationPayload("cartLinesRemove", nil))
			return
		}
		remove := map[string]bool{}
		for _, raw := range req.Variables["lineIds"].([]any) {
			remove[raw.(string)] = true
		}
		kept := cart.lines[:0]
		for _, l := range cart.lines {
			if !remove[l.id] {
				kept = append(kept, l)
			}
		}
		cart.lines = kept
		writeJSON(w, mutationPayload("cartLinesRemove", f.cartJSON(cart)))

	case strings.Contains(req.Query, "getCart"):
		cart, ok := f.carts[req.Variables["cartId"].(string)]
		var body any
		if ok {
			body = f.cartJSON(cart)
		}
		writeJSON(w, map[string]any{"data": map[string]any{"cart": body}})

	default:
		http.Error(w, "unexpected query", http.StatusBadRequest)
	}
}

func (f *fakeShopify) variant(id string) stubVariant {
	for _, v := range f.variants {
		if v.id == id {
			return v
		}
	}
	return stubVariant{id: id}
}

func (f *fakeShopify) productNodes() []any {
	variants := make([]any, 0, len(f.variants))
	for _, v := range f.variants {
		variants = append(variants, f.variantJSON(v))
	}
	return []any{map[string]any{
		"id":       "gid://shopify/Product/1",
		"title":    "TexCare",
		"variants": map[string]any{"nodes": variants},
	}}
}

func (f *fakeShopify) variantJSON(v stubVariant) map[string]any {
	return map[string]any{
		"id":    v.id,
		"title": v.title,
		"sku":   v.sku,
		"price": map[string]any{
			"amount":       strconv.FormatFloat(v.price, 'f', 2, 64),
			"currencyCode": "EUR",
		},
		"product": map[string]any{"title": "TexCare"},
	}
}

func (f *fakeShopify) cartJSON(c *stubCart) map[string]any {
	totalQty := 0
	subtotal := 0.0
	lines := make([]any, 0, len(c.lines))
	for _, l := range c.lines {
		v := f.variant(l.variantID)
		lineTotal := v.price * float64(l.qty)
		totalQty += l.qty
		subtotal += lineTotal
		lines = append(lines, map[string]any{
			"id":       l.id,
			"quantity": l.qty,
			"cost": map[string]any{
				"totalAmount": map[string]any{
					"amount":       strconv.FormatFloat(lineTotal, 'f', 2, 64),
					"currencyCode": "EUR",
				},
			},
			"merchandise": f.variantJSON(v),
		})
	}
	return map[string]any{
		"id":            c.id,
		"checkoutUrl":   "https://checkout.example.com/" + c.id,
		"totalQuantity": totalQty,
		"cost": map[string]any{
			"subtotalAmount": map[string]any{
				"amount":       strconv.FormatFloat(subtotal, 'f', 2, 64),
				"currencyCode": "EUR",
			},
		},
		"lines": map[string]any{"nodes": lines},
	}
}

func mutationPayload(op string, cart any) map[string]any {
	return map[string]any{"data": map[string]any{
		op: map[string]any{"cart": cart, "userErrors": []any{}},
	}}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
