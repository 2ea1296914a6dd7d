package cart

import (
	"strconv"

	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/shopify"
)

func toCart(c *shopify.Cart) *models.Cart {
	if c == nil {
		return &models.Cart{}
	}
	out := &models.Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		TotalQuantity: c.TotalQuantity,
		Subtotal:      toMoney(c.Cost.SubtotalAmount),
		Lines:         make([]models.CartLine, 0, len(c.Lines.Nodes)),
	}
	for _, l := range c.Lines.Nodes {
		out.Lines = append(out.Lines, toLine(l))
	}
	return out
}

func toLine(l shopify.CartLine) models.CartLine {
	m := models.Merchandise{
		ID:           l.Merchandise.ID,
		Title:        l.Merchandise.Title,
		SKU:          l.Merchandise.SKU,
		Price:        toMoney(l.Merchandise.Price),
		ProductTitle: l.Merchandise.Product.Title,
	}
	if l.Merchandise.Image != nil {
		m.Image = l.Merchandise.Image.URL
	}
	if l.Merchandise.Product.FeaturedImage != nil {
		m.ProductImage = l.Merchandise.Product.FeaturedImage.URL
	}
	return models.CartLine{
		ID:          l.ID,
		Merchandise: m,
		Quantity:    l.Quantity,
		Subtotal:    toMoney(l.Cost.TotalAmount),
	}
}

func toMoney(m shopify.MoneyV2) models.Money {
	amount, _ := strconv.ParseFloat(m.Amount, 64)
	return models.Money{Amount: amount, CurrencyCode: m.CurrencyCode}
}
