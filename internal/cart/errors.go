package cart

import "errors"

var (
	// ErrVariantNotFound: the SKU matched no purchasable variant after all
	// resolution strategies were exhausted. Terminal for the operation.
	ErrVariantNotFound = errors.New("cart: variant not found")

	// ErrNoCart: the operation needs an existing cart and none is known.
	ErrNoCart = errors.New("cart: no cart in session")

	// ErrEmptyCart: checkout was requested with zero items.
	ErrEmptyCart = errors.New("cart: cart is empty")
)
