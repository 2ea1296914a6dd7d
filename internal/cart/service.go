package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/texcare/storefront/internal/models"
	"github.com/texcare/storefront/internal/notify"
	"github.com/texcare/storefront/internal/session"
	"github.com/texcare/storefront/internal/shopify"
)

// Service is the single point of truth-seeking for cart state. Every mutation
// goes through the remote platform and ends in a re-fetch: local state is
// never trusted after a write, so server-side adjustments (inventory clamping,
// price changes) are always reflected.
type Service struct {
	Shopify  *shopify.Client
	Notifier *notify.Notifier
}

func NewService(client *shopify.Client, notifier *notify.Notifier) *Service {
	return &Service{Shopify: client, Notifier: notifier}
}

// AddBySKU resolves the SKU to a variant id first; a SKU with no purchasable
// variant is a terminal failure for the operation.
func (s *Service) AddBySKU(ctx context.Context, sess session.Session, sku string, quantity int) (*models.Cart, session.Session, error) {
	variantID, err := s.ResolveVariant(ctx, sku)
	if err != nil {
		s.Notifier.Push(sess.ID, notify.SeverityError, sku, quantity, "product is currently unavailable")
		return nil, sess, err
	}
	return s.AddByVariant(ctx, sess, variantID, sku, quantity)
}

// AddByVariant skips SKU resolution; preferred when the caller already holds
// the variant id. A stale stored cart id is discarded and a new cart is
// created transparently, with no error surfaced for that condition.
func (s *Service) AddByVariant(ctx context.Context, sess session.Session, variantID, sku string, quantity int) (*models.Cart, session.Session, error) {
	if quantity < 1 {
		quantity = 1
	}

	cartID := sess.CartID
	if cartID == "" {
		created, err := s.Shopify.CartCreate(ctx)
		if err != nil {
			return nil, sess, s.fail(sess.ID, sku, quantity, "could not add to cart", err)
		}
		cartID = created.ID
	}

	remote, err := s.Shopify.CartLinesAdd(ctx, cartID, variantID, quantity)
	if errors.Is(err, shopify.ErrCartNotFound) {
		created, cerr := s.Shopify.CartCreate(ctx)
		if cerr != nil {
			return nil, sess, s.fail(sess.ID, sku, quantity, "could not add to cart", cerr)
		}
		cartID = created.ID
		remote, err = s.Shopify.CartLinesAdd(ctx, cartID, variantID, quantity)
	}
	if err != nil {
		return nil, sess, s.fail(sess.ID, sku, quantity, "could not add to cart", err)
	}

	fresh, err := s.Shopify.GetCart(ctx, remote.ID)
	if err != nil {
		return nil, sess, s.fail(sess.ID, sku, quantity, "could not add to cart", err)
	}

	sess = session.Session{ID: sess.ID, CartID: fresh.ID, CheckoutURL: fresh.CheckoutURL}
	s.Notifier.Push(sess.ID, notify.SeveritySuccess, sku, quantity, "added to cart")
	return toCart(fresh), sess, nil
}

// Refresh replaces local knowledge with the platform's cart. Idempotent. An
// unknown or expired cart id resets the session and yields an empty cart
// without error.
func (s *Service) Refresh(ctx context.Context, sess session.Session) (*models.Cart, session.Session, error) {
	if sess.CartID == "" {
		return &models.Cart{Lines: []models.CartLine{}}, sess, nil
	}

	remote, err := s.Shopify.GetCart(ctx, sess.CartID)
	if errors.Is(err, shopify.ErrCartNotFound) {
		return &models.Cart{Lines: []models.CartLine{}}, session.Session{ID: sess.ID}, nil
	}
	if err != nil {
		return nil, sess, fmt.Errorf("refresh cart: %w", err)
	}

	sess.CheckoutURL = remote.CheckoutURL
	return toCart(remote), sess, nil
}

// UpdateQuantity clamps quantities below 1 to 1; a line never reaches zero
// through this path, only RemoveLine deletes lines.
func (s *Service) UpdateQuantity(ctx context.Context, sess session.Session, lineID string, quantity int) (*models.Cart, session.Session, error) {
	if quantity < 1 {
		quantity = 1
	}
	if sess.CartID == "" {
		return nil, sess, s.fail(sess.ID, "", quantity, "could not update cart", ErrNoCart)
	}

	if _, err := s.Shopify.CartLinesUpdate(ctx, sess.CartID, lineID, quantity); err != nil {
		return nil, sess, s.fail(sess.ID, "", quantity, "could not update cart", err)
	}
	return s.Refresh(ctx, sess)
}

func (s *Service) RemoveLine(ctx context.Context, sess session.Session, lineID string) (*models.Cart, session.Session, error) {
	if sess.CartID == "" {
		return nil, sess, s.fail(sess.ID, "", 0, "could not update cart", ErrNoCart)
	}

	if _, err := s.Shopify.CartLinesRemove(ctx, sess.CartID, []string{lineID}); err != nil {
		return nil, sess, s.fail(sess.ID, "", 0, "could not update cart", err)
	}
	return s.Refresh(ctx, sess)
}

// Clear removes every line. Safe no-op on an empty or absent cart.
func (s *Service) Clear(ctx context.Context, sess session.Session) (*models.Cart, session.Session, error) {
	current, sess, err := s.Refresh(ctx, sess)
	if err != nil {
		return nil, sess, err
	}
	if len(current.Lines) == 0 {
		return current, sess, nil
	}

	lineIDs := make([]string, 0, len(current.Lines))
	for _, l := range current.Lines {
		lineIDs = append(lineIDs, l.ID)
	}
	if _, err := s.Shopify.CartLinesRemove(ctx, sess.CartID, lineIDs); err != nil {
		return nil, sess, s.fail(sess.ID, "", 0, "could not clear cart", err)
	}
	return s.Refresh(ctx, sess)
}

// Checkout re-fetches the cart to obtain the current checkout URL. The remote
// platform handles authentication at that destination, not this service. An
// empty cart produces an informational notification and ErrEmptyCart.
func (s *Service) Checkout(ctx context.Context, sess session.Session) (string, session.Session, error) {
	current, sess, err := s.Refresh(ctx, sess)
	if err != nil {
		return "", sess, err
	}
	if current.TotalQuantity == 0 {
		s.Notifier.Push(sess.ID, notify.SeverityInfo, "", 0, "your cart is empty")
		return "", sess, ErrEmptyCart
	}

	sess.CheckoutURL = current.CheckoutURL
	return current.CheckoutURL, sess, nil
}

func (s *Service) fail(owner, sku string, quantity int, message string, err error) error {
	s.Notifier.Push(owner, notify.SeverityError, sku, quantity, message)
	return fmt.Errorf("%s: %w", message, err)
}
