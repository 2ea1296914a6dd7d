package shopify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCartNotFound means the platform no longer recognizes a cart id. The
// stored identifier must be discarded and a fresh cart created on next use.
var ErrCartNotFound = errors.New("shopify: cart not found")

func wrapGraphQLErrors(errs []GraphQLError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	joined := strings.Join(msgs, "; ")
	if strings.Contains(strings.ToLower(joined), "cart") &&
		(strings.Contains(joined, "does not exist") || strings.Contains(joined, "not found")) {
		return ErrCartNotFound
	}
	return fmt.Errorf("shopify: graphql error: %s", joined)
}

func wrapUserErrors(op string, errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("shopify: %s rejected: %s", op, strings.Join(msgs, "; "))
}
