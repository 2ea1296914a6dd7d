package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPushAndList(t *testing.T) {
	n := New(time.Minute)

	first := n.Push("sess-a", SeveritySuccess, "TC-HOME-500", 2, "added to cart")
	second := n.Push("sess-a", SeverityError, "", 0, "could not update cart")

	items := n.List("sess-a")
	require.Len(t, items, 2)
	require.Equal(t, first.ID, items[0].ID)
	require.Equal(t, second.ID, items[1].ID)
	require.Equal(t, "success", items[0].Severity)
	require.Equal(t, 2, items[0].Quantity)
}

func TestDismiss(t *testing.T) {
	n := New(time.Minute)

	item := n.Push("sess-a", SeverityInfo, "", 0, "your cart is empty")
	require.True(t, n.Dismiss("sess-a", item.ID))
	require.False(t, n.Dismiss("sess-a", item.ID))
	require.Empty(t, n.List("sess-a"))
}

func TestOwnersAreIsolated(t *testing.T) {
	n := New(time.Minute)

	a := n.Push("sess-a", SeveritySuccess, "TC-HOME-500", 1, "added to cart")
	b := n.Push("sess-b", SeverityError, "TC-PRO-5L", 3, "could not add to cart")

	itemsA := n.List("sess-a")
	require.Len(t, itemsA, 1)
	require.Equal(t, a.ID, itemsA[0].ID)

	itemsB := n.List("sess-b")
	require.Len(t, itemsB, 1)
	require.Equal(t, b.ID, itemsB[0].ID)

	// A session cannot dismiss another session's entry, even with its id.
	require.False(t, n.Dismiss("sess-a", b.ID))
	require.Len(t, n.List("sess-b"), 1)
}

func TestAutoExpiry(t *testing.T) {
	n := New(time.Minute)
	base := time.Now()
	n.now = func() time.Time { return base }

	n.Push("sess-a", SeveritySuccess, "TC-PRO-5L", 1, "added to cart")
	require.Len(t, n.List("sess-a"), 1)

	n.now = func() time.Time { return base.Add(2 * time.Minute) }
	require.Empty(t, n.List("sess-a"))
}
