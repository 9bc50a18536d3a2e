package services

import (
	"context"
	"errors"
	"testing"

	"canteenmate/models"
)

func testMenuItem(id int, price int64) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        "Samosa",
		Price:       price,
		Category:    models.CategorySnacks,
		Image:       "https://example.test/samosa.jpeg",
		IsAvailable: true,
	}
}

func TestAddToCartMergesByID(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	item := testMenuItem(2, 25)

	quantities := []int{1, 3, 2}
	want := 0
	for _, q := range quantities {
		if _, err := AddToCart(ctx, s, item, q); err != nil {
			t.Fatalf("AddToCart(q=%d): %v", q, err)
		}
		want += q
	}

	cart := GetCart(ctx, s)
	if len(cart) != 1 {
		t.Fatalf("cart entries = %d, want 1", len(cart))
	}
	if cart[0].Quantity != want {
		t.Errorf("quantity = %d, want %d", cart[0].Quantity, want)
	}
	if cart[0].Price != 25 || cart[0].Name != "Samosa" {
		t.Errorf("snapshot fields not copied: %+v", cart[0])
	}
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	for _, q := range []int{0, -1} {
		if _, err := AddToCart(ctx, s, testMenuItem(1, 80), q); !errors.Is(err, models.ErrInvalidQuantity) {
			t.Errorf("AddToCart(q=%d) err = %v, want ErrInvalidQuantity", q, err)
		}
	}
	if got := GetCart(ctx, s); len(got) != 0 {
		t.Errorf("cart after rejected adds = %v, want empty", got)
	}
}

func TestUpdateCartItem(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	if _, err := AddToCart(ctx, s, testMenuItem(1, 80), 2); err != nil {
		t.Fatal(err)
	}

	cart, err := UpdateCartItem(ctx, s, 1, 5)
	if err != nil {
		t.Fatalf("UpdateCartItem: %v", err)
	}
	if cart[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart[0].Quantity)
	}

	// Zero removes the entry.
	cart, err = UpdateCartItem(ctx, s, 1, 0)
	if err != nil {
		t.Fatalf("UpdateCartItem(0): %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("cart = %v, want empty", cart)
	}

	if _, err := UpdateCartItem(ctx, s, 42, 1); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Errorf("missing id err = %v, want ErrCartItemNotFound", err)
	}
}

func TestTwoAddsThenZeroEmptiesCart(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	item := testMenuItem(1, 80)

	if _, err := AddToCart(ctx, s, item, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := AddToCart(ctx, s, item, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := UpdateCartItem(ctx, s, 1, 0); err != nil {
		t.Fatal(err)
	}
	if got := GetCart(ctx, s); len(got) != 0 {
		t.Errorf("cart = %v, want empty", got)
	}
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	if _, err := AddToCart(ctx, s, testMenuItem(1, 80), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := AddToCart(ctx, s, testMenuItem(2, 25), 1); err != nil {
		t.Fatal(err)
	}

	cart := RemoveFromCart(ctx, s, 1)
	if len(cart) != 1 || cart[0].ID != 2 {
		t.Errorf("cart after remove = %+v, want only id 2", cart)
	}
	// Removing an absent id is a no-op.
	if cart = RemoveFromCart(ctx, s, 99); len(cart) != 1 {
		t.Errorf("cart after removing absent id = %+v", cart)
	}
}

func TestCartTotalAndItemCount(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	if got := CartTotal(ctx, s); got != 0 {
		t.Errorf("empty cart total = %d, want 0", got)
	}
	if got := CartItemCount(ctx, s); got != 0 {
		t.Errorf("empty cart count = %d, want 0", got)
	}

	if _, err := AddToCart(ctx, s, testMenuItem(1, 80), 2); err != nil {
		t.Fatal(err)
	}
	if _, err := AddToCart(ctx, s, testMenuItem(2, 25), 3); err != nil {
		t.Fatal(err)
	}

	if got := CartTotal(ctx, s); got != 80*2+25*3 {
		t.Errorf("total = %d, want %d", got, 80*2+25*3)
	}
	// Sum of quantities, not distinct entries.
	if got := CartItemCount(ctx, s); got != 5 {
		t.Errorf("count = %d, want 5", got)
	}
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	if _, err := AddToCart(ctx, s, testMenuItem(1, 80), 1); err != nil {
		t.Fatal(err)
	}
	ClearCart(ctx, s)
	if got := GetCart(ctx, s); len(got) != 0 {
		t.Errorf("cart = %v, want empty", got)
	}
}
