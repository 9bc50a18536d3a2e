package services

import (
	"context"

	"canteenmate/models"
	"canteenmate/store"
)

func loadCart(ctx context.Context, s *Session) []models.CartItem {
	cart := []models.CartItem{}
	s.Store.Get(ctx, store.KeyCart, &cart)
	return cart
}

// GetCart returns the current cart, oldest entry first. Synchronous read.
func GetCart(ctx context.Context, s *Session) []models.CartItem {
	return loadCart(ctx, s)
}

// AddToCart merges by menu item id: an existing entry has its quantity
// incremented, a new one snapshots name, price and image from the item.
func AddToCart(ctx context.Context, s *Session, item models.MenuItem, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}
	cart := loadCart(ctx, s)
	found := false
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
			Image:    item.Image,
		})
	}
	s.Store.Set(ctx, store.KeyCart, cart)
	return cart, nil
}

// UpdateCartItem overwrites the quantity of an existing entry; zero or
// negative removes it.
func UpdateCartItem(ctx context.Context, s *Session, itemID, quantity int) ([]models.CartItem, error) {
	cart := loadCart(ctx, s)
	idx := -1
	for i := range cart {
		if cart[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrCartItemNotFound
	}
	if quantity <= 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	} else {
		cart[idx].Quantity = quantity
	}
	s.Store.Set(ctx, store.KeyCart, cart)
	return cart, nil
}

// RemoveFromCart drops the entry with itemID if present.
func RemoveFromCart(ctx context.Context, s *Session, itemID int) []models.CartItem {
	cart := loadCart(ctx, s)
	kept := cart[:0]
	for _, ci := range cart {
		if ci.ID != itemID {
			kept = append(kept, ci)
		}
	}
	s.Store.Set(ctx, store.KeyCart, kept)
	return kept
}

func ClearCart(ctx context.Context, s *Session) {
	s.Store.Set(ctx, store.KeyCart, []models.CartItem{})
}

// CartTotal is the sum of price times quantity over the cart, recomputed
// on every call.
func CartTotal(ctx context.Context, s *Session) int64 {
	var total int64
	for _, ci := range loadCart(ctx, s) {
		total += ci.Price * int64(ci.Quantity)
	}
	return total
}

// CartItemCount is the sum of quantities, not the number of distinct entries.
func CartItemCount(ctx context.Context, s *Session) int {
	count := 0
	for _, ci := range loadCart(ctx, s) {
		count += ci.Quantity
	}
	return count
}
