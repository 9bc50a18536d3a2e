package models

// CartItem is a menu item pinned into the cart. Name, price and image are
// copied from the MenuItem at add time and are not re-synced with the catalog.
type CartItem struct {
	ID       int    `json:"id"` // matches MenuItem.ID
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}
