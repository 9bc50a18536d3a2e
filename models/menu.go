package models

// MenuItem is a catalog entry. JSON tags match the stored format.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // rupees
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	IsVeg       bool   `json:"isVeg"`
	IsPopular   bool   `json:"isPopular"`
	IsAvailable bool   `json:"isAvailable"`
}

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategorySnacks    = "snacks"
	CategoryBeverages = "beverages"
	CategoryDesserts  = "desserts"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategorySnacks, CategoryBeverages, CategoryDesserts:
		return true
	}
	return false
}
