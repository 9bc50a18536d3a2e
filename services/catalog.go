package services

import (
	"context"
	"strings"

	"canteenmate/models"
	"canteenmate/store"
)

// CategoryAll is the sentinel filter meaning "no category filter".
const CategoryAll = "all"

func defaultMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Masala Dosa",
			Price:       80,
			Category:    models.CategoryBreakfast,
			Image:       "https://images.pexels.com/photos/5560763/pexels-photo-5560763.jpeg",
			Description: "Crispy rice pancake served with potato filling, sambar and chutney",
			IsVeg:       true,
			IsPopular:   true,
			IsAvailable: true,
		},
		{
			ID:          2,
			Name:        "Samosa",
			Price:       25,
			Category:    models.CategorySnacks,
			Image:       "https://images.pexels.com/photos/9609838/pexels-photo-9609838.jpeg",
			Description: "Crispy pastry filled with spiced potatoes and peas",
			IsVeg:       true,
			IsPopular:   true,
			IsAvailable: true,
		},
		{
			ID:          3,
			Name:        "Chicken Biryani",
			Price:       150,
			Category:    models.CategoryLunch,
			Image:       "https://images.pexels.com/photos/7390558/pexels-photo-7390558.jpeg",
			Description: "Fragrant basmati rice cooked with tender chicken and aromatic spices",
			IsVeg:       false,
			IsPopular:   true,
			IsAvailable: true,
		},
		{
			ID:          4,
			Name:        "Paneer Butter Masala",
			Price:       130,
			Category:    models.CategoryLunch,
			Image:       "https://images.pexels.com/photos/3590401/pexels-photo-3590401.jpeg",
			Description: "Cottage cheese cubes in rich tomato and butter gravy",
			IsVeg:       true,
			IsAvailable: true,
		},
		{
			ID:          5,
			Name:        "Masala Chai",
			Price:       20,
			Category:    models.CategoryBeverages,
			Image:       "https://images.pexels.com/photos/5946630/pexels-photo-5946630.jpeg",
			Description: "Traditional Indian spiced tea with milk",
			IsVeg:       true,
			IsAvailable: true,
		},
		{
			ID:          6,
			Name:        "Gulab Jamun",
			Price:       40,
			Category:    models.CategoryDesserts,
			Image:       "https://images.pexels.com/photos/7449105/pexels-photo-7449105.jpeg",
			Description: "Sweet milk solids balls soaked in sugar syrup",
			IsVeg:       true,
			IsAvailable: true,
		},
		{
			ID:          7,
			Name:        "Cold Coffee",
			Price:       60,
			Category:    models.CategoryBeverages,
			Image:       "https://images.pexels.com/photos/4271412/pexels-photo-4271412.jpeg",
			Description: "Refreshing cold coffee blended with ice and milk",
			IsVeg:       true,
			IsAvailable: true,
		},
		{
			ID:          8,
			Name:        "Veg Pulao",
			Price:       100,
			Category:    models.CategoryLunch,
			Image:       "https://images.pexels.com/photos/5410422/pexels-photo-5410422.jpeg",
			Description: "Fragrant rice cooked with mixed vegetables and spices",
			IsVeg:       true,
			IsAvailable: true,
		},
		{
			ID:          9,
			Name:        "Egg Fried Rice",
			Price:       120,
			Category:    models.CategoryLunch,
			Image:       "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg",
			Description: "Chinese style rice stir-fried with eggs and vegetables",
			IsVeg:       false,
			IsPopular:   true,
			IsAvailable: true,
		},
	}
}

// loadMenuItems reads the catalog, seeding the default nine items when no
// catalog has ever been stored. Every catalog accessor goes through here,
// so none of them can observe an empty catalog.
func loadMenuItems(ctx context.Context, s *Session) []models.MenuItem {
	items := []models.MenuItem{}
	s.Store.Get(ctx, store.KeyMenuItems, &items)
	if len(items) == 0 {
		items = defaultMenuItems()
		s.Store.Set(ctx, store.KeyMenuItems, items)
	}
	return items
}

// ListMenuItems returns the catalog. An empty or "all" category means no
// filter.
func ListMenuItems(ctx context.Context, s *Session, category string) ([]models.MenuItem, error) {
	items := loadMenuItems(ctx, s)
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	if category == "" || category == CategoryAll {
		return items, nil
	}
	filtered := []models.MenuItem{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func GetMenuItem(ctx context.Context, s *Session, id int) (*models.MenuItem, error) {
	for _, item := range loadMenuItems(ctx, s) {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, models.ErrMenuItemNotFound
}

// SearchMenuItems matches query case-insensitively against item names and
// descriptions.
func SearchMenuItems(ctx context.Context, s *Session, query string) ([]models.MenuItem, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := []models.MenuItem{}
	for _, item := range loadMenuItems(ctx, s) {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// SetMenuItemAvailability flips the sold-out flag on one item. This is the
// only catalog mutation; everything else about an item stays as seeded.
func SetMenuItemAvailability(ctx context.Context, s *Session, id int, available bool) (*models.MenuItem, error) {
	items := loadMenuItems(ctx, s)
	for i := range items {
		if items[i].ID == id {
			items[i].IsAvailable = available
			s.Store.Set(ctx, store.KeyMenuItems, items)
			return &items[i], nil
		}
	}
	return nil, models.ErrMenuItemNotFound
}
