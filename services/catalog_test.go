package services

import (
	"context"
	"errors"
	"testing"

	"canteenmate/models"
)

func TestListMenuItemsSeedsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	items, err := ListMenuItems(ctx, s, "")
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if len(items) != 9 {
		t.Fatalf("seeded items = %d, want 9", len(items))
	}
	for i, item := range items {
		if item.ID != i+1 {
			t.Errorf("item[%d].ID = %d, want %d", i, item.ID, i+1)
		}
		if !item.IsAvailable {
			t.Errorf("item %d not available after seeding", item.ID)
		}
		if !models.ValidCategory(item.Category) {
			t.Errorf("item %d has invalid category %q", item.ID, item.Category)
		}
	}

	// Second access must not re-seed.
	again, err := ListMenuItems(ctx, s, CategoryAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 9 {
		t.Errorf("items after second list = %d, want 9", len(again))
	}
}

func TestListMenuItemsCategoryFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	items, err := ListMenuItems(ctx, s, models.CategoryLunch)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("no lunch items")
	}
	for _, item := range items {
		if item.Category != models.CategoryLunch {
			t.Errorf("item %d category = %q, want lunch", item.ID, item.Category)
		}
	}

	all, err := ListMenuItems(ctx, s, CategoryAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 9 {
		t.Errorf(`"all" returned %d items, want 9`, len(all))
	}
}

func TestGetMenuItem(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	// No prior list: the lookup itself seeds the catalog.
	item, err := GetMenuItem(ctx, s, 2)
	if err != nil {
		t.Fatalf("GetMenuItem: %v", err)
	}
	if item.Name != "Samosa" || item.Price != 25 {
		t.Errorf("item 2 = %+v, want Samosa at 25", item)
	}

	if _, err := GetMenuItem(ctx, s, 404); !errors.Is(err, models.ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestSearchMenuItems(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	if _, err := ListMenuItems(ctx, s, ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"MASALA", 3}, // Masala Dosa, Paneer Butter Masala, Masala Chai
		{"rice", 4},   // dosa and biryani descriptions, veg pulao, egg fried rice
		{"samosa", 1},
		{"pizza", 0},
	}
	for _, tt := range tests {
		items, err := SearchMenuItems(ctx, s, tt.query)
		if err != nil {
			t.Fatalf("SearchMenuItems(%q): %v", tt.query, err)
		}
		if len(items) != tt.want {
			t.Errorf("SearchMenuItems(%q) = %d items, want %d", tt.query, len(items), tt.want)
		}
	}
}

func TestSetMenuItemAvailability(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()
	if _, err := ListMenuItems(ctx, s, ""); err != nil {
		t.Fatal(err)
	}

	item, err := SetMenuItemAvailability(ctx, s, 3, false)
	if err != nil {
		t.Fatalf("SetMenuItemAvailability: %v", err)
	}
	if item.IsAvailable {
		t.Error("item still available")
	}

	got, err := GetMenuItem(ctx, s, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsAvailable {
		t.Error("availability change not persisted")
	}
	if got.Name != "Chicken Biryani" || got.Price != 150 {
		t.Errorf("other fields changed: %+v", got)
	}

	if _, err := SetMenuItemAvailability(ctx, s, 404, true); !errors.Is(err, models.ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}
