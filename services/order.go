package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"canteenmate/models"
	"canteenmate/store"
)

const (
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const defaultEstimatedTime = "15-20 min"

// ValidStatusTransition reports whether an order may move from one status
// to another. Completed and cancelled are terminal.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusPreparing:
		return to == OrderStatusReady || to == OrderStatusCancelled
	case OrderStatusReady:
		return to == OrderStatusCompleted || to == OrderStatusCancelled
	}
	return false
}

func loadOrders(ctx context.Context, s *Session) []models.Order {
	orders := []models.Order{}
	s.Store.Get(ctx, store.KeyOrders, &orders)
	return orders
}

// CreateOrder turns a cart snapshot into a persisted order for the current
// user and clears the cart in the same call, so checkout is one step from
// the caller's point of view. Total is items plus the flat delivery fee and
// never changes afterwards.
func CreateOrder(ctx context.Context, s *Session, items []models.CartItem) (*models.Order, error) {
	user := CurrentUser(ctx, s)
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var itemsTotal int64
	for _, ci := range items {
		itemsTotal += ci.Price * int64(ci.Quantity)
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	order := models.Order{
		ID:            newID(),
		UserID:        user.ID,
		Items:         snapshot,
		Total:         itemsTotal + s.DeliveryFee,
		Status:        OrderStatusPreparing,
		CreatedAt:     time.Now().UTC(),
		EstimatedTime: defaultEstimatedTime,
	}

	orders := append([]models.Order{order}, loadOrders(ctx, s)...)
	s.Store.Set(ctx, store.KeyOrders, orders)
	ClearCart(ctx, s)

	s.Log.Info("order placed", zap.String("order_id", order.ID), zap.String("user_id", user.ID))
	return &order, nil
}

// ListUserOrders returns the current user's orders, newest first.
func ListUserOrders(ctx context.Context, s *Session) ([]models.Order, error) {
	user := CurrentUser(ctx, s)
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	mine := []models.Order{}
	for _, o := range loadOrders(ctx, s) {
		if o.UserID == user.ID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func GetOrder(ctx context.Context, s *Session, orderID string) (*models.Order, error) {
	for _, o := range loadOrders(ctx, s) {
		if o.ID == orderID {
			return &o, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

// CancelOrder sets the order to cancelled. Only a completed order refuses;
// everything else, cancelled included, accepts idempotently.
func CancelOrder(ctx context.Context, s *Session, orderID string) (*models.Order, error) {
	orders := loadOrders(ctx, s)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if orders[i].Status == OrderStatusCompleted {
			return nil, models.ErrOrderCompleted
		}
		orders[i].Status = OrderStatusCancelled
		s.Store.Set(ctx, store.KeyOrders, orders)
		return &orders[i], nil
	}
	return nil, models.ErrOrderNotFound
}

// UpdateOrderStatus is the staff-side advancement (preparing to ready to
// completed); anything outside ValidStatusTransition is rejected.
func UpdateOrderStatus(ctx context.Context, s *Session, orderID, status string) (*models.Order, error) {
	orders := loadOrders(ctx, s)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !ValidStatusTransition(orders[i].Status, status) {
			return nil, models.ErrInvalidStatusTransition
		}
		orders[i].Status = status
		s.Store.Set(ctx, store.KeyOrders, orders)
		return &orders[i], nil
	}
	return nil, models.ErrOrderNotFound
}

// Reorder replays an old order's item snapshot through CreateOrder. The
// original order is read but never touched.
func Reorder(ctx context.Context, s *Session, orderID string) (*models.Order, error) {
	original, err := GetOrder(ctx, s, orderID)
	if err != nil {
		return nil, err
	}
	return CreateOrder(ctx, s, original.Items)
}
