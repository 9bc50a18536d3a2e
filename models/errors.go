package models

import "errors"

var (
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrCartItemNotFound        = errors.New("item not found in cart")
	ErrOrderNotFound           = errors.New("order not found")
	ErrContactMessageNotFound  = errors.New("contact message not found")
	ErrNotAuthenticated        = errors.New("user not authenticated")
	ErrEmailTaken              = errors.New("user already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrOrderCompleted          = errors.New("cannot cancel completed order")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidCategory         = errors.New("invalid category")
)
