package models

import "time"

// Order is a checkout snapshot. Items and Total are fixed at creation;
// only Status changes afterwards.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Items         []CartItem `json:"items"`
	Total         int64      `json:"total"` // items total plus delivery fee
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"date"`
	EstimatedTime string     `json:"estimatedTime,omitempty"`
}
