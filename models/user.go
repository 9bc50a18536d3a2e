package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsLoggedIn bool      `json:"isLoggedIn"`
	CreatedAt  time.Time `json:"createdAt"`
	// PasswordHash is a bcrypt hash, empty for demo accounts created on the
	// fly by login. Do not log.
	PasswordHash string `json:"passwordHash,omitempty"`
}
