package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"canteenmate/models"
	"canteenmate/store"
)

const demoUserName = "Demo User"

func loadUsers(ctx context.Context, s *Session) []models.User {
	users := []models.User{}
	s.Store.Get(ctx, store.KeyUsers, &users)
	return users
}

// Login fetches the user by email, creating a demo account on the fly when
// the email is unknown. Accounts registered with a password are verified
// against their bcrypt hash; demo accounts have no hash and accept any
// password. The result is stamped as the current user.
func Login(ctx context.Context, s *Session, email, password string) (*models.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	users := loadUsers(ctx, s)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if u.PasswordHash != "" {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return nil, models.ErrInvalidCredentials
			}
		}
		u.IsLoggedIn = true
		s.Store.Set(ctx, store.KeyCurrentUser, u)
		return &u, nil
	}

	user := models.User{
		ID:         newID(),
		Email:      email,
		Name:       demoUserName,
		IsLoggedIn: true,
		CreatedAt:  time.Now().UTC(),
	}
	users = append(users, user)
	s.Store.Set(ctx, store.KeyUsers, users)
	s.Store.Set(ctx, store.KeyCurrentUser, user)
	return &user, nil
}

// Register creates a not-yet-logged-in user. A non-empty password is
// stored as a bcrypt hash and checked on later logins.
func Register(ctx context.Context, s *Session, name, email, password string) (*models.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	users := loadUsers(ctx, s)
	for _, u := range users {
		if u.Email == email {
			return nil, models.ErrEmailTaken
		}
	}

	user := models.User{
		ID:        newID(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	users = append(users, user)
	s.Store.Set(ctx, store.KeyUsers, users)
	return &user, nil
}

// Logout clears the current-user pointer. The stored user record keeps
// whatever flags it has.
func Logout(ctx context.Context, s *Session) {
	s.Store.Delete(ctx, store.KeyCurrentUser)
}

// CurrentUser returns the logged-in identity, or nil. Synchronous read;
// every service that needs identity goes through here.
func CurrentUser(ctx context.Context, s *Session) *models.User {
	var user *models.User
	s.Store.Get(ctx, store.KeyCurrentUser, &user)
	return user
}
