package services

import (
	"context"
	"time"

	"canteenmate/models"
	"canteenmate/store"
)

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// contactStatusRank orders the triage flow; transitions only move forward.
func contactStatusRank(status string) int {
	switch status {
	case ContactStatusNew:
		return 0
	case ContactStatusRead:
		return 1
	case ContactStatusReplied:
		return 2
	}
	return -1
}

func loadContactMessages(ctx context.Context, s *Session) []models.ContactMessage {
	msgs := []models.ContactMessage{}
	s.Store.Get(ctx, store.KeyContactMessages, &msgs)
	return msgs
}

// SendContactMessage appends a message with status "new", newest first.
func SendContactMessage(ctx context.Context, s *Session, name, email, subject, message string) (*models.ContactMessage, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	msg := models.ContactMessage{
		ID:        newID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		Status:    ContactStatusNew,
	}
	msgs := append([]models.ContactMessage{msg}, loadContactMessages(ctx, s)...)
	s.Store.Set(ctx, store.KeyContactMessages, msgs)
	return &msg, nil
}

func ListContactMessages(ctx context.Context, s *Session) []models.ContactMessage {
	return loadContactMessages(ctx, s)
}

// MarkContactMessage advances a message through new, read, replied. Going
// backwards or sideways is rejected.
func MarkContactMessage(ctx context.Context, s *Session, id, status string) (*models.ContactMessage, error) {
	if contactStatusRank(status) < 0 {
		return nil, models.ErrInvalidStatusTransition
	}
	msgs := loadContactMessages(ctx, s)
	for i := range msgs {
		if msgs[i].ID != id {
			continue
		}
		if contactStatusRank(status) <= contactStatusRank(msgs[i].Status) {
			return nil, models.ErrInvalidStatusTransition
		}
		msgs[i].Status = status
		s.Store.Set(ctx, store.KeyContactMessages, msgs)
		return &msgs[i], nil
	}
	return nil, models.ErrContactMessageNotFound
}
