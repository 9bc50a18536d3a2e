package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"canteenmate/config"
	"canteenmate/store"
)

// Session is the shared handle every service call operates on: the store,
// a logger and the tunables. Notably it carries the current-user pointer
// (via its store) so two sessions with separate stores never see each
// other's login state.
type Session struct {
	Store       *store.Store
	Log         *zap.Logger
	DeliveryFee int64
	Latency     time.Duration
}

func NewSession(st *store.Store, log *zap.Logger, cfg config.CanteenConfig) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Store:       st,
		Log:         log,
		DeliveryFee: cfg.DeliveryFee,
		Latency:     cfg.APIDelay,
	}
}

// delay simulates network latency on the calls the real backend would
// serve. Zero latency is a no-op apart from the ctx check.
func (s *Session) delay(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newID() string {
	return uuid.NewString()
}
