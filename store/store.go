// Package store is the only component that touches persistent state. It
// exposes a default-tolerant key-value adapter over pluggable backends:
// reads that miss or fail leave the caller's default in place, and failed
// writes are logged and dropped rather than surfaced.
package store

import (
	"context"
	"encoding/json"
	"reflect"

	"go.uber.org/zap"
)

// Storage keys. One JSON value per key: arrays for the collections, a
// single object (or nothing) for the current-user pointer.
const (
	KeyUsers           = "canteen_users"
	KeyMenuItems       = "canteen_menu_items"
	KeyOrders          = "canteen_orders"
	KeyCart            = "canteen_cart"
	KeyContactMessages = "canteen_contact_messages"
	KeyCurrentUser     = "user"
)

// Backend is a raw key-value store. Get reports a miss with ok=false.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store wraps a Backend with JSON serialization and the swallow-errors
// contract. A nil backend is valid and behaves as an empty, read-only
// store (every Get keeps the default, every Set is dropped).
type Store struct {
	backend Backend
	log     *zap.Logger
}

func New(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, log: log}
}

// Get decodes the value under key into dest, which must be a non-nil
// pointer pre-loaded with the caller's default. On a missing key, a backend
// error or a decode failure dest is left untouched.
func (s *Store) Get(ctx context.Context, key string, dest any) {
	if s.backend == nil {
		return
	}
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Debug("store read failed, using default", zap.String("key", key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	// Decode into a scratch value so a malformed payload cannot leave dest
	// half-filled.
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		s.log.Debug("store read skipped: dest is not a pointer", zap.String("key", key))
		return
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		s.log.Debug("store value undecodable, using default", zap.String("key", key), zap.Error(err))
		return
	}
	rv.Elem().Set(tmp.Elem())
}

// Set encodes value and writes it under key. Failures are logged and the
// write is lost; nothing propagates to the caller.
func (s *Store) Set(ctx context.Context, key string, value any) {
	if s.backend == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("store write dropped: encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		s.log.Warn("store write dropped", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes key. Failures are logged and dropped like Set failures.
func (s *Store) Delete(ctx context.Context, key string) {
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(ctx, key); err != nil {
		s.log.Warn("store delete dropped", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
