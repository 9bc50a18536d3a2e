package services

import (
	"go.uber.org/zap"

	"canteenmate/config"
	"canteenmate/store"
)

const testDeliveryFee = 20

// newTestSession builds a session over a fresh in-memory store. Each test
// gets its own, so login state never leaks between tests.
func newTestSession() *Session {
	st := store.New(store.NewMemory(), zap.NewNop())
	return NewSession(st, zap.NewNop(), config.CanteenConfig{DeliveryFee: testDeliveryFee})
}
