package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// CreateID returns a compact random identifier, used for action-token jti
// values and outbox entry keys. Base58 keeps it URL- and log-safe.
func CreateID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
