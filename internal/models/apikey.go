package models

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is the persisted bearer credential. The key string itself is both
// the lookup key and the secret, so it is never serialized.
type APIKey struct {
	ID                uuid.UUID  `json:"id"`
	Key               string     `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	LastRequestDate   *time.Time `json:"last_request_date,omitempty"`
	RequestCountToday int        `json:"request_count_today"`
}
