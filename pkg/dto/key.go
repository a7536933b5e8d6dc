package dto

import (
	"time"

	"github.com/google/uuid"
)

type KeyCreationResponse struct {
	APIKey string `json:"api_key"`
	Detail string `json:"detail"`
}

type APIKeyInfo struct {
	ID                uuid.UUID  `json:"id"`
	CreatedAt         string     `json:"created_at"`
	ExpiresAt         string     `json:"expires_at"`
	LastRequestDate   *time.Time `json:"last_request_date,omitempty"`
	RequestCountToday int        `json:"request_count_today"`
}
