package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zeusthug/zeus-api/internal/database"
	"github.com/zeusthug/zeus-api/internal/models"
)

var (
	ErrMissingAPIKey = errors.New("api key is required")
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrAPIKeyExpired = errors.New("api key has expired")
	ErrQuotaExceeded = errors.New("daily request limit exceeded")
)

const (
	// DailyRequestLimit is the maximum number of accepted requests per key
	// per UTC calendar date.
	DailyRequestLimit = 1000

	// KeyExpirationDays is the validity window of an issued key.
	KeyExpirationDays = 30

	apiKeyRandomLen = 32
)

type APIKeyService struct {
	db *database.DB
}

func NewAPIKeyService(db *database.DB) *APIKeyService {
	return &APIKeyService{db: db}
}

// generateKey produces a URL-safe bearer token with 256 bits of entropy.
func generateKey() string {
	randomBytes := make([]byte, apiKeyRandomLen)
	_, _ = rand.Read(randomBytes)
	return base64.RawURLEncoding.EncodeToString(randomBytes)
}

// Issue creates and persists a new API key. The returned record carries the
// plaintext key, which is not recoverable through any other operation.
func (s *APIKeyService) Issue(ctx context.Context) (*models.APIKey, error) {
	key := generateKey()

	var apiKey models.APIKey
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO api_keys (key)
		VALUES ($1)
		RETURNING id, key, created_at, last_request_date, request_count_today
	`, key).Scan(
		&apiKey.ID, &apiKey.Key, &apiKey.CreatedAt,
		&apiKey.LastRequestDate, &apiKey.RequestCountToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to store api key: %w", err)
	}

	return &apiKey, nil
}

// Validate checks a candidate key against expiration and the daily quota and,
// on success, records the accepted request. Expired keys are deleted as a
// side effect. The counter update is a single conditional UPDATE, so
// concurrent requests with the same key cannot be admitted past the limit.
func (s *APIKeyService) Validate(ctx context.Context, candidate string) (*models.APIKey, error) {
	if candidate == "" {
		return nil, ErrMissingAPIKey
	}

	var apiKey models.APIKey
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, key, created_at, last_request_date, request_count_today
		FROM api_keys
		WHERE key = $1
	`, candidate).Scan(
		&apiKey.ID, &apiKey.Key, &apiKey.CreatedAt,
		&apiKey.LastRequestDate, &apiKey.RequestCountToday,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidAPIKey
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	expiresAt := apiKey.CreatedAt.Add(KeyExpirationDays * 24 * time.Hour)
	if time.Now().After(expiresAt) {
		if _, err := s.db.Pool.Exec(ctx, `DELETE FROM api_keys WHERE key = $1`, candidate); err != nil {
			return nil, fmt.Errorf("failed to delete expired api key: %w", err)
		}
		return nil, ErrAPIKeyExpired
	}

	// The counter resets at UTC midnight regardless of when the key's day
	// started, so "today" is derived inside the statement.
	err = s.db.Pool.QueryRow(ctx, `
		UPDATE api_keys
		SET request_count_today = CASE WHEN last_request_date = (now() AT TIME ZONE 'utc')::date THEN request_count_today + 1 ELSE 1 END,
		    last_request_date = (now() AT TIME ZONE 'utc')::date
		WHERE key = $1
		  AND (last_request_date IS DISTINCT FROM (now() AT TIME ZONE 'utc')::date OR request_count_today < $2)
		RETURNING last_request_date, request_count_today
	`, candidate, DailyRequestLimit).Scan(&apiKey.LastRequestDate, &apiKey.RequestCountToday)
	if errors.Is(err, pgx.ErrNoRows) {
		// A key deleted between the lookup and the update lands here too;
		// the next request reports it invalid.
		return nil, ErrQuotaExceeded
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update request counter: %w", err)
	}

	return &apiKey, nil
}

// List returns all keys, newest first.
func (s *APIKeyService) List(ctx context.Context) ([]models.APIKey, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, key, created_at, last_request_date, request_count_today
		FROM api_keys
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	defer rows.Close()

	var keys []models.APIKey
	for rows.Next() {
		var apiKey models.APIKey
		if err := rows.Scan(
			&apiKey.ID, &apiKey.Key, &apiKey.CreatedAt,
			&apiKey.LastRequestDate, &apiKey.RequestCountToday,
		); err != nil {
			return nil, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, apiKey)
	}

	return keys, rows.Err()
}

// Delete removes a key unconditionally.
func (s *APIKeyService) Delete(ctx context.Context, key string) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM api_keys WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrInvalidAPIKey
	}
	return nil
}

// CleanupExpired deletes keys past their expiration window and returns how
// many were removed. Expired keys that are still presented get deleted by
// Validate; this sweeps the ones that are never presented again.
func (s *APIKeyService) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-KeyExpirationDays * 24 * time.Hour)
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM api_keys WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up expired api keys: %w", err)
	}
	return result.RowsAffected(), nil
}
