package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusthug/zeus-api/internal/database"
)

func setupAPIKeyService(t *testing.T) (*APIKeyService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewAPIKeyService(db), mock
}

func apiKeyColumns() []string {
	return []string{"id", "key", "created_at", "last_request_date", "request_count_today"}
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestGenerateKey_UniqueAndURLSafe(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		key := generateKey()

		assert.False(t, seen[key], "generated key collides: %s", key)
		seen[key] = true

		// 32 random bytes, base64url without padding
		assert.Len(t, key, 43)
		decoded, err := base64.RawURLEncoding.DecodeString(key)
		require.NoError(t, err)
		assert.Len(t, decoded, 32)
	}
}

func TestAPIKeyService_Issue(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(id, "issued-key", now, nil, 0)
	mock.ExpectQuery(`INSERT INTO api_keys`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(rows)

	apiKey, err := svc.Issue(ctx)

	require.NoError(t, err)
	assert.Equal(t, id, apiKey.ID)
	assert.Equal(t, "issued-key", apiKey.Key)
	assert.Nil(t, apiKey.LastRequestDate)
	assert.Equal(t, 0, apiKey.RequestCountToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Issue_StoreUnavailable(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO api_keys`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	_, err := svc.Issue(ctx)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAPIKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_MissingKey(t *testing.T) {
	svc, _ := setupAPIKeyService(t)

	_, err := svc.Validate(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAPIKeyService_Validate_UnknownKey(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("unknown-key").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Validate(ctx, "unknown-key")

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_Expired(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	createdAt := time.Now().Add(-KeyExpirationDays*24*time.Hour - time.Second)

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "old-key", createdAt, nil, 0)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("old-key").
		WillReturnRows(rows)
	mock.ExpectExec(`DELETE FROM api_keys WHERE key`).
		WithArgs("old-key").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	_, err := svc.Validate(ctx, "old-key")

	assert.ErrorIs(t, err, ErrAPIKeyExpired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_JustBeforeExpiry(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	createdAt := time.Now().Add(-KeyExpirationDays*24*time.Hour + time.Second)
	today := todayUTC()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "aging-key", createdAt, nil, 0)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("aging-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("aging-key", DailyRequestLimit).
		WillReturnRows(pgxmock.NewRows([]string{"last_request_date", "request_count_today"}).
			AddRow(&today, 1))

	apiKey, err := svc.Validate(ctx, "aging-key")

	require.NoError(t, err)
	assert.Equal(t, 1, apiKey.RequestCountToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_FirstUse(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	today := todayUTC()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "fresh-key", time.Now(), nil, 0)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("fresh-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("fresh-key", DailyRequestLimit).
		WillReturnRows(pgxmock.NewRows([]string{"last_request_date", "request_count_today"}).
			AddRow(&today, 1))

	apiKey, err := svc.Validate(ctx, "fresh-key")

	require.NoError(t, err)
	require.NotNil(t, apiKey.LastRequestDate)
	assert.True(t, apiKey.LastRequestDate.Equal(today))
	assert.Equal(t, 1, apiKey.RequestCountToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_IncrementsSameDay(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	today := todayUTC()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "busy-key", time.Now(), &today, 41)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("busy-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("busy-key", DailyRequestLimit).
		WillReturnRows(pgxmock.NewRows([]string{"last_request_date", "request_count_today"}).
			AddRow(&today, 42))

	apiKey, err := svc.Validate(ctx, "busy-key")

	require.NoError(t, err)
	assert.Equal(t, 42, apiKey.RequestCountToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_QuotaExceeded(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	today := todayUTC()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "maxed-key", time.Now(), &today, DailyRequestLimit)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("maxed-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("maxed-key", DailyRequestLimit).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Validate(ctx, "maxed-key")

	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_DailyReset(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	today := todayUTC()
	yesterday := today.AddDate(0, 0, -1)

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "stale-key", time.Now(), &yesterday, DailyRequestLimit)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("stale-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("stale-key", DailyRequestLimit).
		WillReturnRows(pgxmock.NewRows([]string{"last_request_date", "request_count_today"}).
			AddRow(&today, 1))

	apiKey, err := svc.Validate(ctx, "stale-key")

	require.NoError(t, err)
	require.NotNil(t, apiKey.LastRequestDate)
	assert.True(t, apiKey.LastRequestDate.Equal(today))
	assert.Equal(t, 1, apiKey.RequestCountToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Validate_StoreUnavailableOnUpdate(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "some-key", time.Now(), nil, 0)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WithArgs("some-key").
		WillReturnRows(rows)
	mock.ExpectQuery(`UPDATE api_keys`).
		WithArgs("some-key", DailyRequestLimit).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.Validate(ctx, "some-key")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Delete(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM api_keys WHERE key`).
		WithArgs("doomed-key").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(ctx, "doomed-key")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_Delete_NotFound(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM api_keys WHERE key`).
		WithArgs("ghost-key").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Delete(ctx, "ghost-key")

	assert.ErrorIs(t, err, ErrInvalidAPIKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_CleanupExpired(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM api_keys WHERE created_at`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	removed, err := svc.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyService_List(t *testing.T) {
	svc, mock := setupAPIKeyService(t)
	ctx := context.Background()
	today := todayUTC()

	rows := pgxmock.NewRows(apiKeyColumns()).
		AddRow(uuid.New(), "key-one", time.Now(), &today, 7).
		AddRow(uuid.New(), "key-two", time.Now().Add(-time.Hour), nil, 0)
	mock.ExpectQuery(`SELECT id, key, created_at, last_request_date, request_count_today`).
		WillReturnRows(rows)

	keys, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "key-one", keys[0].Key)
	assert.Equal(t, 7, keys[0].RequestCountToday)
	assert.Nil(t, keys[1].LastRequestDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
