package middleware

import (
	"context"
	"fmt"
	"log"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/zeusthug/zeus-api/internal/models"
	"github.com/zeusthug/zeus-api/internal/services"
	"github.com/zeusthug/zeus-api/pkg/dto"
)

const (
	APIKeyRecordKey = "api_key_record"

	// APIKeyHeader and APIKeyQueryParam are the two places a caller may
	// present the credential; the header wins.
	APIKeyHeader     = "X-API-Key"
	APIKeyQueryParam = "api_key"
)

// APIKeyServiceInterface defines the methods needed by the API key middleware
type APIKeyServiceInterface interface {
	Validate(ctx context.Context, candidate string) (*models.APIKey, error)
}

// APIKeyAuth validates the presented key and charges it one request before
// the handler runs, so a slow downstream call never holds key state.
func APIKeyAuth(apiKeyService APIKeyServiceInterface) drift.HandlerFunc {
	return func(c *drift.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.QueryParam(APIKeyQueryParam)
		}

		record, err := apiKeyService.Validate(context.Background(), key)
		if err != nil {
			switch err {
			case services.ErrMissingAPIKey:
				c.Forbidden("An API key is required. Provide it in the 'X-API-Key' header or as an 'api_key' query parameter.")
			case services.ErrInvalidAPIKey:
				c.Forbidden("Invalid API Key.")
			case services.ErrAPIKeyExpired:
				c.Forbidden("API Key has expired. Please create a new one.")
			case services.ErrQuotaExceeded:
				_ = c.JSON(429, dto.ErrorResponse{
					Detail: fmt.Sprintf("Daily request limit of %d exceeded.", services.DailyRequestLimit),
				})
			default:
				log.Printf("api key validation failed: %v", err)
				_ = c.JSON(503, dto.ErrorResponse{Detail: "Service temporarily unavailable."})
			}
			return
		}

		c.Set(APIKeyRecordKey, record)
		c.Next()
	}
}

// GetAPIKeyRecord retrieves the validated key record (set by APIKeyAuth).
func GetAPIKeyRecord(c *drift.Context) *models.APIKey {
	if record, ok := c.Get(APIKeyRecordKey); ok {
		if apiKey, ok := record.(*models.APIKey); ok {
			return apiKey
		}
	}
	return nil
}
