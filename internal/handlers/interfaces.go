package handlers

import (
	"context"

	"github.com/zeusthug/zeus-api/internal/models"
	"github.com/zeusthug/zeus-api/internal/services"
)

// APIKeyServiceInterface defines the methods used by handlers from APIKeyService
type APIKeyServiceInterface interface {
	Issue(ctx context.Context) (*models.APIKey, error)
	Validate(ctx context.Context, candidate string) (*models.APIKey, error)
	List(ctx context.Context) ([]models.APIKey, error)
	Delete(ctx context.Context, key string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

// LLMClientInterface defines the downstream chat-completion call
type LLMClientInterface interface {
	Ask(ctx context.Context, query string) (string, error)
}

// AdminServiceInterface defines the methods used by the admin handler
type AdminServiceInterface interface {
	CheckSecret(candidate string) bool
	GenerateToken() (*services.AdminToken, error)
}
