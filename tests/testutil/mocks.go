package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zeusthug/zeus-api/internal/models"
	"github.com/zeusthug/zeus-api/internal/services"
)

// MockAPIKeyService mocks the APIKeyService
type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) Issue(ctx context.Context) (*models.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) Validate(ctx context.Context, candidate string) (*models.APIKey, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) List(ctx context.Context) ([]models.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPIKeyService) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLLMClient mocks the downstream chat-completion client
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Ask(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

// MockAdminService mocks the AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CheckSecret(candidate string) bool {
	args := m.Called(candidate)
	return args.Bool(0)
}

func (m *MockAdminService) GenerateToken() (*services.AdminToken, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AdminToken), args.Error(1)
}

func (m *MockAdminService) ValidateToken(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}
