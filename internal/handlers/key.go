package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/zeusthug/zeus-api/internal/services"
	"github.com/zeusthug/zeus-api/pkg/dto"
)

type KeyHandler struct {
	apiKeyService APIKeyServiceInterface
}

func NewKeyHandler(apiKeyService APIKeyServiceInterface) *KeyHandler {
	return &KeyHandler{apiKeyService: apiKeyService}
}

// Create issues a new API key. The plaintext key is only ever returned here.
func (h *KeyHandler) Create(c *drift.Context) {
	apiKey, err := h.apiKeyService.Issue(context.Background())
	if err != nil {
		log.Printf("failed to issue api key: %v", err)
		_ = c.JSON(503, dto.ErrorResponse{Detail: "Service temporarily unavailable."})
		return
	}

	_ = c.JSON(200, dto.KeyCreationResponse{
		APIKey: apiKey.Key,
		Detail: fmt.Sprintf("Key created successfully. It will expire in %d days.", services.KeyExpirationDays),
	})
}
