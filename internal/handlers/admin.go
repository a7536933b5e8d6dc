package handlers

import (
	"context"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/zeusthug/zeus-api/internal/services"
	"github.com/zeusthug/zeus-api/pkg/dto"
)

type AdminHandler struct {
	adminService  AdminServiceInterface
	apiKeyService APIKeyServiceInterface
}

func NewAdminHandler(adminService AdminServiceInterface, apiKeyService APIKeyServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		apiKeyService: apiKeyService,
	}
}

func (h *AdminHandler) Login(c *drift.Context) {
	var req dto.AdminLoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if !h.adminService.CheckSecret(req.Secret) {
		c.Unauthorized("invalid admin secret")
		return
	}

	token, err := h.adminService.GenerateToken()
	if err != nil {
		c.InternalServerError("failed to generate token")
		return
	}

	_ = c.JSON(200, dto.AdminLoginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	})
}

func (h *AdminHandler) ListKeys(c *drift.Context) {
	keys, err := h.apiKeyService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list api keys")
		return
	}

	response := make([]dto.APIKeyInfo, len(keys))
	for i, k := range keys {
		response[i] = dto.APIKeyInfo{
			ID:                k.ID,
			CreatedAt:         k.CreatedAt.Format(time.RFC3339),
			ExpiresAt:         k.CreatedAt.Add(services.KeyExpirationDays * 24 * time.Hour).Format(time.RFC3339),
			LastRequestDate:   k.LastRequestDate,
			RequestCountToday: k.RequestCountToday,
		}
	}

	_ = c.JSON(200, response)
}

func (h *AdminHandler) DeleteKey(c *drift.Context) {
	key := c.Param("key")
	if key == "" {
		c.BadRequest("missing key")
		return
	}

	if err := h.apiKeyService.Delete(context.Background(), key); err != nil {
		if err == services.ErrInvalidAPIKey {
			c.NotFound("api key not found")
			return
		}
		c.InternalServerError("failed to delete api key")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "api key deleted"})
}
