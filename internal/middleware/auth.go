package middleware

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
)

// AdminTokenValidator defines the methods used by the admin auth middleware
type AdminTokenValidator interface {
	ValidateToken(tokenString string) error
}

func AdminAuth(adminService AdminTokenValidator) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		if err := adminService.ValidateToken(parts[1]); err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Next()
	}
}
