package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/pkg/jwt"
)

// Locals keys que deja el middleware de auth en el contexto Fiber.
const (
	LocalUserID      = "user_id"
	LocalJTI         = "jti"
	LocalTokenExpiry = "token_expiry"
)

// AuthMiddleware valida el Bearer Token JWT, consulta la blacklist de tokens
// revocados (blacklist nil = deshabilitada) y deja user_id, jti y expiración
// en c.Locals. El negocio activo NO viene en el token: llega por header
// X-Business-ID y lo resuelve el middleware de capacidades.
func AuthMiddleware(jwtSecret string, blacklist auth.TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Context(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BLACKLIST_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_REVOKED", Message: "sesión cerrada, inicie sesión de nuevo"})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExpiry, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetJTI devuelve el jti del token actual (para revocarlo en logout).
func GetJTI(c *fiber.Ctx) string {
	v := c.Locals(LocalJTI)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTokenExpiry devuelve la expiración del token actual (cero si no hay).
func GetTokenExpiry(c *fiber.Ctx) time.Time {
	v := c.Locals(LocalTokenExpiry)
	if v == nil {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}
