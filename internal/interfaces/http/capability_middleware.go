package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain/access"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// HeaderBusinessID header con el negocio activo seleccionado en el frontend.
const HeaderBusinessID = "X-Business-ID"

// Locals keys que deja el middleware de capacidades.
const (
	localUser         = "current_user"
	localBusinessID   = "business_id"
	localCapabilities = "capabilities"
)

// userSource es el contrato mínimo que necesita el middleware para cargar el
// usuario con sus membresías. Lo implementa *postgres.UserRepo; la interfaz
// evita acoplar este paquete a la infraestructura.
type userSource interface {
	GetByID(id string) (*entity.User, error)
}

// WithCapabilities carga el usuario del token (con membresías), lee el negocio
// activo del header X-Business-ID y deriva sus capacidades. Debe ir DESPUÉS de
// AuthMiddleware. Las capacidades se recalculan en cada petición contra la DB:
// un cambio de rol aplica de inmediato, sin esperar a que expire el token.
//
// Sin header o sin membresía en ese negocio el conjunto queda vacío; son los
// guards RequireCapability/RequireBusiness los que deciden rechazar.
func WithCapabilities(users userSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "USER_LOAD_FAILED", Message: "no se pudo cargar el usuario, intente más tarde"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "el usuario del token ya no existe"})
		}

		businessID := c.Get(HeaderBusinessID)
		c.Locals(localUser, user)
		c.Locals(localBusinessID, businessID)
		c.Locals(localCapabilities, access.Resolve(user, businessID))
		return c.Next()
	}
}

// RequireBusiness exige header X-Business-ID con membresía del usuario en ese
// negocio. Debe ir después de WithCapabilities.
func RequireBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetBusinessID(c) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BUSINESS", Message: "header " + HeaderBusinessID + " requerido"})
		}
		user := GetUser(c)
		if user.MembershipFor(GetBusinessID(c)) == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin membresía en este negocio"})
		}
		return c.Next()
	}
}

// RequireCapability exige que el usuario tenga la capacidad seleccionada sobre
// el negocio activo. Debe ir después de WithCapabilities.
func RequireCapability(selector func(access.Capabilities) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !selector(GetCapabilities(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes para esta operación"})
		}
		return c.Next()
	}
}

// Selectores de capacidad para los guards de rutas.
var (
	CanManage          = func(cp access.Capabilities) bool { return cp.CanManage }
	CanManageSettings  = func(cp access.Capabilities) bool { return cp.CanManageSettings }
	CanDelete          = func(cp access.Capabilities) bool { return cp.CanDelete }
	CanViewFinancials  = func(cp access.Capabilities) bool { return cp.CanViewFinancials }
	CanManageLogistics = func(cp access.Capabilities) bool { return cp.CanManageLogistics }
)

// GetUser devuelve el usuario cargado por WithCapabilities (nil si no corrió).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetBusinessID devuelve el negocio activo del header (vacío si no vino).
func GetBusinessID(c *fiber.Ctx) string {
	v := c.Locals(localBusinessID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCapabilities devuelve las capacidades derivadas (conjunto vacío si no hay).
func GetCapabilities(c *fiber.Ctx) access.Capabilities {
	v := c.Locals(localCapabilities)
	if v == nil {
		return access.None
	}
	cp, _ := v.(access.Capabilities)
	return cp
}
