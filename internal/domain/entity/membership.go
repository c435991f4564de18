package entity

import "time"

// Roles válidos para Membership. Conjunto fijo, sin roles dinámicos.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
	RoleDeliver = "deliver"
	RoleNone    = "" // sin membresía en el negocio activo
)

// ValidRole indica si s es uno de los roles del conjunto fijo.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleViewer, RoleDeliver:
		return true
	}
	return false
}

// Membership representa la relación usuario ↔ negocio con su rol.
// Invariante: un usuario tiene como máximo una membresía por negocio
// (constraint único (user_id, business_id) en la tabla memberships).
type Membership struct {
	ID         string
	UserID     string
	BusinessID string
	// Denormalizados del negocio para que el selector de negocio del
	// frontend no necesite una consulta adicional.
	BusinessName string
	BusinessLogo string
	Role         string // admin, manager, viewer, deliver
	Title        string // cargo opcional mostrado en el equipo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
