package entity

import "time"

// User representa un usuario del sistema. Un usuario puede pertenecer a varios
// negocios; la relación con cada uno se modela en Membership.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Language     string // código ISO 639-1 del idioma preferido (es, en, ...)
	ImageURL     string // avatar opcional
	Verified     bool   // email verificado
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Memberships cargadas junto con el usuario (una por negocio como máximo).
	Memberships []Membership
}

// MembershipFor devuelve la membresía del usuario en el negocio indicado,
// o nil si no pertenece a él.
func (u *User) MembershipFor(businessID string) *Membership {
	if u == nil || businessID == "" {
		return nil
	}
	for i := range u.Memberships {
		if u.Memberships[i].BusinessID == businessID {
			return &u.Memberships[i]
		}
	}
	return nil
}
