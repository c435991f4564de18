package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// MembershipRepository define el puerto de persistencia para Membership.
type MembershipRepository interface {
	Create(m *entity.Membership) error
	GetByUserAndBusiness(userID, businessID string) (*entity.Membership, error)
	ListByUser(userID string) ([]*entity.Membership, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Membership, error)
	UpdateRole(id, role, title string) error
	Delete(id string) error
	// CountByBusinessAndRole cuenta membresías con un rol dado en el negocio
	// (protege la invariante de "último admin").
	CountByBusinessAndRole(businessID, role string) (int, error)
}
