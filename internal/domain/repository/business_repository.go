package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business.
type BusinessRepository interface {
	Create(b *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	Update(b *entity.Business) error
	ListByUser(userID string) ([]*entity.Business, error)
}
