package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// GetByID y FindByEmail devuelven el usuario con sus membresías cargadas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
