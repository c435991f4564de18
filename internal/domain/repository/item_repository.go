package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Item, error)
	Search(businessID, q string, limit int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	// AdjustStock descuenta (delta negativo) o repone (positivo) stock de un
	// item con TrackStock. Devuelve domain.ErrInsufficientStock si el
	// resultado quedaría negativo.
	AdjustStock(id string, delta decimal.Decimal) error
}
