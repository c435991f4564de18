package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// DeliveryNoteRepository define el puerto de persistencia para DeliveryNote.
type DeliveryNoteRepository interface {
	// Create persiste la remisión y sus vínculos a facturas (dentro de una tx).
	Create(note *entity.DeliveryNote) error
	GetByID(id string) (*entity.DeliveryNote, error)
	ListByBusiness(businessID, status string, limit, offset int) ([]*entity.DeliveryNote, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	NextNumber(businessID string) (int64, error)
}
