package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByBusinessAndTaxID(businessID, taxID string) (*entity.Client, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Client, error)
	// Search busca por nombre/NIT/email. q llega ya normalizado
	// (minúsculas, sin acentos) por la capa de aplicación.
	Search(businessID, q string, limit int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
