package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/search"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes del negocio.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente. Devuelve ErrDuplicate si ya existe uno con el
// mismo documento fiscal en el negocio.
func (uc *ClientUseCase) Create(businessID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, _ := uc.repo.GetByBusinessAndTaxID(businessID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		TaxID:      in.TaxID,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// GetByID obtiene un cliente verificando que pertenezca al negocio activo.
func (uc *ClientUseCase) GetByID(businessID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return ToClientResponse(client), nil
}

// List lista clientes del negocio con paginación.
func (uc *ClientUseCase) List(businessID string, limit, offset int) (*dto.ClientListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca clientes por nombre/NIT/email (picker de cliente del frontend,
// que hace debounce antes de llamar). La consulta se normaliza sin acentos.
func (uc *ClientUseCase) Search(businessID, q string, limit int) ([]dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	list, err := uc.repo.Search(businessID, search.Normalize(q), limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToClientResponse(c))
	}
	return items, nil
}

// Update actualiza un cliente (campos vacíos no se tocan).
func (uc *ClientUseCase) Update(businessID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	if in.TaxID != "" {
		client.TaxID = in.TaxID
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	if in.Address != "" {
		client.Address = in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// Delete elimina un cliente del negocio (requiere canDelete).
func (uc *ClientUseCase) Delete(businessID, id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil || client.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToClientResponse mapea la entidad a DTO.
func ToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		TaxID:      c.TaxID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}
