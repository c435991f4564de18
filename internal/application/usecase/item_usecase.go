package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/application/search"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/money"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ItemUseCase casos de uso para items (productos/servicios facturables).
type ItemUseCase struct {
	repo    repository.ItemRepository
	bizRepo repository.BusinessRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, bizRepo repository.BusinessRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, bizRepo: bizRepo}
}

// Create crea un item. Sin tasa de impuesto explícita se aplica la del negocio.
func (uc *ItemUseCase) Create(businessID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	biz, err := uc.bizRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, domain.ErrNotFound
	}
	taxRate := biz.DefaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		TaxRate:     taxRate,
		Unit:        in.Unit,
		TrackStock:  in.TrackStock,
		Stock:       in.Stock,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item, biz), nil
}

// GetByID obtiene un item verificando pertenencia al negocio activo.
func (uc *ItemUseCase) GetByID(businessID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	biz, _ := uc.bizRepo.GetByID(businessID)
	return uc.toResponse(item, biz), nil
}

// List lista items del negocio con paginación.
func (uc *ItemUseCase) List(businessID string, limit, offset int) (*dto.ItemListResponse, error) {
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
	biz, _ := uc.bizRepo.GetByID(businessID)
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *uc.toResponse(it, biz))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca items por nombre/descripción (término normalizado sin acentos).
func (uc *ItemUseCase) Search(businessID, q string, limit int) ([]dto.ItemResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	list, err := uc.repo.Search(businessID, search.Normalize(q), limit)
	if err != nil {
		return nil, err
	}
	biz, _ := uc.bizRepo.GetByID(businessID)
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *uc.toResponse(it, biz))
	}
	return items, nil
}

// Update actualiza un item (punteros nil = sin cambio).
func (uc *ItemUseCase) Update(businessID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.TrackStock != nil {
		item.TrackStock = *in.TrackStock
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Status != "" {
		item.Status = in.Status
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	biz, _ := uc.bizRepo.GetByID(businessID)
	return uc.toResponse(item, biz), nil
}

// Delete elimina un item (requiere canDelete).
func (uc *ItemUseCase) Delete(businessID, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil || item.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// toResponse mapea el item con el precio ya formateado según el negocio.
func (uc *ItemUseCase) toResponse(it *entity.Item, biz *entity.Business) *dto.ItemResponse {
	display := ""
	if biz != nil {
		display = money.FormatAmount(it.UnitPrice, biz.Currency, &biz.CurrencyFormat)
	}
	return &dto.ItemResponse{
		ID:               it.ID,
		BusinessID:       it.BusinessID,
		Name:             it.Name,
		Description:      it.Description,
		UnitPrice:        it.UnitPrice,
		UnitPriceDisplay: display,
		TaxRate:          it.TaxRate,
		Unit:             it.Unit,
		TrackStock:       it.TrackStock,
		Stock:            it.Stock,
		Status:           it.Status,
	}
}
