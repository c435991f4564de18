package billing

import (
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// InvoiceUseCase consultas y cambios de estado de facturas ya emitidas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	bizRepo     repository.BusinessRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository, bizRepo repository.BusinessRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, bizRepo: bizRepo}
}

// GetByID obtiene una factura con líneas, verificando pertenencia al negocio.
func (uc *InvoiceUseCase) GetByID(businessID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return nil, err
	}
	lines, err := uc.invoiceRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if c, err := uc.clientRepo.GetByID(inv.ClientID); err == nil && c != nil {
		clientName = c.Name
	}
	biz, _ := uc.bizRepo.GetByID(businessID)
	return toInvoiceResponse(inv, lines, clientName, biz), nil
}

// List lista facturas del negocio; status vacío = todas.
func (uc *InvoiceUseCase) List(businessID, status string, limit, offset int) (*dto.InvoiceListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if status != "" && !entity.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invoiceRepo.ListByBusiness(businessID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	biz, _ := uc.bizRepo.GetByID(businessID)
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		// Listado sin líneas: el detalle se pide por id.
		items = append(items, *toInvoiceResponse(inv, nil, "", biz))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de la factura. Transiciones permitidas:
// draft→sent|cancelled, sent→paid|cancelled. paid y cancelled son terminales.
func (uc *InvoiceUseCase) UpdateStatus(businessID, id, status string) error {
	if !entity.ValidInvoiceStatus(status) {
		return domain.ErrInvalidInput
	}
	inv, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return err
	}
	if !transitionAllowed(inv.Status, status) {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.UpdateStatus(id, status)
}

// Delete elimina una factura. Solo borradores: una factura emitida se cancela,
// no se borra (el consecutivo ya quedó asignado).
func (uc *InvoiceUseCase) Delete(businessID, id string) error {
	inv, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return err
	}
	if inv.Status != entity.InvoiceStatusDraft {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.Delete(id)
}

func (uc *InvoiceUseCase) findInBusiness(businessID, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case entity.InvoiceStatusDraft:
		return to == entity.InvoiceStatusSent || to == entity.InvoiceStatusCancelled
	case entity.InvoiceStatusSent:
		return to == entity.InvoiceStatusPaid || to == entity.InvoiceStatusCancelled
	}
	return false
}
