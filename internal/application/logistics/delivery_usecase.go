// Package logistics implementa las remisiones (notas de entrega): el flujo de
// trabajo del rol deliver. Una remisión agrupa facturas de un cliente en un
// envío y se marca como entregada al completarse.
package logistics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// DeliveryTxRunner ejecuta la creación de remisión (consecutivo + vínculos) en una tx.
type DeliveryTxRunner interface {
	RunDelivery(ctx context.Context, fn func(noteRepo repository.DeliveryNoteRepository) error) error
}

// DeliveryUseCase casos de uso de remisiones.
type DeliveryUseCase struct {
	txRunner    DeliveryTxRunner
	noteRepo    repository.DeliveryNoteRepository
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	txRunner DeliveryTxRunner,
	noteRepo repository.DeliveryNoteRepository,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		txRunner:    txRunner,
		noteRepo:    noteRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// Create crea una remisión agrupando facturas del cliente. Todas las facturas
// deben existir, ser del negocio activo y del mismo cliente.
func (uc *DeliveryUseCase) Create(ctx context.Context, businessID string, in dto.CreateDeliveryNoteRequest) (*dto.DeliveryNoteResponse, error) {
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	invoices, err := uc.invoiceRepo.ListByIDs(businessID, in.InvoiceIDs)
	if err != nil {
		return nil, err
	}
	if len(invoices) != len(in.InvoiceIDs) {
		return nil, domain.ErrNotFound // alguna factura no existe o es de otro negocio
	}
	for _, inv := range invoices {
		if inv.ClientID != in.ClientID {
			return nil, domain.ErrConflict
		}
		if inv.Status == entity.InvoiceStatusCancelled {
			return nil, domain.ErrConflict
		}
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		if d, err := time.Parse("2006-01-02", in.Date); err == nil {
			date = d
		}
	}
	address := in.Address
	if address == "" {
		address = client.Address
	}
	note := &entity.DeliveryNote{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ClientID:   in.ClientID,
		Date:       date,
		Status:     entity.DeliveryStatusPending,
		Address:    address,
		Notes:      in.Notes,
		InvoiceIDs: in.InvoiceIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.RunDelivery(ctx, func(noteRepo repository.DeliveryNoteRepository) error {
		number, err := noteRepo.NextNumber(businessID)
		if err != nil {
			return err
		}
		note.Number = number
		return noteRepo.Create(note)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(note, client.Name), nil
}

// GetByID obtiene una remisión verificando pertenencia al negocio.
func (uc *DeliveryUseCase) GetByID(businessID, id string) (*dto.DeliveryNoteResponse, error) {
	note, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if c, err := uc.clientRepo.GetByID(note.ClientID); err == nil && c != nil {
		clientName = c.Name
	}
	return uc.toResponse(note, clientName), nil
}

// List lista remisiones; status vacío = todas.
func (uc *DeliveryUseCase) List(businessID, status string, limit, offset int) (*dto.DeliveryNoteListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.noteRepo.ListByBusiness(businessID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryNoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *uc.toResponse(n, ""))
	}
	return &dto.DeliveryNoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkDelivered marca la remisión como entregada. Idempotente: marcar dos
// veces no es error.
func (uc *DeliveryUseCase) MarkDelivered(businessID, id string) error {
	note, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return err
	}
	if note.Status == entity.DeliveryStatusDelivered {
		return nil
	}
	return uc.noteRepo.UpdateStatus(id, entity.DeliveryStatusDelivered)
}

// Delete elimina una remisión pendiente (requiere canDelete).
func (uc *DeliveryUseCase) Delete(businessID, id string) error {
	note, err := uc.findInBusiness(businessID, id)
	if err != nil {
		return err
	}
	if note.Status == entity.DeliveryStatusDelivered {
		return domain.ErrConflict
	}
	return uc.noteRepo.Delete(id)
}

func (uc *DeliveryUseCase) findInBusiness(businessID, id string) (*entity.DeliveryNote, error) {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil || note.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return note, nil
}

func (uc *DeliveryUseCase) toResponse(n *entity.DeliveryNote, clientName string) *dto.DeliveryNoteResponse {
	return &dto.DeliveryNoteResponse{
		ID:         n.ID,
		BusinessID: n.BusinessID,
		ClientID:   n.ClientID,
		ClientName: clientName,
		Number:     n.Number,
		Date:       n.Date.Format("2006-01-02"),
		Status:     n.Status,
		Address:    n.Address,
		Notes:      n.Notes,
		InvoiceIDs: n.InvoiceIDs,
	}
}
