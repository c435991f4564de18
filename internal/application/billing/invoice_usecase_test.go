package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	repository.InvoiceRepository
	invoices map[string]*entity.Invoice
	updated  map[string]string // id → último estado persistido
	deleted  []string
}

func newFakeInvoiceRepo(invs ...*entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		updated:  make(map[string]string),
	}
	for _, inv := range invs {
		r.invoices[inv.ID] = inv
	}
	return r
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	r.updated[id] = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeBizRepo struct {
	repository.BusinessRepository
}

func (r *fakeBizRepo) GetByID(string) (*entity.Business, error) { return nil, nil }

type fakeClientRepo struct {
	repository.ClientRepository
}

func (r *fakeClientRepo) GetByID(string) (*entity.Client, error) { return nil, nil }

func invoiceWith(id, businessID, status string) *entity.Invoice {
	return &entity.Invoice{ID: id, BusinessID: businessID, Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_Transiciones(t *testing.T) {
	const bizID = "b1"
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"borrador se puede enviar", entity.InvoiceStatusDraft, entity.InvoiceStatusSent, nil},
		{"borrador se puede anular", entity.InvoiceStatusDraft, entity.InvoiceStatusCancelled, nil},
		{"enviada se puede pagar", entity.InvoiceStatusSent, entity.InvoiceStatusPaid, nil},
		{"enviada se puede anular", entity.InvoiceStatusSent, entity.InvoiceStatusCancelled, nil},
		{"mismo estado es no-op permitido", entity.InvoiceStatusSent, entity.InvoiceStatusSent, nil},
		{"borrador no salta a pagada", entity.InvoiceStatusDraft, entity.InvoiceStatusPaid, domain.ErrConflict},
		{"pagada es terminal", entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled, domain.ErrConflict},
		{"anulada es terminal", entity.InvoiceStatusCancelled, entity.InvoiceStatusSent, domain.ErrConflict},
		{"enviada no vuelve a borrador", entity.InvoiceStatusSent, entity.InvoiceStatusDraft, domain.ErrConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeInvoiceRepo(invoiceWith("f1", bizID, tc.from))
			uc := NewInvoiceUseCase(repo, &fakeClientRepo{}, &fakeBizRepo{})

			err := uc.UpdateStatus(bizID, "f1", tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.updated, "una transición rechazada no debe persistir nada")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, repo.updated["f1"])
		})
	}
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	repo := newFakeInvoiceRepo(invoiceWith("f1", "b1", entity.InvoiceStatusDraft))
	uc := NewInvoiceUseCase(repo, &fakeClientRepo{}, &fakeBizRepo{})

	err := uc.UpdateStatus("b1", "f1", "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_FacturaDeOtroNegocio(t *testing.T) {
	repo := newFakeInvoiceRepo(invoiceWith("f1", "otro-negocio", entity.InvoiceStatusDraft))
	uc := NewInvoiceUseCase(repo, &fakeClientRepo{}, &fakeBizRepo{})

	// Facturas ajenas se reportan como inexistentes, no como prohibidas.
	err := uc.UpdateStatus("b1", "f1", entity.InvoiceStatusSent)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_SoloBorradores(t *testing.T) {
	const bizID = "b1"
	tests := []struct {
		status  string
		wantErr error
	}{
		{entity.InvoiceStatusDraft, nil},
		{entity.InvoiceStatusSent, domain.ErrConflict},
		{entity.InvoiceStatusPaid, domain.ErrConflict},
		{entity.InvoiceStatusCancelled, domain.ErrConflict},
	}
	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			repo := newFakeInvoiceRepo(invoiceWith("f1", bizID, tc.status))
			uc := NewInvoiceUseCase(repo, &fakeClientRepo{}, &fakeBizRepo{})

			err := uc.Delete(bizID, "f1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.deleted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"f1"}, repo.deleted)
		})
	}
}

func TestDelete_FacturaInexistente(t *testing.T) {
	uc := NewInvoiceUseCase(newFakeInvoiceRepo(), &fakeClientRepo{}, &fakeBizRepo{})
	assert.ErrorIs(t, uc.Delete("b1", "no-existe"), domain.ErrNotFound)
}
