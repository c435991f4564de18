package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

// DeliveryNoteRepo implementación de DeliveryNoteRepository.
type DeliveryNoteRepo struct {
	q Querier
}

// NewDeliveryNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryNoteRepository(q Querier) *DeliveryNoteRepo {
	return &DeliveryNoteRepo{q: q}
}

const deliveryColumns = `id, business_id, client_id, number, date, status, address, notes,
	created_at, updated_at`

// Create persiste la remisión y sus vínculos a facturas. Debe llamarse con un
// Querier transaccional.
func (r *DeliveryNoteRepo) Create(note *entity.DeliveryNote) error {
	ctx := context.Background()
	query := `
		INSERT INTO delivery_notes (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		note.ID, note.BusinessID, note.ClientID, note.Number, note.Date, note.Status,
		note.Address, note.Notes, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery note: %w", err)
	}
	linkQuery := `INSERT INTO delivery_note_invoices (delivery_note_id, invoice_id) VALUES ($1, $2)`
	for _, invID := range note.InvoiceIDs {
		if _, err := r.q.Exec(ctx, linkQuery, note.ID, invID); err != nil {
			return fmt.Errorf("link delivery invoice: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una remisión con sus facturas vinculadas.
func (r *DeliveryNoteRepo) GetByID(id string) (*entity.DeliveryNote, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_notes WHERE id = $1`
	var n entity.DeliveryNote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.BusinessID, &n.ClientID, &n.Number, &n.Date, &n.Status,
		&n.Address, &n.Notes, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery note: %w", err)
	}
	if err := r.loadInvoiceIDs(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByBusiness lista remisiones del negocio; status vacío = todas.
func (r *DeliveryNoteRepo) ListByBusiness(businessID, status string, limit, offset int) ([]*entity.DeliveryNote, error) {
	var rows pgx.Rows
	var err error
	if status != "" {
		query := `
			SELECT ` + deliveryColumns + `
			FROM delivery_notes WHERE business_id = $1 AND status = $2
			ORDER BY number DESC LIMIT $3 OFFSET $4`
		rows, err = r.q.Query(context.Background(), query, businessID, status, limit, offset)
	} else {
		query := `
			SELECT ` + deliveryColumns + `
			FROM delivery_notes WHERE business_id = $1
			ORDER BY number DESC LIMIT $2 OFFSET $3`
		rows, err = r.q.Query(context.Background(), query, businessID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryNote
	for rows.Next() {
		var n entity.DeliveryNote
		if err := rows.Scan(&n.ID, &n.BusinessID, &n.ClientID, &n.Number, &n.Date, &n.Status,
			&n.Address, &n.Notes, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery note: %w", err)
		}
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, n := range list {
		if err := r.loadInvoiceIDs(n); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *DeliveryNoteRepo) loadInvoiceIDs(n *entity.DeliveryNote) error {
	query := `SELECT invoice_id FROM delivery_note_invoices WHERE delivery_note_id = $1`
	rows, err := r.q.Query(context.Background(), query, n.ID)
	if err != nil {
		return fmt.Errorf("list delivery invoices: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan delivery invoice: %w", err)
		}
		n.InvoiceIDs = append(n.InvoiceIDs, id)
	}
	return rows.Err()
}

// UpdateStatus cambia el estado de la remisión.
func (r *DeliveryNoteRepo) UpdateStatus(id, status string) error {
	query := `UPDATE delivery_notes SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	return nil
}

// Delete elimina una remisión y sus vínculos (ON DELETE CASCADE).
func (r *DeliveryNoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM delivery_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete delivery note: %w", err)
	}
	return nil
}

// NextNumber asigna el siguiente consecutivo de remisión del negocio, con la
// misma serialización por fila que el consecutivo de facturas.
func (r *DeliveryNoteRepo) NextNumber(businessID string) (int64, error) {
	query := `
		UPDATE businesses SET delivery_seq = delivery_seq + 1
		WHERE id = $1
		RETURNING delivery_seq`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, businessID).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("next delivery number: %w", err)
	}
	return n, nil
}
