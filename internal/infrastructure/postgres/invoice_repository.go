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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, business_id, client_id, prefix, number, date, due_date, status,
	net_total, tax_total, grand_total, notes, created_at, updated_at`

// Create persiste cabecera y líneas. Debe llamarse con un Querier
// transaccional: si falla una línea, la cabecera no debe quedar huérfana.
func (r *InvoiceRepo) Create(inv *entity.Invoice, lines []*entity.InvoiceLine) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.BusinessID, inv.ClientID, inv.Prefix, inv.Number, inv.Date, inv.DueDate,
		inv.Status, inv.NetTotal, inv.TaxTotal, inv.GrandTotal, inv.Notes,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	lineQuery := `
		INSERT INTO invoice_lines (id, invoice_id, item_id, name, quantity, unit_price, tax_rate, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, l := range lines {
		if _, err := r.q.Exec(ctx, lineQuery,
			l.ID, l.InvoiceID, l.ItemID, l.Name, l.Quantity, l.UnitPrice, l.TaxRate, l.Subtotal,
		); err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una factura.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.BusinessID, &inv.ClientID, &inv.Prefix, &inv.Number, &inv.Date,
		&inv.DueDate, &inv.Status, &inv.NetTotal, &inv.TaxTotal, &inv.GrandTotal,
		&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetLines obtiene las líneas de una factura en orden de inserción.
func (r *InvoiceRepo) GetLines(invoiceID string) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, item_id, name, quantity, unit_price, tax_rate, subtotal
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ItemID, &l.Name, &l.Quantity,
			&l.UnitPrice, &l.TaxRate, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// ListByBusiness lista facturas del negocio; status vacío = todas.
func (r *InvoiceRepo) ListByBusiness(businessID, status string, limit, offset int) ([]*entity.Invoice, error) {
	if status != "" {
		query := `
			SELECT ` + invoiceColumns + `
			FROM invoices WHERE business_id = $1 AND status = $2
			ORDER BY number DESC LIMIT $3 OFFSET $4`
		return r.list(query, businessID, status, limit, offset)
	}
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices WHERE business_id = $1
		ORDER BY number DESC LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

// ListByIDs obtiene las facturas indicadas que pertenecen al negocio. Devuelve
// solo las encontradas: el caso de uso compara longitudes para detectar IDs
// ajenos o inexistentes.
func (r *InvoiceRepo) ListByIDs(businessID string, ids []string) ([]*entity.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices WHERE business_id = $1 AND id = ANY($2)
		ORDER BY number`
	return r.list(query, businessID, ids)
}

// Search busca por número completo (prefijo+consecutivo) o notas.
func (r *InvoiceRepo) Search(businessID, q string, limit int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND (
			lower(prefix || number::text) LIKE '%' || $2 || '%'
			OR lower(unaccent(notes)) LIKE '%' || $2 || '%'
		)
		ORDER BY number DESC LIMIT $3`
	return r.list(query, businessID, q, limit)
}

func (r *InvoiceRepo) list(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.BusinessID, &inv.ClientID, &inv.Prefix, &inv.Number,
			&inv.Date, &inv.DueDate, &inv.Status, &inv.NetTotal, &inv.TaxTotal,
			&inv.GrandTotal, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una factura. Las transiciones válidas las
// valida el caso de uso; aquí solo se persiste.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	query := `UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// Delete elimina una factura y sus líneas (ON DELETE CASCADE en invoice_lines).
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// NextNumber asigna el siguiente consecutivo del negocio. El UPDATE sobre la
// fila de businesses serializa emisiones concurrentes dentro de la tx, así el
// consecutivo no se repite ni deja huecos.
func (r *InvoiceRepo) NextNumber(businessID string) (int64, error) {
	query := `
		UPDATE businesses SET invoice_seq = invoice_seq + 1
		WHERE id = $1
		RETURNING invoice_seq`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, businessID).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}
