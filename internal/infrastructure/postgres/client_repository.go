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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, business_id, name, tax_id, email, phone, address, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.BusinessID, client.Name, client.TaxID,
		client.Email, client.Phone, client.Address, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByBusinessAndTaxID obtiene un cliente por negocio y documento fiscal.
func (r *ClientRepo) GetByBusinessAndTaxID(businessID, taxID string) (*entity.Client, error) {
	return r.getBy(`WHERE business_id = $1 AND tax_id = $2`, businessID, taxID)
}

func (r *ClientRepo) getBy(where string, args ...any) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ` + where
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByBusiness lista clientes del negocio con paginación.
func (r *ClientRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE business_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

// Search busca por nombre, NIT o email. q llega normalizado (minúsculas, sin
// acentos); el lado SQL usa unaccent para comparar igual (extensión unaccent
// habilitada en la migración base).
func (r *ClientRepo) Search(businessID, q string, limit int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE business_id = $1 AND (
			lower(unaccent(name)) LIKE '%' || $2 || '%'
			OR lower(tax_id) LIKE '%' || $2 || '%'
			OR lower(email) LIKE '%' || $2 || '%'
		)
		ORDER BY name LIMIT $3`
	return r.list(query, businessID, q, limit)
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.TaxID, &c.Email, &c.Phone,
			&c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, tax_id = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.TaxID, client.Email, client.Phone, client.Address, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
