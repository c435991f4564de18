package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, business_id, name, description, unit_price, tax_rate, unit,
	track_stock, stock, status, created_at, updated_at`

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BusinessID, item.Name, item.Description, item.UnitPrice, item.TaxRate,
		item.Unit, item.TrackStock, item.Stock, item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.BusinessID, &it.Name, &it.Description, &it.UnitPrice, &it.TaxRate,
		&it.Unit, &it.TrackStock, &it.Stock, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByBusiness lista items del negocio con paginación.
func (r *ItemRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE business_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

// Search busca por nombre o descripción (término normalizado; unaccent en SQL).
func (r *ItemRepo) Search(businessID, q string, limit int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE business_id = $1 AND (
			lower(unaccent(name)) LIKE '%' || $2 || '%'
			OR lower(unaccent(description)) LIKE '%' || $2 || '%'
		)
		ORDER BY name LIMIT $3`
	return r.list(query, businessID, q, limit)
}

func (r *ItemRepo) list(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.BusinessID, &it.Name, &it.Description, &it.UnitPrice,
			&it.TaxRate, &it.Unit, &it.TrackStock, &it.Stock, &it.Status,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un item.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, unit_price = $4, tax_rate = $5,
			unit = $6, track_stock = $7, stock = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.UnitPrice, item.TaxRate,
		item.Unit, item.TrackStock, item.Stock, item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// AdjustStock aplica delta al stock con guardia en el UPDATE: si no hay stock
// suficiente, ninguna fila coincide y se reporta ErrInsufficientStock sin
// ventana de carrera (se llama dentro de la tx de facturación).
func (r *ItemRepo) AdjustStock(id string, delta decimal.Decimal) error {
	query := `
		UPDATE items SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
