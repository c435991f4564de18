package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository (usable con pool o tx).
// El formato de moneda se persiste en columnas planas (fmt_*): son cinco
// campos estables, no vale la pena JSONB.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, email, phone, address, logo_url, currency,
	fmt_display, fmt_position, fmt_digits, fmt_group_sep, fmt_decimal_sep,
	default_tax_rate, status, created_at, updated_at`

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(b *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Email, b.Phone, b.Address, b.LogoURL, b.Currency,
		b.CurrencyFormat.Display, b.CurrencyFormat.Position, b.CurrencyFormat.Digits,
		b.CurrencyFormat.GroupSep, b.CurrencyFormat.DecimalSep,
		b.DefaultTaxRate, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	var b entity.Business
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.LogoURL, &b.Currency,
		&b.CurrencyFormat.Display, &b.CurrencyFormat.Position, &b.CurrencyFormat.Digits,
		&b.CurrencyFormat.GroupSep, &b.CurrencyFormat.DecimalSep,
		&b.DefaultTaxRate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// Update actualiza datos y configuración del negocio.
func (r *BusinessRepo) Update(b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, email = $3, phone = $4, address = $5, logo_url = $6,
			currency = $7, fmt_display = $8, fmt_position = $9, fmt_digits = $10,
			fmt_group_sep = $11, fmt_decimal_sep = $12, default_tax_rate = $13,
			status = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Email, b.Phone, b.Address, b.LogoURL,
		b.Currency, b.CurrencyFormat.Display, b.CurrencyFormat.Position, b.CurrencyFormat.Digits,
		b.CurrencyFormat.GroupSep, b.CurrencyFormat.DecimalSep, b.DefaultTaxRate,
		b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// ListByUser lista los negocios donde el usuario tiene membresía.
func (r *BusinessRepo) ListByUser(userID string) ([]*entity.Business, error) {
	query := `
		SELECT b.id, b.name, b.email, b.phone, b.address, b.logo_url, b.currency,
			b.fmt_display, b.fmt_position, b.fmt_digits, b.fmt_group_sep, b.fmt_decimal_sep,
			b.default_tax_rate, b.status, b.created_at, b.updated_at
		FROM businesses b
		JOIN memberships m ON m.business_id = b.id
		WHERE m.user_id = $1
		ORDER BY b.name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address, &b.LogoURL, &b.Currency,
			&b.CurrencyFormat.Display, &b.CurrencyFormat.Position, &b.CurrencyFormat.Digits,
			&b.CurrencyFormat.GroupSep, &b.CurrencyFormat.DecimalSep,
			&b.DefaultTaxRate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
