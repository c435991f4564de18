package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación de MembershipRepository (usable con pool o tx).
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

const membershipSelect = `
	SELECT m.id, m.user_id, m.business_id, b.name, b.logo_url, m.role, m.title, m.created_at, m.updated_at
	FROM memberships m
	JOIN businesses b ON b.id = m.business_id`

// Create persiste una nueva membresía. El constraint único (user_id, business_id)
// protege la invariante de una membresía por usuario y negocio.
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, business_id, role, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.BusinessID, m.Role, m.Title, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByUserAndBusiness obtiene la membresía de un usuario en un negocio.
func (r *MembershipRepo) GetByUserAndBusiness(userID, businessID string) (*entity.Membership, error) {
	query := membershipSelect + ` WHERE m.user_id = $1 AND m.business_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(context.Background(), query, userID, businessID).Scan(
		&m.ID, &m.UserID, &m.BusinessID, &m.BusinessName, &m.BusinessLogo,
		&m.Role, &m.Title, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ListByUser lista las membresías de un usuario.
func (r *MembershipRepo) ListByUser(userID string) ([]*entity.Membership, error) {
	return r.list(membershipSelect+` WHERE m.user_id = $1 ORDER BY m.created_at`, userID)
}

// ListByBusiness lista el equipo de un negocio con paginación.
func (r *MembershipRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Membership, error) {
	query := membershipSelect + ` WHERE m.business_id = $1 ORDER BY m.created_at LIMIT $2 OFFSET $3`
	return r.list(query, businessID, limit, offset)
}

func (r *MembershipRepo) list(query string, args ...any) ([]*entity.Membership, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.BusinessID, &m.BusinessName, &m.BusinessLogo,
			&m.Role, &m.Title, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateRole cambia rol y cargo de una membresía.
func (r *MembershipRepo) UpdateRole(id, role, title string) error {
	query := `UPDATE memberships SET role = $2, title = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, role, title, time.Now())
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	return nil
}

// Delete elimina una membresía por ID.
func (r *MembershipRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}

// CountByBusinessAndRole cuenta membresías con el rol dado en el negocio.
func (r *MembershipRepo) CountByBusinessAndRole(businessID, role string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM memberships WHERE business_id = $1 AND role = $2`,
		businessID, role,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return n, nil
}
