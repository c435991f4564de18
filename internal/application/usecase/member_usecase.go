package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// MemberUseCase gestión del equipo de un negocio (requiere canManageSettings).
type MemberUseCase struct {
	memRepo  repository.MembershipRepository
	userRepo repository.UserRepository
	bizRepo  repository.BusinessRepository
}

// NewMemberUseCase construye el caso de uso.
func NewMemberUseCase(memRepo repository.MembershipRepository, userRepo repository.UserRepository, bizRepo repository.BusinessRepository) *MemberUseCase {
	return &MemberUseCase{memRepo: memRepo, userRepo: userRepo, bizRepo: bizRepo}
}

// List lista el equipo del negocio con paginación.
func (uc *MemberUseCase) List(businessID string, limit, offset int) (*dto.MemberListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.memRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		item := dto.MemberResponse{
			ID:        m.ID,
			UserID:    m.UserID,
			Role:      m.Role,
			Title:     m.Title,
			CreatedAt: m.CreatedAt,
		}
		// Nombre/email/avatar del usuario para la tabla de equipo.
		if u, err := uc.userRepo.GetByID(m.UserID); err == nil && u != nil {
			item.Name = u.Name
			item.Email = u.Email
			item.ImageURL = u.ImageURL
		}
		items = append(items, item)
	}
	return &dto.MemberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Add incorpora a un usuario existente (por email) al negocio con el rol dado.
// Devuelve ErrUserNotFound si el email no está registrado y ErrDuplicate si ya
// es miembro (invariante: una membresía por usuario y negocio).
func (uc *MemberUseCase) Add(businessID string, in dto.AddMemberRequest) (*dto.MemberResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, _ := uc.memRepo.GetByUserAndBusiness(user.ID, businessID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	biz, err := uc.bizRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if biz == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	m := &entity.Membership{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		BusinessID:   businessID,
		BusinessName: biz.Name,
		BusinessLogo: biz.LogoURL,
		Role:         in.Role,
		Title:        in.Title,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.memRepo.Create(m); err != nil {
		return nil, err
	}
	return &dto.MemberResponse{
		ID:        m.ID,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		Role:      m.Role,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}, nil
}

// UpdateRole cambia rol y/o cargo de un miembro. Degradar al último admin
// dejaría el negocio sin administración: se rechaza con ErrLastAdmin.
func (uc *MemberUseCase) UpdateRole(businessID, membershipID string, in dto.UpdateMemberRequest) error {
	if !entity.ValidRole(in.Role) {
		return domain.ErrInvalidInput
	}
	m, err := uc.findInBusiness(businessID, membershipID)
	if err != nil {
		return err
	}
	if m.Role == entity.RoleAdmin && in.Role != entity.RoleAdmin {
		if err := uc.ensureNotLastAdmin(businessID); err != nil {
			return err
		}
	}
	return uc.memRepo.UpdateRole(membershipID, in.Role, in.Title)
}

// Remove quita a un miembro del negocio. El último admin no puede quitarse.
func (uc *MemberUseCase) Remove(businessID, membershipID string) error {
	m, err := uc.findInBusiness(businessID, membershipID)
	if err != nil {
		return err
	}
	if m.Role == entity.RoleAdmin {
		if err := uc.ensureNotLastAdmin(businessID); err != nil {
			return err
		}
	}
	return uc.memRepo.Delete(membershipID)
}

// findInBusiness localiza la membresía y verifica que pertenezca al negocio
// activo (una membresía de otro negocio es un 404, no un 403: no filtramos
// existencia de recursos ajenos).
func (uc *MemberUseCase) findInBusiness(businessID, membershipID string) (*entity.Membership, error) {
	list, err := uc.memRepo.ListByBusiness(businessID, 1000, 0)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		if m.ID == membershipID {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (uc *MemberUseCase) ensureNotLastAdmin(businessID string) error {
	n, err := uc.memRepo.CountByBusinessAndRole(businessID, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if n <= 1 {
		return domain.ErrLastAdmin
	}
	return nil
}
