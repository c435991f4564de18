package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMembershipRepo struct {
	memberships []*entity.Membership
	updated     map[string]string // id → rol persistido
	deleted     []string
}

var _ repository.MembershipRepository = (*fakeMembershipRepo)(nil)

func newFakeMembershipRepo(ms ...*entity.Membership) *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: ms, updated: make(map[string]string)}
}

func (r *fakeMembershipRepo) Create(m *entity.Membership) error {
	r.memberships = append(r.memberships, m)
	return nil
}

func (r *fakeMembershipRepo) GetByUserAndBusiness(userID, businessID string) (*entity.Membership, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.BusinessID == businessID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) ListByUser(userID string) ([]*entity.Membership, error) {
	var list []*entity.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *fakeMembershipRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Membership, error) {
	var list []*entity.Membership
	for _, m := range r.memberships {
		if m.BusinessID == businessID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *fakeMembershipRepo) UpdateRole(id, role, title string) error {
	r.updated[id] = role
	return nil
}

func (r *fakeMembershipRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeMembershipRepo) CountByBusinessAndRole(businessID, role string) (int, error) {
	n := 0
	for _, m := range r.memberships {
		if m.BusinessID == businessID && m.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(*entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) Update(*entity.User) error { return nil }

type stubBizRepo struct {
	repository.BusinessRepository
	biz *entity.Business
}

func (r *stubBizRepo) GetByID(string) (*entity.Business, error) { return r.biz, nil }

func membership(id, userID, businessID, role string) *entity.Membership {
	return &entity.Membership{
		ID: id, UserID: userID, BusinessID: businessID, Role: role,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — invariante del último admin
// ──────────────────────────────────────────────────────────────────────────────

const bizID = "b1"

func TestUpdateRole_DegradarUltimoAdmin_Rechazado(t *testing.T) {
	memRepo := newFakeMembershipRepo(
		membership("m1", "u1", bizID, entity.RoleAdmin),
		membership("m2", "u2", bizID, entity.RoleViewer),
	)
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	err := uc.UpdateRole(bizID, "m1", dto.UpdateMemberRequest{Role: entity.RoleManager})
	assert.ErrorIs(t, err, domain.ErrLastAdmin,
		"degradar al único admin dejaría el negocio sin administración")
	assert.Empty(t, memRepo.updated)
}

func TestUpdateRole_DegradarAdmin_ConOtroAdmin_Permitido(t *testing.T) {
	memRepo := newFakeMembershipRepo(
		membership("m1", "u1", bizID, entity.RoleAdmin),
		membership("m2", "u2", bizID, entity.RoleAdmin),
	)
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	require.NoError(t, uc.UpdateRole(bizID, "m1", dto.UpdateMemberRequest{Role: entity.RoleViewer}))
	assert.Equal(t, entity.RoleViewer, memRepo.updated["m1"])
}

func TestUpdateRole_AdminSigueAdmin_NoConsultaInvariante(t *testing.T) {
	// Cambiar solo el título manteniendo rol admin no dispara la protección.
	memRepo := newFakeMembershipRepo(membership("m1", "u1", bizID, entity.RoleAdmin))
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	require.NoError(t, uc.UpdateRole(bizID, "m1", dto.UpdateMemberRequest{Role: entity.RoleAdmin, Title: "CEO"}))
	assert.Equal(t, entity.RoleAdmin, memRepo.updated["m1"])
}

func TestRemove_UltimoAdmin_Rechazado(t *testing.T) {
	memRepo := newFakeMembershipRepo(
		membership("m1", "u1", bizID, entity.RoleAdmin),
		membership("m2", "u2", bizID, entity.RoleManager),
	)
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	assert.ErrorIs(t, uc.Remove(bizID, "m1"), domain.ErrLastAdmin)
	assert.Empty(t, memRepo.deleted)
}

func TestRemove_NoAdmin_Permitido(t *testing.T) {
	memRepo := newFakeMembershipRepo(
		membership("m1", "u1", bizID, entity.RoleAdmin),
		membership("m2", "u2", bizID, entity.RoleDeliver),
	)
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	require.NoError(t, uc.Remove(bizID, "m2"))
	assert.Equal(t, []string{"m2"}, memRepo.deleted)
}

func TestUpdateRole_MembresiaDeOtroNegocio_NotFound(t *testing.T) {
	memRepo := newFakeMembershipRepo(membership("m1", "u1", "otro-negocio", entity.RoleAdmin))
	uc := NewMemberUseCase(memRepo, &fakeUserRepo{}, &stubBizRepo{})

	err := uc.UpdateRole(bizID, "m1", dto.UpdateMemberRequest{Role: entity.RoleViewer})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — alta de integrantes
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_UsuarioExistente(t *testing.T) {
	memRepo := newFakeMembershipRepo()
	users := &fakeUserRepo{users: map[string]*entity.User{
		"ana@ejemplo.com": {ID: "u9", Name: "Ana", Email: "ana@ejemplo.com"},
	}}
	uc := NewMemberUseCase(memRepo, users, &stubBizRepo{biz: &entity.Business{ID: bizID, Name: "Mi Negocio"}})

	out, err := uc.Add(bizID, dto.AddMemberRequest{Email: "ana@ejemplo.com", Role: entity.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "u9", out.UserID)
	assert.Equal(t, entity.RoleManager, out.Role)
	require.Len(t, memRepo.memberships, 1)
	assert.Equal(t, "Mi Negocio", memRepo.memberships[0].BusinessName,
		"la membresía denormaliza el nombre del negocio")
}

func TestAdd_EmailNoRegistrado(t *testing.T) {
	uc := NewMemberUseCase(newFakeMembershipRepo(), &fakeUserRepo{}, &stubBizRepo{})

	_, err := uc.Add(bizID, dto.AddMemberRequest{Email: "nadie@ejemplo.com", Role: entity.RoleViewer})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdd_YaEsMiembro(t *testing.T) {
	memRepo := newFakeMembershipRepo(membership("m1", "u9", bizID, entity.RoleViewer))
	users := &fakeUserRepo{users: map[string]*entity.User{
		"ana@ejemplo.com": {ID: "u9", Email: "ana@ejemplo.com"},
	}}
	uc := NewMemberUseCase(memRepo, users, &stubBizRepo{biz: &entity.Business{ID: bizID}})

	_, err := uc.Add(bizID, dto.AddMemberRequest{Email: "ana@ejemplo.com", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAdd_RolInvalido(t *testing.T) {
	uc := NewMemberUseCase(newFakeMembershipRepo(), &fakeUserRepo{}, &stubBizRepo{})

	_, err := uc.Add(bizID, dto.AddMemberRequest{Email: "ana@ejemplo.com", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
