package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/billing-pro/internal/domain/access"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

const (
	bizA = "00000000-0000-0000-0000-00000000000a"
	bizB = "00000000-0000-0000-0000-00000000000b"
	bizC = "00000000-0000-0000-0000-00000000000c"
)

func userWith(memberships ...entity.Membership) *entity.User {
	return &entity.User{
		ID:          "00000000-0000-0000-0000-000000000001",
		Email:       "ana@example.com",
		Memberships: memberships,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de derivación rol → capacidades. Debe reproducirse exacta: un cambio
// aquí es un cambio de política de permisos, no un refactor.
// ──────────────────────────────────────────────────────────────────────────────

func TestFromRole_TablaCompleta(t *testing.T) {
	cases := []struct {
		role string
		want access.Capabilities
	}{
		{entity.RoleAdmin, access.Capabilities{
			CanManage:          true,
			CanManageSettings:  true,
			CanDelete:          true,
			CanViewFinancials:  true,
			CanManageLogistics: true,
		}},
		{entity.RoleManager, access.Capabilities{
			CanManage:          true,
			CanViewFinancials:  true,
			CanManageLogistics: true,
		}},
		{entity.RoleViewer, access.Capabilities{
			CanViewFinancials: true,
		}},
		{entity.RoleDeliver, access.Capabilities{
			CanManageLogistics: true,
		}},
		{entity.RoleNone, access.None},
		{"superuser", access.None}, // rol desconocido: sin permisos
	}
	for _, tc := range cases {
		got := access.FromRole(tc.role)
		assert.Equal(t, tc.want, got, "rol %q", tc.role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve: ausencia de datos degrada al conjunto vacío, nunca lanza ni concede.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_UsuarioNil_SinCapacidades(t *testing.T) {
	assert.Equal(t, access.None, access.Resolve(nil, bizA),
		"sin sesión no debe haber ninguna capacidad")
}

func TestResolve_SinNegocioActivo_SinCapacidades(t *testing.T) {
	u := userWith(entity.Membership{BusinessID: bizA, Role: entity.RoleAdmin})
	assert.Equal(t, access.None, access.Resolve(u, ""),
		"sin negocio seleccionado no debe haber ninguna capacidad")
}

func TestResolve_SinMembresias_SinCapacidades(t *testing.T) {
	assert.Equal(t, access.None, access.Resolve(userWith(), bizA))
}

// Resolve con membresías en varios negocios: solo cuenta la del negocio activo.
func TestResolve_MultiNegocio_SoloCuentaElActivo(t *testing.T) {
	u := userWith(
		entity.Membership{BusinessID: bizA, Role: entity.RoleAdmin},
		entity.Membership{BusinessID: bizB, Role: entity.RoleViewer},
	)

	capsA := access.Resolve(u, bizA)
	assert.True(t, capsA.CanManageSettings, "en A es admin")
	assert.True(t, capsA.CanDelete)

	capsB := access.Resolve(u, bizB)
	assert.False(t, capsB.CanManage, "en B es viewer: solo lectura financiera")
	assert.True(t, capsB.CanViewFinancials)
	assert.False(t, capsB.CanDelete)

	assert.Equal(t, access.None, access.Resolve(u, bizC),
		"negocio donde no tiene membresía: sin capacidades")
}

func TestRoleOf(t *testing.T) {
	u := userWith(
		entity.Membership{BusinessID: bizA, Role: entity.RoleManager},
	)
	assert.Equal(t, entity.RoleManager, access.RoleOf(u, bizA))
	assert.Equal(t, entity.RoleNone, access.RoleOf(u, bizB))
	assert.Equal(t, entity.RoleNone, access.RoleOf(nil, bizA))
}

// Resolve es pura: dos llamadas con los mismos datos dan el mismo resultado y
// no mutan al usuario.
func TestResolve_EsPuraYDeterminista(t *testing.T) {
	u := userWith(entity.Membership{BusinessID: bizA, Role: entity.RoleDeliver})
	first := access.Resolve(u, bizA)
	second := access.Resolve(u, bizA)
	assert.Equal(t, first, second)
	assert.Equal(t, entity.RoleDeliver, u.Memberships[0].Role, "no debe mutar la membresía")
}
