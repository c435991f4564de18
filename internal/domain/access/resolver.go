// Package access deriva el conjunto de capacidades de un usuario frente al
// negocio activo. Es función pura del rol: no se persiste nada, se recalcula
// en cada petición y nunca retorna error (la ausencia de datos degrada al
// conjunto vacío, nunca a un permiso concedido).
package access

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// Capabilities es el conjunto de permisos derivados de un rol. Derivado,
// nunca almacenado.
type Capabilities struct {
	// CanManage: crear y editar clientes, items y facturas.
	CanManage bool
	// CanManageSettings: configuración del negocio y gestión del equipo.
	CanManageSettings bool
	// CanDelete: eliminación de cualquier recurso del negocio.
	CanDelete bool
	// CanViewFinancials: lectura de facturas, totales y reportes.
	CanViewFinancials bool
	// CanManageLogistics: remisiones y confirmación de entregas.
	CanManageLogistics bool
}

// None es el conjunto sin capacidades (valor de fallo seguro).
var None = Capabilities{}

// FromRole deriva las capacidades de un rol. Tabla fija:
//
//	rol      manage  settings  delete  financials  logistics
//	admin      ✓        ✓        ✓         ✓           ✓
//	manager    ✓        −        −         ✓           ✓
//	viewer     −        −        −         ✓           −
//	deliver    −        −        −         −           ✓
func FromRole(role string) Capabilities {
	switch role {
	case entity.RoleAdmin:
		return Capabilities{
			CanManage:          true,
			CanManageSettings:  true,
			CanDelete:          true,
			CanViewFinancials:  true,
			CanManageLogistics: true,
		}
	case entity.RoleManager:
		return Capabilities{
			CanManage:          true,
			CanViewFinancials:  true,
			CanManageLogistics: true,
		}
	case entity.RoleViewer:
		return Capabilities{CanViewFinancials: true}
	case entity.RoleDeliver:
		return Capabilities{CanManageLogistics: true}
	}
	return None
}

// Resolve calcula las capacidades de user frente al negocio activo.
// user nil (sin sesión) o activeBusinessID vacío (sin negocio seleccionado)
// degradan al conjunto vacío. Si el usuario tiene membresías en varios
// negocios, solo cuenta la que coincide con el negocio activo.
func Resolve(user *entity.User, activeBusinessID string) Capabilities {
	m := user.MembershipFor(activeBusinessID) // tolera user nil
	if m == nil {
		return None
	}
	return FromRole(m.Role)
}

// RoleOf devuelve el rol efectivo de user en el negocio activo
// (entity.RoleNone si no hay membresía).
func RoleOf(user *entity.User, activeBusinessID string) string {
	m := user.MembershipFor(activeBusinessID)
	if m == nil {
		return entity.RoleNone
	}
	return m.Role
}
