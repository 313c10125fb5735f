package dto

import (
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// RolePrivilegeInput un privilegio dentro del body de create/patch de rol.
type RolePrivilegeInput struct {
	Privilege string `json:"privilege"`
}

// CreateRoleRequest entrada para crear un rol con su conjunto inicial de privilegios.
// rolePrivilege puede ser vacío: un rol sin privilegios es válido pero sin permisos.
type CreateRoleRequest struct {
	Name          string               `json:"name"`
	RolePrivilege []RolePrivilegeInput `json:"rolePrivilege"`
}

// Validate nombre alfanumérico no vacío y privilegios dentro de la enumeración.
func (r CreateRoleRequest) Validate() error {
	if !roleNameRegex.MatchString(r.Name) {
		return domain.ErrValidation
	}
	for _, rp := range r.RolePrivilege {
		if !entity.Privilege(rp.Privilege).Valid() {
			return domain.ErrValidation
		}
	}
	return nil
}

// Privileges convierte el body a la enumeración del dominio.
func (r CreateRoleRequest) Privileges() []entity.Privilege {
	out := make([]entity.Privilege, 0, len(r.RolePrivilege))
	for _, rp := range r.RolePrivilege {
		out = append(out, entity.Privilege(rp.Privilege))
	}
	return out
}

// UpdateRoleRequest entrada para actualizar un rol: nuevo nombre y conjunto
// de privilegios de reemplazo (no un delta).
type UpdateRoleRequest struct {
	Name          string               `json:"name"`
	RolePrivilege []RolePrivilegeInput `json:"rolePrivilege"`
}

// Validate mismas reglas que la creación.
func (r UpdateRoleRequest) Validate() error {
	return CreateRoleRequest(r).Validate()
}

// Privileges convierte el body a la enumeración del dominio.
func (r UpdateRoleRequest) Privileges() []entity.Privilege {
	return CreateRoleRequest(r).Privileges()
}

// RoleIDInput un id dentro del body de borrado por lote.
type RoleIDInput struct {
	ID string `json:"id"`
}

// DeleteRolesRequest entrada del borrado por lote: lista de ids no vacía.
type DeleteRolesRequest struct {
	ID []RoleIDInput `json:"id"`
}

// Validate la lista no puede ser vacía ni contener ids vacíos.
func (r DeleteRolesRequest) Validate() error {
	if len(r.ID) == 0 {
		return domain.ErrValidation
	}
	for _, id := range r.ID {
		if id.ID == "" {
			return domain.ErrValidation
		}
	}
	return nil
}

// IDs devuelve los ids planos del body.
func (r DeleteRolesRequest) IDs() []string {
	out := make([]string, 0, len(r.ID))
	for _, id := range r.ID {
		out = append(out, id.ID)
	}
	return out
}

// RoleResponse salida de un rol con sus privilegios.
type RoleResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	RolePrivilege []RolePrivilegeInput `json:"rolePrivilege"`
}

// NewRoleResponse arma la respuesta desde la entidad.
func NewRoleResponse(role *entity.RoleWithPrivileges) RoleResponse {
	privileges := make([]RolePrivilegeInput, 0, len(role.Privileges))
	for _, p := range role.Privileges {
		privileges = append(privileges, RolePrivilegeInput{Privilege: p.String()})
	}
	return RoleResponse{ID: role.ID, Name: role.Name, RolePrivilege: privileges}
}
