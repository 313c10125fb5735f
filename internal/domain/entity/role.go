package entity

// AdminRoleName nombre reservado del rol creado en el bootstrap del primer admin.
const AdminRoleName = "admin"

// Role representa un rol nombrado; agrupa privilegios asignables a usuarios.
type Role struct {
	ID   string
	Name string
}

// RoleWithPrivileges rol junto con el conjunto de privilegios otorgados.
// El conjunto no tiene orden ni duplicados: (rol, privilegio) es único en DB.
type RoleWithPrivileges struct {
	Role
	Privileges []Privilege
}
