package entity

// Privilege es un permiso atómico de la enumeración cerrada, asignable a un rol.
type Privilege string

// Enumeración cerrada de privilegios. Debe mantenerse en sincronía con el
// CHECK constraint de role_privilege en el esquema.
const (
	PrivilegeAdminAll       Privilege = "admin.all"
	PrivilegeUserCreate     Privilege = "user.create"
	PrivilegeUserRead       Privilege = "user.read"
	PrivilegeUserUpdate     Privilege = "user.update"
	PrivilegeUserDelete     Privilege = "user.delete"
	PrivilegeCategoryRead   Privilege = "category.read"
	PrivilegeCategoryWrite  Privilege = "category.write"
	PrivilegeCategoryUpdate Privilege = "category.update"
	PrivilegeCategoryDelete Privilege = "category.delete"
	PrivilegeProductCreate  Privilege = "product.create"
	PrivilegeProductRead    Privilege = "product.read"
	PrivilegeProductUpdate  Privilege = "product.update"
	PrivilegeProductDelete  Privilege = "product.delete"
	PrivilegeStockUpdate    Privilege = "stock.update"
	PrivilegeOrderCreate    Privilege = "order.create"
	PrivilegeOrderRead      Privilege = "order.read"
	PrivilegeOrderUpdate    Privilege = "order.update"
	PrivilegeOrderDelete    Privilege = "order.delete"
)

var allPrivileges = map[Privilege]struct{}{
	PrivilegeAdminAll:       {},
	PrivilegeUserCreate:     {},
	PrivilegeUserRead:       {},
	PrivilegeUserUpdate:     {},
	PrivilegeUserDelete:     {},
	PrivilegeCategoryRead:   {},
	PrivilegeCategoryWrite:  {},
	PrivilegeCategoryUpdate: {},
	PrivilegeCategoryDelete: {},
	PrivilegeProductCreate:  {},
	PrivilegeProductRead:    {},
	PrivilegeProductUpdate:  {},
	PrivilegeProductDelete:  {},
	PrivilegeStockUpdate:    {},
	PrivilegeOrderCreate:    {},
	PrivilegeOrderRead:      {},
	PrivilegeOrderUpdate:    {},
	PrivilegeOrderDelete:    {},
}

// Valid indica si el privilegio pertenece a la enumeración cerrada.
func (p Privilege) Valid() bool {
	_, ok := allPrivileges[p]
	return ok
}

// String devuelve el valor del privilegio.
func (p Privilege) String() string { return string(p) }
