package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role y sus privilegios (DIP).
// Las operaciones son sentencias individuales; la atomicidad de las mutaciones
// multi-sentencia la aporta el TxRunner que ata el repo a una transacción.
type RoleRepository interface {
	Insert(ctx context.Context, role *entity.Role) error
	// InsertGrants inserta un grant por privilegio. Falla con ErrDuplicate si
	// el par (rol, privilegio) ya existe.
	InsertGrants(ctx context.Context, roleID string, privileges []entity.Privilege) error
	// UpsertGrants inserta ignorando los pares que ya existen (ON CONFLICT DO NOTHING).
	UpsertGrants(ctx context.Context, roleID string, privileges []entity.Privilege) error
	// DeleteGrantsNotIn elimina los grants del rol cuyo privilegio no está en la lista.
	// Con lista vacía elimina todos los grants del rol.
	DeleteGrantsNotIn(ctx context.Context, roleID string, privileges []entity.Privilege) error
	// Rename cambia el nombre solo si difiere del actual (evita escrituras no-op).
	Rename(ctx context.Context, id, name string) error
	GetByID(ctx context.Context, id string) (*entity.RoleWithPrivileges, error)
	List(ctx context.Context) ([]entity.RoleWithPrivileges, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	// DeleteAll vacía la tabla de roles (reset defensivo del bootstrap).
	DeleteAll(ctx context.Context) error
}
