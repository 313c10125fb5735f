package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// RoleUseCase gestión de roles y sus privilegios.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	txRunner TxRunner
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(roleRepo repository.RoleRepository, txRunner TxRunner) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, txRunner: txRunner}
}

// Create inserta el rol y, si la lista no es vacía, sus grants iniciales en
// una sola transacción. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (string, error) {
	roleID := uuid.New().String()
	privileges := in.Privileges()
	err := uc.txRunner.Run(ctx, func(roles repository.RoleRepository, _ repository.UserRepository) error {
		if err := roles.Insert(ctx, &entity.Role{ID: roleID, Name: in.Name}); err != nil {
			return err
		}
		if len(privileges) == 0 {
			return nil
		}
		return roles.InsertGrants(ctx, roleID, privileges)
	})
	if err != nil {
		return "", err
	}
	return roleID, nil
}

// GetByID devuelve el rol con sus privilegios, o ErrNotFound.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*entity.RoleWithPrivileges, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

// List devuelve todos los roles con sus privilegios, sin paginar: el
// frontend de administración filtra y ordena en cliente.
func (uc *RoleUseCase) List(ctx context.Context) ([]entity.RoleWithPrivileges, error) {
	return uc.roleRepo.List(ctx)
}

// Update reconcilia el rol en una transacción de tres sentencias:
//  1. renombra solo si el nombre difiere (evita escrituras no-op),
//  2. inserta los grants deseados ignorando los que ya existen,
//  3. borra los grants cuyo privilegio no está en la lista deseada.
//
// El conjunto de privilegios queda exactamente igual a la lista pedida,
// sin importar el estado previo. Reconciliar dos veces al mismo conjunto
// es idempotente.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) error {
	privileges := in.Privileges()
	return uc.txRunner.Run(ctx, func(roles repository.RoleRepository, _ repository.UserRepository) error {
		if err := roles.Rename(ctx, id, in.Name); err != nil {
			return err
		}
		if len(privileges) > 0 {
			if err := roles.UpsertGrants(ctx, id, privileges); err != nil {
				return err
			}
		}
		return roles.DeleteGrantsNotIn(ctx, id, privileges)
	})
}

// Delete borra un rol. Los grants y asignaciones dependientes caen por
// cascada de claves foráneas.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	return uc.roleRepo.DeleteByIDs(ctx, []string{id})
}

// DeleteBatch borra varios roles en una sola sentencia.
func (uc *RoleUseCase) DeleteBatch(ctx context.Context, ids []string) error {
	return uc.roleRepo.DeleteByIDs(ctx, ids)
}
