package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase casos de uso de autenticación: bootstrap del primer admin y login.
type UseCase struct {
	userRepo repository.UserRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, txRunner TxRunner) *UseCase {
	return &UseCase{userRepo: userRepo, txRunner: txRunner}
}

// BootstrapFirstAdmin crea el primer usuario del sistema con el rol "admin"
// y el privilegio admin.all, en una sola transacción:
//  1. cuenta usuarios con lock de tabla (rechaza si ya hay alguno),
//  2. borra todos los roles existentes (reset defensivo),
//  3. inserta el rol admin y su grant admin.all,
//  4. inserta el usuario y su asignación al rol.
//
// El conteo vive dentro de la transacción: dos bootstraps concurrentes se
// serializan en el lock y el segundo recibe ErrAlreadyInitialized.
func (uc *UseCase) BootstrapFirstAdmin(ctx context.Context, in dto.BootstrapRequest) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
	}

	err = uc.txRunner.Run(ctx, func(roles repository.RoleRepository, users repository.UserRepository) error {
		count, err := users.CountExclusive(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyInitialized
		}
		if err := roles.DeleteAll(ctx); err != nil {
			return err
		}
		adminRole := &entity.Role{ID: uuid.New().String(), Name: entity.AdminRoleName}
		if err := roles.Insert(ctx, adminRole); err != nil {
			return err
		}
		if err := roles.InsertGrants(ctx, adminRole.ID, []entity.Privilege{entity.PrivilegeAdminAll}); err != nil {
			return err
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return users.AssignRoles(ctx, user.ID, []string{adminRole.ID})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email y contraseña. Devuelve el mismo ErrWrongCredentials
// tanto para email inexistente como para contraseña incorrecta, para no
// permitir enumerar cuentas. Con el contador de reintentos por encima del
// límite devuelve ErrTooManyAttempts sin verificar la contraseña; cada fallo
// incrementa el contador y un login correcto lo resetea a 0.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrWrongCredentials
	}
	if user.Locked() {
		return nil, domain.ErrTooManyAttempts
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.PasswordHash)); err != nil {
		if err := uc.userRepo.IncrementRetryCounter(ctx, user.ID); err != nil {
			return nil, err
		}
		return nil, domain.ErrWrongCredentials
	}
	if err := uc.userRepo.ResetRetryCounter(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}
