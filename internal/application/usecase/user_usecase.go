package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aprovisionamiento de usuarios por un administrador.
type UserUseCase struct {
	txRunner TxRunner
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(txRunner TxRunner) *UserUseCase {
	return &UserUseCase{txRunner: txRunner}
}

// Create hashea la contraseña e inserta el usuario junto con sus asignaciones
// de rol en una sola transacción. Devuelve ErrDuplicate si email o username
// ya existen.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
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
	roleIDs := in.RoleIDs()
	err = uc.txRunner.Run(ctx, func(_ repository.RoleRepository, users repository.UserRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		return users.AssignRoles(ctx, user.ID, roleIDs)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
