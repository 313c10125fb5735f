package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// CountExclusive cuenta usuarios tomando un lock de tabla. Dentro de una
	// transacción serializa bootstraps concurrentes: el segundo espera el lock
	// y ve el usuario ya insertado.
	CountExclusive(ctx context.Context) (int, error)
	AssignRoles(ctx context.Context, userID string, roleIDs []string) error
	IncrementRetryCounter(ctx context.Context, id string) error
	ResetRetryCounter(ctx context.Context, id string) error
}
