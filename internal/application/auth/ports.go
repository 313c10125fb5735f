package auth

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el bootstrap del primer admin
// (reset de roles + rol + grant + usuario + asignación) aplique todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		roles repository.RoleRepository,
		users repository.UserRepository,
	) error) error
}
