package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// CustomerMessageRepository define el puerto de persistencia para CustomerMessage (DIP).
type CustomerMessageRepository interface {
	Insert(ctx context.Context, message *entity.CustomerMessage) error
	List(ctx context.Context) ([]entity.CustomerMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
