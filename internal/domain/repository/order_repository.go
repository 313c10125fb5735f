package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus entidades
// débiles: items, facturación y envío (DIP).
type OrderRepository interface {
	Insert(ctx context.Context, order *entity.Order) error
	InsertItems(ctx context.Context, items []entity.OrderItem) error
	InsertBilling(ctx context.Context, contact *entity.OrderContact) error
	InsertShipping(ctx context.Context, contact *entity.OrderContact) error
	GetByID(ctx context.Context, id string) (*entity.OrderWithDetails, error)
	List(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
