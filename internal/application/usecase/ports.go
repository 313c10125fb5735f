package usecase

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repos
// de autorización atados a esa tx. Las mutaciones multi-sentencia (crear rol
// con grants, reconciliar privilegios, aprovisionar usuario con roles) pasan
// por aquí: aplican todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		roles repository.RoleRepository,
		users repository.UserRepository,
	) error) error
}

// CatalogTxRunner transacción con los repos de catálogo (producto con stock
// y traducciones, categoría con traducciones).
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		products repository.ProductRepository,
		categories repository.CategoryRepository,
	) error) error
}

// OrderTxRunner transacción con repos de órdenes y productos (la creación de
// una orden lee precios de producto e inserta orden, items y contactos).
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orders repository.OrderRepository,
		products repository.ProductRepository,
	) error) error
}
