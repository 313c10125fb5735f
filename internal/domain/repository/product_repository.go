package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product, su stock
// y sus traducciones (DIP).
type ProductRepository interface {
	Insert(ctx context.Context, product *entity.Product) error
	InsertStock(ctx context.Context, stock *entity.ProductStock) error
	InsertTranslations(ctx context.Context, translations []entity.ProductTranslation) error
	GetByID(ctx context.Context, id string) (*entity.ProductWithDetails, error)
	List(ctx context.Context) ([]entity.ProductWithDetails, error)
	Update(ctx context.Context, product *entity.Product) error
	// RegisterStock acumula importaciones/exportaciones; la columna generada
	// stock_quantity refleja la diferencia.
	RegisterStock(ctx context.Context, productID string, importDelta, exportDelta int) error
	Delete(ctx context.Context, id string) error
}
