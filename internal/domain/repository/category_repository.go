package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para ProductCategory (DIP).
type CategoryRepository interface {
	Insert(ctx context.Context, category *entity.ProductCategory) error
	InsertTranslations(ctx context.Context, translations []entity.CategoryTranslation) error
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
	List(ctx context.Context) ([]entity.CategoryWithTranslations, error)
	Delete(ctx context.Context, id string) error
}
