package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// CategoryUseCase gestión de categorías jerárquicas del catálogo.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	txRunner     CatalogTxRunner
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, txRunner CatalogTxRunner) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create inserta la categoría y sus traducciones en una sola transacción.
// Rechaza con ErrValidation si el padre no existe o si la nueva categoría
// superaría la profundidad máxima del árbol.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (string, error) {
	if in.ParentID != nil {
		depth, err := uc.depthOf(ctx, *in.ParentID)
		if err != nil {
			return "", err
		}
		if depth+1 > entity.MaxCategoryDepth {
			return "", domain.ErrValidation
		}
	}
	category := &entity.ProductCategory{
		ID:           uuid.New().String(),
		DisplayOrder: in.DisplayOrder,
		ParentID:     in.ParentID,
	}
	translations := make([]entity.CategoryTranslation, 0, len(in.Translations))
	for _, tr := range in.Translations {
		translations = append(translations, entity.CategoryTranslation{
			CategoryID:  category.ID,
			LanguageID:  tr.LanguageID,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	err := uc.txRunner.RunCatalog(ctx, func(_ repository.ProductRepository, categories repository.CategoryRepository) error {
		if err := categories.Insert(ctx, category); err != nil {
			return err
		}
		return categories.InsertTranslations(ctx, translations)
	})
	if err != nil {
		return "", err
	}
	return category.ID, nil
}

// depthOf profundidad de la categoría dada (raíz = 1) recorriendo padres.
// El recorrido se corta en MaxCategoryDepth: más allá el resultado ya
// excede el límite para cualquier hijo.
func (uc *CategoryUseCase) depthOf(ctx context.Context, id string) (int, error) {
	depth := 0
	current := &id
	for current != nil && depth < entity.MaxCategoryDepth+1 {
		category, err := uc.categoryRepo.GetByID(ctx, *current)
		if err != nil {
			return 0, err
		}
		if category == nil {
			return 0, domain.ErrValidation
		}
		depth++
		current = category.ParentID
	}
	return depth, nil
}

// List devuelve todas las categorías con traducciones, como conjunto plano
// con referencia al padre; el árbol se arma en cliente.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.CategoryWithTranslations, error) {
	return uc.categoryRepo.List(ctx)
}

// Delete borra la categoría; sus traducciones caen por cascada. Los
// productos que la referencian quedan con categoría nula.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(ctx, id)
}
