package usecase

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

// LanguageUseCase lectura de los idiomas disponibles para traducciones.
type LanguageUseCase struct {
	languageRepo repository.LanguageRepository
}

// NewLanguageUseCase construye el caso de uso de idiomas.
func NewLanguageUseCase(languageRepo repository.LanguageRepository) *LanguageUseCase {
	return &LanguageUseCase{languageRepo: languageRepo}
}

// List devuelve los idiomas registrados (enumeración cerrada, sembrada por cmd/seed).
func (uc *LanguageUseCase) List(ctx context.Context) ([]entity.Language, error) {
	return uc.languageRepo.List(ctx)
}
