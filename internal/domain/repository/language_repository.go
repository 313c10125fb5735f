package repository

import (
	"context"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// LanguageRepository define el puerto de persistencia para Language (DIP).
type LanguageRepository interface {
	List(ctx context.Context) ([]entity.Language, error)
	// Upsert inserta el idioma si no existe (por nombre). Usado por el seed.
	Upsert(ctx context.Context, language *entity.Language) error
}
