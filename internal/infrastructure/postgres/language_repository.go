package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.LanguageRepository = (*LanguageRepo)(nil)

// LanguageRepo implementación del puerto LanguageRepository sobre PostgreSQL.
type LanguageRepo struct {
	q Querier
}

// NewLanguageRepository construye el adaptador de persistencia para idiomas.
func NewLanguageRepository(q Querier) *LanguageRepo {
	return &LanguageRepo{q: q}
}

// List devuelve todos los idiomas disponibles.
func (r *LanguageRepo) List(ctx context.Context) ([]entity.Language, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM language ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()
	var list []entity.Language
	for rows.Next() {
		var l entity.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Upsert inserta el idioma si aún no existe por nombre. Idempotente, usado por el seed.
func (r *LanguageRepo) Upsert(ctx context.Context, language *entity.Language) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO language (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`,
		language.ID, language.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert language: %w", err)
	}
	return nil
}
