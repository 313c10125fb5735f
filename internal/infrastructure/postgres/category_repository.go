package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Insert persiste una categoría nueva.
func (r *CategoryRepo) Insert(ctx context.Context, category *entity.ProductCategory) error {
	query := `
		INSERT INTO product_category (id, display_order, product_category_id)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, category.ID, category.DisplayOrder, category.ParentID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrValidation // padre inexistente
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// InsertTranslations persiste las traducciones de la categoría.
func (r *CategoryRepo) InsertTranslations(ctx context.Context, translations []entity.CategoryTranslation) error {
	const query = `
		INSERT INTO product_category_translation (product_category_id, language_id, name, description)
		VALUES ($1, $2, $3, $4)`
	for _, tr := range translations {
		if _, err := r.q.Exec(ctx, query, tr.CategoryID, tr.LanguageID, tr.Name, tr.Description); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrValidation
			}
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert category translation: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una categoría por id, o nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	err := r.q.QueryRow(ctx, `
		SELECT id, display_order, product_category_id FROM product_category WHERE id = $1`, id).
		Scan(&c.ID, &c.DisplayOrder, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías con sus traducciones, ordenadas por display_order.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.CategoryWithTranslations, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, display_order, product_category_id
		FROM product_category
		ORDER BY display_order NULLS LAST, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []entity.CategoryWithTranslations
	index := make(map[string]int)
	for rows.Next() {
		var c entity.CategoryWithTranslations
		if err := rows.Scan(&c.ID, &c.DisplayOrder, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		index[c.ID] = len(list)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trRows, err := r.q.Query(ctx, `
		SELECT product_category_id, language_id, name, description
		FROM product_category_translation`)
	if err != nil {
		return nil, fmt.Errorf("list category translations: %w", err)
	}
	defer trRows.Close()
	for trRows.Next() {
		var tr entity.CategoryTranslation
		if err := trRows.Scan(&tr.CategoryID, &tr.LanguageID, &tr.Name, &tr.Description); err != nil {
			return nil, fmt.Errorf("scan category translation: %w", err)
		}
		if i, ok := index[tr.CategoryID]; ok {
			list[i].Translations = append(list[i].Translations, tr)
		}
	}
	return list, trRows.Err()
}

// Delete borra la categoría; sus traducciones caen por cascada y los productos
// asociados quedan sin categoría (SET NULL).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_category WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
