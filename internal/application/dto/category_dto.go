package dto

import (
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría, opcionalmente bajo un padre.
type CreateCategoryRequest struct {
	DisplayOrder *int               `json:"display_order,omitempty"`
	ParentID     *string            `json:"product_category_id,omitempty"`
	Translations []TranslationInput `json:"translations"`
}

// Validate requiere al menos una traducción con idioma y nombre.
func (r CreateCategoryRequest) Validate() error {
	if len(r.Translations) == 0 {
		return domain.ErrValidation
	}
	for _, tr := range r.Translations {
		if tr.LanguageID == "" || tr.Name == "" {
			return domain.ErrValidation
		}
	}
	if r.ParentID != nil && *r.ParentID == "" {
		return domain.ErrValidation
	}
	return nil
}

// CategoryResponse salida de una categoría con sus traducciones.
type CategoryResponse struct {
	ID           string             `json:"id"`
	DisplayOrder *int               `json:"display_order,omitempty"`
	ParentID     *string            `json:"product_category_id,omitempty"`
	Translations []TranslationInput `json:"translations"`
}

// NewCategoryResponse arma la respuesta desde la entidad.
func NewCategoryResponse(c *entity.CategoryWithTranslations) CategoryResponse {
	translations := make([]TranslationInput, 0, len(c.Translations))
	for _, tr := range c.Translations {
		translations = append(translations, TranslationInput{
			LanguageID:  tr.LanguageID,
			Name:        tr.Name,
			Description: tr.Description,
		})
	}
	return CategoryResponse{
		ID:           c.ID,
		DisplayOrder: c.DisplayOrder,
		ParentID:     c.ParentID,
		Translations: translations,
	}
}
