package dto

import "github.com/tu-usuario/tienda-admin/internal/domain/entity"

// LanguageResponse idioma disponible para traducciones.
type LanguageResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewLanguageResponse arma la respuesta desde la entidad.
func NewLanguageResponse(l *entity.Language) LanguageResponse {
	return LanguageResponse{ID: l.ID, Name: l.Name}
}
