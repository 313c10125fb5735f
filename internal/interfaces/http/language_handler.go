package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/application/usecase"
)

// LanguageHandler lectura de idiomas disponibles (protegido).
type LanguageHandler struct {
	uc *usecase.LanguageUseCase
}

// NewLanguageHandler construye el handler.
func NewLanguageHandler(uc *usecase.LanguageUseCase) *LanguageHandler {
	return &LanguageHandler{uc: uc}
}

// List godoc
// @Summary      Listar idiomas disponibles para traducciones
// @Tags         languages
// @Produce      json
// @Success      200  {array}  dto.LanguageResponse
// @Router       /language/all [get]
func (h *LanguageHandler) List(c *fiber.Ctx) error {
	languages, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	out := make([]dto.LanguageResponse, 0, len(languages))
	for i := range languages {
		out = append(out, dto.NewLanguageResponse(&languages[i]))
	}
	return c.JSON(out)
}
