package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/application/usecase"
)

// InitHandler recibe la importación inicial del espejo local de un cliente.
type InitHandler struct {
	uc *usecase.InitUseCase
}

// NewInitHandler construye el handler.
func NewInitHandler(uc *usecase.InitUseCase) *InitHandler {
	return &InitHandler{uc: uc}
}

// Import godoc
// @Summary      Importación inicial
// @Description  Crea productos, préstamos y recordatorios conservando sus IDs. Reimportar no duplica.
// @Tags         init
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "Contenido del espejo local"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/init [post]
func (h *InitHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	// Cualquier fallo de la importación se informa como 400, incluidos los de almacenamiento.
	if err := h.uc.Import(c.UserContext(), in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
