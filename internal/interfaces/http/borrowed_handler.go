package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/application/usecase"
)

const borrowedNotFound = "préstamo no encontrado"

// BorrowedItemHandler maneja los préstamos de productos.
type BorrowedItemHandler struct {
	uc *usecase.BorrowedItemUseCase
}

// NewBorrowedItemHandler construye el handler.
func NewBorrowedItemHandler(uc *usecase.BorrowedItemUseCase) *BorrowedItemHandler {
	return &BorrowedItemHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar préstamo
// @Tags         borrowed
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BorrowedItemRequest  true  "Datos del préstamo"
// @Success      201   {object}  dto.BorrowedItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/borrowed [post]
func (h *BorrowedItemHandler) Create(c *fiber.Ctx) error {
	var in dto.BorrowedItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, borrowedNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener préstamo por ID
// @Tags         borrowed
// @Produce      json
// @Param        id   path  string  true  "ID del préstamo"
// @Success      200  {object}  dto.BorrowedItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/borrowed/{id} [get]
func (h *BorrowedItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, borrowedNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar préstamos
// @Tags         borrowed
// @Produce      json
// @Param        status  query  string  false  "active o returned"
// @Success      200     {array}   dto.BorrowedItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/borrowed [get]
func (h *BorrowedItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err, borrowedNotFound)
	}
	return c.JSON(out)
}

// MarkReturned godoc
// @Summary      Marcar préstamo como devuelto
// @Tags         borrowed
// @Produce      json
// @Param        id   path  string  true  "ID del préstamo"
// @Success      200  {object}  dto.BorrowedItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/borrowed/{id}/return [put]
func (h *BorrowedItemHandler) MarkReturned(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.MarkReturned(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, borrowedNotFound)
	}
	return c.JSON(out)
}
