package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/application/usecase"
)

const reminderNotFound = "recordatorio no encontrado"

// ReminderHandler maneja los recordatorios de reposición.
type ReminderHandler struct {
	uc *usecase.ReminderUseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc *usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear recordatorio
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReminderRequest  true  "Datos del recordatorio"
// @Success      201   {object}  dto.ReminderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reminders [post]
func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var in dto.ReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, reminderNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener recordatorio por ID
// @Tags         reminders
// @Produce      json
// @Param        id   path  string  true  "ID del recordatorio"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reminders/{id} [get]
func (h *ReminderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, reminderNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recordatorios
// @Tags         reminders
// @Produce      json
// @Success      200  {array}  dto.ReminderResponse
// @Router       /api/reminders [get]
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, reminderNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recordatorio
// @Tags         reminders
// @Param        id   path  string  true  "ID del recordatorio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, reminderNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
