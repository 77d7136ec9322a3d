package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storesage/internal/domain/repository"
)

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
}

// HealthHandler responde siempre 200; status pasa a "degraded" si el almacén no responde.
type HealthHandler struct {
	store   repository.Store
	service string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(store repository.Store, service string) *HealthHandler {
	return &HealthHandler{store: store, service: service}
}

// Check GET /health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok", Service: h.service, Storage: h.store.Driver()}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "degraded"
	}
	return c.JSON(resp)
}
