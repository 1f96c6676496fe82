package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/usecase"
)

// ActivityHandler maneja las peticiones HTTP del historial (protegido).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Historial de actividad, más reciente primero
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de entradas (0 = todas)"
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit > 0 {
		return c.JSON(h.uc.Recent(limit))
	}
	return c.JSON(h.uc.List())
}

// Clear godoc
// @Summary      Vaciar el historial de actividad
// @Tags         activity
// @Security     Bearer
// @Success      204
// @Router       /api/activity [delete]
func (h *ActivityHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
