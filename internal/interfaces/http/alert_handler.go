package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
)

// AlertHandler maneja el endpoint de alertas de bajo stock.
type AlertHandler struct {
	uc *usecase.LowStockAlertsUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.LowStockAlertsUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Alertas de bajo stock de una empresa
// @Description  Filas (producto, bodega) bajo umbral con ventas en los últimos 30 días,
//               con proyección de días hasta quiebre y proveedor principal.
//               Una empresa desconocida devuelve lista vacía, no error.
// @Tags         alerts
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
	}
	out, err := h.uc.List(c.Context(), int64(companyID))
	if err != nil {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("alertas de bajo stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
