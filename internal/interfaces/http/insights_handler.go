package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/facturadom/factura-rd/internal/application/dto"
	appinsights "github.com/facturadom/factura-rd/internal/application/insights"
)

// InsightsHandler expone el reporte de inteligencia de negocio.
type InsightsHandler struct {
	uc *appinsights.UseCase
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(uc *appinsights.UseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// GetReport devuelve el reporte completo de insights de la empresa.
// GET /api/insights
//
// Respuesta: alerts, client_radar, rankings, fiscal_alerts, low_sequence,
// prediction, business_health, payment_insights, morosity_radar. Se calcula
// sobre el snapshot de facturas y secuencias al momento de la petición.
func (h *InsightsHandler) GetReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	report, err := h.uc.GetReport(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(report)
}
