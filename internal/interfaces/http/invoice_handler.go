package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/facturadom/factura-rd/internal/application/billing"
	"github.com/facturadom/factura-rd/internal/application/dto"
	"github.com/facturadom/factura-rd/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	createUC *billing.CreateInvoiceUseCase
	listUC   *billing.ListInvoicesUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, listUC *billing.ListInvoicesUseCase) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, listUC: listUC}
}

// Create emite una factura asignando el siguiente NCF de la secuencia activa.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.createUC.Execute(c.Context(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SEQUENCE", Message: "no hay secuencia NCF activa para el tipo solicitado"})
		}
		if errors.Is(err, domain.ErrNCFExhausted) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NCF_EXHAUSTED", Message: "la secuencia de NCF está agotada"})
		}
		if errors.Is(err, domain.ErrNCFExpired) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NCF_EXPIRED", Message: "la autorización de la secuencia está vencida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List devuelve las facturas recientes de la empresa.
// GET /api/invoices?limit=50
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	invoices, err := h.listUC.Execute(c.Context(), companyID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoices)
}
