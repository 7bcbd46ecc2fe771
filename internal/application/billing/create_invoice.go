package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/facturadom/factura-rd/internal/application/dto"
	"github.com/facturadom/factura-rd/internal/domain"
	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/repository"
	"github.com/facturadom/factura-rd/pkg/rnc"
)

// itbisRate tasa general de ITBIS (18%).
var itbisRate = decimal.NewFromFloat(0.18)

// CreateInvoiceUseCase emite una factura asignando el próximo NCF de la
// secuencia activa del tipo solicitado, todo dentro de una transacción.
type CreateInvoiceUseCase struct {
	tx TxRunner
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(tx TxRunner) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{tx: tx}
}

// Execute valida la solicitud, consume el siguiente número de la secuencia
// (con la fila bloqueada) y persiste la factura con su NCF.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, companyID string, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: la factura requiere al menos una línea", domain.ErrInvalidInput)
	}
	if req.NCFType == "" {
		return nil, fmt.Errorf("%w: tipo de NCF requerido", domain.ErrInvalidInput)
	}
	if req.CustomerRNC != "" {
		if err := rnc.Validate(req.CustomerRNC); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerRNC:   rnc.Normalize(req.CustomerRNC),
		CustomerName:  req.CustomerName,
		NCFType:       req.NCFType,
		Date:          now,
		Status:        entity.InvoiceStatusEmitida,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		lineTotal := item.Quantity.Mul(item.UnitPrice).Round(2)
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoice.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	invoice.ITBIS = subtotal.Mul(itbisRate).Round(2)
	invoice.Total = subtotal.Add(invoice.ITBIS)

	err := uc.tx.Run(ctx, func(seqRepo repository.NCFSequenceRepository, invoiceRepo repository.InvoiceRepository) error {
		seq, err := seqRepo.GetActiveForUpdate(ctx, companyID, req.NCFType)
		if err != nil {
			return fmt.Errorf("bloquear secuencia NCF: %w", err)
		}
		if seq == nil {
			return fmt.Errorf("%w: no hay secuencia activa para el tipo %s", domain.ErrNotFound, req.NCFType)
		}
		if seq.Remaining() == 0 {
			return domain.ErrNCFExhausted
		}
		if seq.IsExpired(now) {
			return domain.ErrNCFExpired
		}

		invoice.NCF = FormatNCF(seq.Prefix, seq.CurrentValue+1)
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return fmt.Errorf("persistir factura: %w", err)
		}
		if err := seqRepo.IncrementCurrent(ctx, seq.ID); err != nil {
			return fmt.Errorf("consumir número de secuencia: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(invoice), nil
}

// FormatNCF compone el NCF: serie autorizada + número de 8 dígitos.
func FormatNCF(prefix string, number int64) string {
	return fmt.Sprintf("%s%08d", prefix, number)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		CustomerRNC:    inv.CustomerRNC,
		CustomerName:   inv.CustomerName,
		NCF:            inv.NCF,
		NCFType:        inv.NCFType,
		Date:           inv.Date,
		Total:          inv.Total,
		ITBIS:          inv.ITBIS,
		Status:         inv.Status,
		BalancePending: inv.Outstanding(),
		PaymentMethod:  inv.PaymentMethod,
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}

// ListInvoicesUseCase listado de facturas recientes de la empresa.
type ListInvoicesUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewListInvoicesUseCase construye el caso de uso.
func NewListInvoicesUseCase(invoiceRepo repository.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute devuelve las últimas limit facturas (por defecto 50, máximo 200).
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, companyID string, limit int) ([]dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	invoices, err := uc.invoiceRepo.ListRecent(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, *toInvoiceResponse(&invoices[i]))
	}
	return out, nil
}
