package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura y sus líneas.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, customer_rnc, customer_name, ncf, ncf_type, date, total, itbis, status, balance_pending, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, nullIfEmpty(invoice.CustomerRNC), invoice.CustomerName,
		invoice.NCF, invoice.NCFType, invoice.Date, invoice.Total, invoice.ITBIS,
		invoice.Status, invoice.BalancePending, nullIfEmpty(invoice.PaymentMethod),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el NCF ya existe: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for i := range invoice.Items {
		item := &invoice.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.InvoiceID = invoice.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.InvoiceID, item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// ListRecent devuelve las últimas limit facturas con sus líneas, más recientes primero.
func (r *InvoiceRepo) ListRecent(ctx context.Context, companyID string, limit int) ([]entity.Invoice, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_rnc, ''), customer_name, ncf, ncf_type,
		       COALESCE(date, '0001-01-01'::timestamptz), total, itbis, status,
		       balance_pending, COALESCE(payment_method, ''), created_at, updated_at
		FROM invoices
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []entity.Invoice
	ids := make([]string, 0, limit)
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerRNC, &inv.CustomerName, &inv.NCF, &inv.NCFType,
			&inv.Date, &inv.Total, &inv.ITBIS, &inv.Status,
			&inv.BalancePending, &inv.PaymentMethod, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	itemsByInvoice, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]
	}
	return invoices, nil
}

// CountPending cuenta las facturas impagas (emitidas o pendientes).
func (r *InvoiceRepo) CountPending(ctx context.Context, companyID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM invoices
		WHERE company_id = $1 AND status IN ($2, $3)`
	var n int
	err := r.q.QueryRow(ctx, query, companyID, entity.InvoiceStatusEmitida, entity.InvoiceStatusPendiente).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending invoices: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepo) itemsFor(ctx context.Context, invoiceIDs []string) (map[string][]entity.InvoiceItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price, subtotal
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, id`, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.InvoiceItem)
	for rows.Next() {
		var item entity.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		out[item.InvoiceID] = append(out[item.InvoiceID], item)
	}
	return out, rows.Err()
}
