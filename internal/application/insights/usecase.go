// Package insights contiene el caso de uso que alimenta el Motor de
// Inteligencia Fiscal: carga el snapshot desde los repositorios y delega todo
// el cálculo en el motor puro del dominio.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	domaininsights "github.com/facturadom/factura-rd/internal/domain/insights"
	"github.com/facturadom/factura-rd/internal/domain/repository"
)

// snapshotLimit facturas recientes que conforman el snapshot del motor.
const snapshotLimit = 200

// UseCase orquesta la carga del snapshot y la invocación del motor. Todo el
// I/O ocurre aquí, antes de entrar al motor; el timeout del llamador aplica a
// las consultas, no al cálculo (que es O(n) y acotado).
type UseCase struct {
	invoiceRepo  repository.InvoiceRepository
	sequenceRepo repository.NCFSequenceRepository
	engine       *domaininsights.Engine
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoiceRepo repository.InvoiceRepository, sequenceRepo repository.NCFSequenceRepository, engine *domaininsights.Engine) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo, sequenceRepo: sequenceRepo, engine: engine}
}

// GetReport carga el snapshot de la empresa y produce el reporte de
// inteligencia de negocio.
//
// Tres consultas en paralelo (son independientes):
//  1. ListRecent(200)  → historial de facturas
//  2. ListByCompany    → inventarios de NCF
//  3. CountPending     → conteo de impagas para el asistente
func (uc *UseCase) GetReport(ctx context.Context, companyID string) (*domaininsights.Report, error) {
	type invoicesResult struct {
		rows []entity.Invoice
		err  error
	}
	type sequencesResult struct {
		rows []entity.NCFSequence
		err  error
	}
	type pendingResult struct {
		count int
		err   error
	}

	invCh := make(chan invoicesResult, 1)
	seqCh := make(chan sequencesResult, 1)
	pendCh := make(chan pendingResult, 1)

	go func() {
		rows, err := uc.invoiceRepo.ListRecent(ctx, companyID, snapshotLimit)
		invCh <- invoicesResult{rows, err}
	}()
	go func() {
		rows, err := uc.sequenceRepo.ListByCompany(ctx, companyID)
		seqCh <- sequencesResult{rows, err}
	}()
	go func() {
		count, err := uc.invoiceRepo.CountPending(ctx, companyID)
		pendCh <- pendingResult{count, err}
	}()

	inv := <-invCh
	seq := <-seqCh
	pend := <-pendCh

	if inv.err != nil {
		return nil, fmt.Errorf("insights: facturas: %w", inv.err)
	}
	if seq.err != nil {
		return nil, fmt.Errorf("insights: secuencias NCF: %w", seq.err)
	}
	if pend.err != nil {
		return nil, fmt.Errorf("insights: conteo de impagas: %w", pend.err)
	}

	return uc.engine.Analyze(domaininsights.Input{
		Invoices:      inv.rows,
		Sequences:     seq.rows,
		PendingCount:  pend.count,
		ReferenceDate: time.Now(),
	})
}
