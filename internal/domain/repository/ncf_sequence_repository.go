package repository

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// NCFSequenceRepository inventarios de numeración de comprobantes fiscales.
type NCFSequenceRepository interface {
	Create(ctx context.Context, seq *entity.NCFSequence) error

	// ListByCompany devuelve todas las secuencias (activas e inactivas) en
	// orden de creación; el monitor de salud depende de ese orden estable.
	ListByCompany(ctx context.Context, companyID string) ([]entity.NCFSequence, error)

	// GetActiveForUpdate bloquea la fila de la secuencia activa del tipo dado
	// (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetActiveForUpdate(ctx context.Context, companyID, tipo string) (*entity.NCFSequence, error)

	// IncrementCurrent consume el siguiente número de la secuencia.
	IncrementCurrent(ctx context.Context, id string) error
}
