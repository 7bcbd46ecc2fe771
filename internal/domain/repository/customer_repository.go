package repository

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// CustomerRepository clientes de la empresa.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, companyID string) ([]entity.Customer, error)
	GetByRNC(ctx context.Context, companyID, rnc string) (*entity.Customer, error)
}
