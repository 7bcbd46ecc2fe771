package repository

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// CompanyRepository empresas (tenants) de la plataforma.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
