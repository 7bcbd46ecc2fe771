package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/facturadom/factura-rd/internal/application/dto"
	"github.com/facturadom/factura-rd/internal/domain"
	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/repository"
	"github.com/facturadom/factura-rd/pkg/rnc"
)

// UseCase alta y consulta de empresas emisoras.
type UseCase struct {
	repo repository.CompanyRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.CompanyRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una nueva empresa. El RNC del emisor es obligatorio y debe pasar
// la validación de dígito verificador.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if err := rnc.Validate(in.RNC); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		RNC:       rnc.Normalize(in.RNC),
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID; nil si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		RNC:     c.RNC,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		Status:  c.Status,
	}
}
