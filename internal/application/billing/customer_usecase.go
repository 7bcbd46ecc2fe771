package billing

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

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. El RNC es opcional (consumidor final) pero si
// viene debe pasar la validación de dígito verificador.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	normalized := ""
	if in.RNC != "" {
		if err := rnc.Validate(in.RNC); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		normalized = rnc.Normalize(in.RNC)
		existing, _ := uc.repo.GetByRNC(ctx, companyID, normalized)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		RNC:       normalized,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes de la empresa.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, *toCustomerResponse(&list[i]))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		RNC:       c.RNC,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
