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
)

// SequenceUseCase administración de secuencias de NCF.
type SequenceUseCase struct {
	seqRepo repository.NCFSequenceRepository
}

// NewSequenceUseCase construye el caso de uso.
func NewSequenceUseCase(seqRepo repository.NCFSequenceRepository) *SequenceUseCase {
	return &SequenceUseCase{seqRepo: seqRepo}
}

// Create registra una nueva secuencia autorizada por la DGII.
func (uc *SequenceUseCase) Create(ctx context.Context, companyID string, req dto.CreateSequenceRequest) (*dto.SequenceResponse, error) {
	if req.Tipo == "" || req.Prefix == "" {
		return nil, fmt.Errorf("%w: tipo y serie son requeridos", domain.ErrInvalidInput)
	}
	if req.FinalNumber <= 0 {
		return nil, fmt.Errorf("%w: el número final debe ser positivo", domain.ErrInvalidInput)
	}
	if req.CurrentValue < 0 || req.CurrentValue > req.FinalNumber {
		return nil, fmt.Errorf("%w: valor actual fuera del rango autorizado", domain.ErrInvalidInput)
	}

	now := time.Now()
	seq := &entity.NCFSequence{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Tipo:         req.Tipo,
		Prefix:       req.Prefix,
		FinalNumber:  req.FinalNumber,
		CurrentValue: req.CurrentValue,
		IsActive:     true,
		ExpiryDate:   req.ExpiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.seqRepo.Create(ctx, seq); err != nil {
		return nil, fmt.Errorf("registrar secuencia NCF: %w", err)
	}
	return toSequenceResponse(seq), nil
}

// List devuelve todas las secuencias de la empresa.
func (uc *SequenceUseCase) List(ctx context.Context, companyID string) ([]dto.SequenceResponse, error) {
	seqs, err := uc.seqRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar secuencias NCF: %w", err)
	}
	out := make([]dto.SequenceResponse, 0, len(seqs))
	for i := range seqs {
		out = append(out, *toSequenceResponse(&seqs[i]))
	}
	return out, nil
}

func toSequenceResponse(seq *entity.NCFSequence) *dto.SequenceResponse {
	return &dto.SequenceResponse{
		ID:           seq.ID,
		Tipo:         seq.Tipo,
		Prefix:       seq.Prefix,
		FinalNumber:  seq.FinalNumber,
		CurrentValue: seq.CurrentValue,
		Remaining:    seq.Remaining(),
		IsActive:     seq.IsActive,
		ExpiryDate:   seq.ExpiryDate,
	}
}
