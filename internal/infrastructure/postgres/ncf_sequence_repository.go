package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/facturadom/factura-rd/internal/domain"
	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/repository"
)

var _ repository.NCFSequenceRepository = (*NCFSequenceRepo)(nil)

// NCFSequenceRepo implementación de NCFSequenceRepository (usable con pool o tx).
type NCFSequenceRepo struct {
	q Querier
}

// NewNCFSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNCFSequenceRepository(q Querier) *NCFSequenceRepo {
	return &NCFSequenceRepo{q: q}
}

// Create registra una secuencia autorizada.
func (r *NCFSequenceRepo) Create(ctx context.Context, seq *entity.NCFSequence) error {
	if seq.ID == "" {
		seq.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ncf_sequences (id, company_id, tipo, prefix, final_number, current_value, is_active, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		seq.ID, seq.CompanyID, seq.Tipo, seq.Prefix, seq.FinalNumber, seq.CurrentValue,
		seq.IsActive, seq.ExpiryDate, seq.CreatedAt, seq.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ncf sequence: %w", err)
	}
	return nil
}

// ListByCompany devuelve todas las secuencias en orden de creación.
func (r *NCFSequenceRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.NCFSequence, error) {
	query := `
		SELECT id, company_id, tipo, prefix, final_number, current_value, is_active, expiry_date, created_at, updated_at
		FROM ncf_sequences
		WHERE company_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list ncf sequences: %w", err)
	}
	defer rows.Close()

	var seqs []entity.NCFSequence
	for rows.Next() {
		var s entity.NCFSequence
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Tipo, &s.Prefix, &s.FinalNumber, &s.CurrentValue,
			&s.IsActive, &s.ExpiryDate, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ncf sequence: %w", err)
		}
		seqs = append(seqs, s)
	}
	return seqs, rows.Err()
}

// GetActiveForUpdate bloquea la fila de la secuencia activa del tipo dado.
// Solo tiene sentido dentro de una transacción.
func (r *NCFSequenceRepo) GetActiveForUpdate(ctx context.Context, companyID, tipo string) (*entity.NCFSequence, error) {
	query := `
		SELECT id, company_id, tipo, prefix, final_number, current_value, is_active, expiry_date, created_at, updated_at
		FROM ncf_sequences
		WHERE company_id = $1 AND tipo = $2 AND is_active = TRUE
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE`
	var s entity.NCFSequence
	err := r.q.QueryRow(ctx, query, companyID, tipo).Scan(
		&s.ID, &s.CompanyID, &s.Tipo, &s.Prefix, &s.FinalNumber, &s.CurrentValue,
		&s.IsActive, &s.ExpiryDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock ncf sequence: %w", err)
	}
	return &s, nil
}

// IncrementCurrent consume el siguiente número de la secuencia.
func (r *NCFSequenceRepo) IncrementCurrent(ctx context.Context, id string) error {
	query := `
		UPDATE ncf_sequences
		SET current_value = current_value + 1, updated_at = NOW()
		WHERE id = $1 AND current_value < final_number`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment ncf sequence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNCFExhausted
	}
	return nil
}
