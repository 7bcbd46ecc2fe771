package repository

import (
	"context"

	"github.com/facturadom/factura-rd/internal/domain/entity"
)

// UserRepository usuarios para autenticación.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
