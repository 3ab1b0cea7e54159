package repository

import (
	"context"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

// RegistrationRepository define el puerto de persistencia para los vínculos usuario ↔ IEC.
type RegistrationRepository interface {
	// FindByUserID devuelve el registro unido con su empresa, o (nil, nil) si no existe.
	FindByUserID(ctx context.Context, userID string) (*entity.RegisteredUser, error)
	// Create devuelve domain.ErrCodeAlreadyRegistered o domain.ErrUserIDTaken ante violaciones de unicidad.
	Create(ctx context.Context, reg *entity.UserRegistration) error
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
