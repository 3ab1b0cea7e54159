package repository

import (
	"context"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para empresas IEC verificadas (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// FindByCode devuelve (nil, nil) si el código no existe.
	FindByCode(ctx context.Context, code string) (*entity.IECCompany, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, company *entity.IECCompany) error
	Update(ctx context.Context, code string, company *entity.IECCompany) error
}
