// Package memory implementa los puertos de persistencia en memoria, con las mismas reglas de
// unicidad que el esquema PostgreSQL. Se usa en tests y con DB_DRIVER=memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/iec-registro/internal/domain"
	"github.com/jhoicas/iec-registro/internal/domain/entity"
	"github.com/jhoicas/iec-registro/internal/domain/repository"
)

var (
	_ repository.CompanyRepository      = (*CompanyRepo)(nil)
	_ repository.RegistrationRepository = (*RegistrationRepo)(nil)
)

// Store agrupa ambas tablas bajo un mismo mutex (el join necesita ver las dos).
type Store struct {
	mu            sync.RWMutex
	companies     map[string]entity.IECCompany
	registrations map[string]entity.UserRegistration
	byCode        map[string]string // iec_code -> user_id
	now           func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		companies:     make(map[string]entity.IECCompany),
		registrations: make(map[string]entity.UserRegistration),
		byCode:        make(map[string]string),
		now:           time.Now,
	}
}

// Companies devuelve la vista CompanyRepository del almacén.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Registrations devuelve la vista RegistrationRepository del almacén.
func (s *Store) Registrations() *RegistrationRepo { return &RegistrationRepo{s: s} }

// Ping siempre responde; existe para el health check.
func (s *Store) Ping(context.Context) error { return nil }

// CompanyRepo tabla iec_companies en memoria.
type CompanyRepo struct{ s *Store }

func (r *CompanyRepo) FindByCode(_ context.Context, code string) (*entity.IECCompany, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepo) Create(_ context.Context, c *entity.IECCompany) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.IECCode]; ok {
		return domain.ErrDuplicate
	}
	now := r.s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.companies[c.IECCode] = *c
	return nil
}

func (r *CompanyRepo) Update(_ context.Context, code string, c *entity.IECCompany) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.companies[code]
	if !ok {
		return domain.NotFound("IEC company not found")
	}
	c.IECCode = code
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = r.s.now()
	r.s.companies[code] = *c
	return nil
}

// RegistrationRepo tabla user_registrations en memoria.
type RegistrationRepo struct{ s *Store }

func (r *RegistrationRepo) Create(_ context.Context, reg *entity.UserRegistration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.registrations[reg.UserID]; ok {
		return domain.ErrUserIDTaken
	}
	if _, ok := r.s.byCode[reg.IECCode]; ok {
		return domain.ErrCodeAlreadyRegistered
	}
	if _, ok := r.s.companies[reg.IECCode]; !ok {
		return domain.ErrForeignKey
	}
	if reg.VerificationStatus == "" {
		reg.VerificationStatus = entity.VerificationStatusVerified
	}
	now := r.s.now()
	reg.CreatedAt, reg.UpdatedAt = now, now
	r.s.registrations[reg.UserID] = *reg
	r.s.byCode[reg.IECCode] = reg.UserID
	return nil
}

func (r *RegistrationRepo) FindByUserID(_ context.Context, userID string) (*entity.RegisteredUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reg, ok := r.s.registrations[userID]
	if !ok {
		return nil, nil
	}
	c, ok := r.s.companies[reg.IECCode]
	if !ok {
		return nil, nil
	}
	return entity.JoinRegistration(&reg, &c), nil
}

func (r *RegistrationRepo) ExistsByUserID(_ context.Context, userID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.registrations[userID]
	return ok, nil
}

func (r *RegistrationRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, reg := range r.s.registrations {
		if reg.UserEmail != nil && *reg.UserEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *RegistrationRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.byCode[code]
	return ok, nil
}
