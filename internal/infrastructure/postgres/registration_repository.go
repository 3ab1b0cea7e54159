package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
	"github.com/jhoicas/iec-registro/internal/domain/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementación del puerto RegistrationRepository sobre PostgreSQL (tabla user_registrations).
type RegistrationRepo struct {
	q Querier
}

// NewRegistrationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistrationRepository(q Querier) *RegistrationRepo {
	return &RegistrationRepo{q: q}
}

// Create persiste el vínculo usuario ↔ IEC. La constraint UNIQUE(iec_code) se traduce a
// domain.ErrCodeAlreadyRegistered y la colisión de PK a domain.ErrUserIDTaken.
func (r *RegistrationRepo) Create(ctx context.Context, reg *entity.UserRegistration) error {
	status := reg.VerificationStatus
	if status == "" {
		status = entity.VerificationStatusVerified
	}
	const query = `
		INSERT INTO user_registrations (user_id, iec_code, user_email, user_phone, verification_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING verification_status, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		reg.UserID, reg.IECCode, reg.UserEmail, reg.UserPhone, status,
	).Scan(&reg.VerificationStatus, &reg.CreatedAt, &reg.UpdatedAt)
	return mapPostgresError("insert user_registration", err)
}

// FindByUserID devuelve el registro unido con su empresa.
func (r *RegistrationRepo) FindByUserID(ctx context.Context, userID string) (*entity.RegisteredUser, error) {
	const query = `
		SELECT ur.user_id, ur.iec_code, ur.user_email, ur.user_phone, ur.verification_status,
		       ur.created_at, ur.updated_at,
		       ic.company_name, ic.address, ic.city, ic.state, ic.pincode, ic.country,
		       ic.email, ic.phone, ic.status
		  FROM user_registrations ur
		  JOIN iec_companies ic ON ur.iec_code = ic.iec_code
		 WHERE ur.user_id = $1`
	var u entity.RegisteredUser
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&u.UserID, &u.IECCode, &u.UserEmail, &u.UserPhone, &u.VerificationStatus,
		&u.CreatedAt, &u.UpdatedAt,
		&u.CompanyName, &u.Address, &u.City, &u.State, &u.Pincode, &u.Country,
		&u.CompanyEmail, &u.CompanyPhone, &u.Status,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user_registration by user_id: %w", err)
	}
	return &u, nil
}

// ExistsByUserID informa si el user_id ya existe.
func (r *RegistrationRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return r.exists(ctx, "user_id", `SELECT EXISTS (SELECT 1 FROM user_registrations WHERE user_id = $1)`, userID)
}

// ExistsByEmail informa si algún registro usa el email.
func (r *RegistrationRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "user_email", `SELECT EXISTS (SELECT 1 FROM user_registrations WHERE user_email = $1)`, email)
}

// ExistsByCode informa si el código IEC ya respalda un registro.
func (r *RegistrationRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "iec_code", `SELECT EXISTS (SELECT 1 FROM user_registrations WHERE iec_code = $1)`, code)
}

func (r *RegistrationRepo) exists(ctx context.Context, field, query, arg string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("check user_registration by %s: %w", field, err)
	}
	return ok, nil
}
