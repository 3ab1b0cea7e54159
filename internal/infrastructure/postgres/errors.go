package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/iec-registro/internal/domain"
)

// Nombres de constraints declarados en migrations/1_iec_schema.sql.
const (
	constraintCompanyPK        = "iec_companies_pkey"
	constraintRegistrationPK   = "user_registrations_pkey"
	constraintRegistrationCode = "user_registrations_iec_code_key"
	constraintRegistrationFK   = "user_registrations_iec_code_fkey"
)

// mapPostgresError traduce violaciones de constraints a sentinels del dominio.
// Cualquier otro error se devuelve envuelto con op.
func mapPostgresError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintRegistrationCode:
			return domain.ErrCodeAlreadyRegistered
		case constraintRegistrationPK:
			return domain.ErrUserIDTaken
		case constraintCompanyPK:
			return domain.ErrDuplicate
		default:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrDuplicate, pgErr.ConstraintName)
		}
	case pgerrcode.ForeignKeyViolation:
		if pgErr.ConstraintName == constraintRegistrationFK {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrForeignKey, pgErr.Detail)
		}
		return fmt.Errorf("%s: %w: %s", op, domain.ErrForeignKey, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%s: postgres [%s] %s: %w", op, pgErr.Code, pgErr.Message, err)
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
