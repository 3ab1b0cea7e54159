package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/iec-registro/internal/domain"
	"github.com/jhoicas/iec-registro/internal/domain/entity"
	"github.com/jhoicas/iec-registro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `iec_code, company_name, address, city, state, pincode, country, email, phone,
	status, registration_date, valid_from, valid_to, raw_api_response, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (tabla iec_companies).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// FindByCode obtiene una empresa por código IEC normalizado.
func (r *CompanyRepo) FindByCode(ctx context.Context, code string) (*entity.IECCompany, error) {
	row := r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM iec_companies WHERE iec_code = $1`, code)
	c, err := scanCompany(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by iec_code: %w", err)
	}
	return c, nil
}

// Create persiste una empresa verificada. Devuelve domain.ErrDuplicate si el código ya existe.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.IECCompany) error {
	const query = `
		INSERT INTO iec_companies
			(iec_code, company_name, address, city, state, pincode, country, email, phone,
			 status, registration_date, valid_from, valid_to, raw_api_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.IECCode, c.CompanyName, c.Address, c.City, c.State, c.Pincode, c.Country,
		c.Email, c.Phone, c.Status, c.RegistrationDate, c.ValidFrom, c.ValidTo,
		rawJSON(c.RawAPIResponse),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapPostgresError("insert iec_company", err)
}

// Update reemplaza los datos de la empresa identificada por code (el código nunca cambia).
func (r *CompanyRepo) Update(ctx context.Context, code string, c *entity.IECCompany) error {
	const query = `
		UPDATE iec_companies
		   SET company_name = $2, address = $3, city = $4, state = $5, pincode = $6,
		       country = $7, email = $8, phone = $9, status = $10, registration_date = $11,
		       valid_from = $12, valid_to = $13, raw_api_response = $14, updated_at = now()
		 WHERE iec_code = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		code, c.CompanyName, c.Address, c.City, c.State, c.Pincode, c.Country,
		c.Email, c.Phone, c.Status, c.RegistrationDate, c.ValidFrom, c.ValidTo,
		rawJSON(c.RawAPIResponse),
	).Scan(&c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.NotFound("IEC company not found")
		}
		return mapPostgresError("update iec_company", err)
	}
	c.IECCode = code
	return nil
}

func scanCompany(row pgxScanner) (*entity.IECCompany, error) {
	var c entity.IECCompany
	var raw []byte
	err := row.Scan(
		&c.IECCode, &c.CompanyName, &c.Address, &c.City, &c.State, &c.Pincode, &c.Country,
		&c.Email, &c.Phone, &c.Status, &c.RegistrationDate, &c.ValidFrom, &c.ValidTo,
		&raw, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.RawAPIResponse = raw
	return &c, nil
}

// pgxScanner abstrae pgx.Row y pgx.Rows.
type pgxScanner interface {
	Scan(dest ...any) error
}

// rawJSON envía NULL cuando no hay payload.
func rawJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
