package dto

import (
	"time"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

// RegisterRequest entrada de POST /api/iec/register.
type RegisterRequest struct {
	IECCode string `json:"iec_code" form:"iec_code" validate:"required"`
}

// CompanyDetails datos de la empresa en la respuesta de registro.
type CompanyDetails struct {
	CompanyName string  `json:"company_name"`
	Address     string  `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	Country     string  `json:"country"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Status      string  `json:"status"`
}

// RegisterResponse datos devueltos tras un registro exitoso.
type RegisterResponse struct {
	UserID             string         `json:"user_id"`
	IECCode            string         `json:"iec_code"`
	VerificationStatus string         `json:"verification_status"`
	CompanyDetails     CompanyDetails `json:"company_details"`
	CreatedAt          time.Time      `json:"created_at"`
}

// UserCompanyDetails datos de la empresa en el detalle de usuario.
type UserCompanyDetails struct {
	CompanyName  string  `json:"company_name"`
	Address      string  `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	Country      string  `json:"country"`
	CompanyEmail *string `json:"company_email"`
	CompanyPhone *string `json:"company_phone"`
	Status       string  `json:"status"`
}

// UserDetailsResponse salida de GET /api/iec/user/:user_id.
type UserDetailsResponse struct {
	UserID             string             `json:"user_id"`
	IECCode            string             `json:"iec_code"`
	UserEmail          *string            `json:"user_email"`
	UserPhone          *string            `json:"user_phone"`
	VerificationStatus string             `json:"verification_status"`
	CompanyDetails     UserCompanyDetails `json:"company_details"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// CompanyResponse salida de GET /api/iec/company/:iec_code.
type CompanyResponse struct {
	IECCode          string    `json:"iec_code"`
	CompanyName      string    `json:"company_name"`
	Address          string    `json:"address"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	Pincode          *string   `json:"pincode"`
	Country          string    `json:"country"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Status           string    `json:"status"`
	RegistrationDate *string   `json:"registration_date"`
	ValidFrom        *string   `json:"valid_from"`
	ValidTo          *string   `json:"valid_to"`
	NewlyVerified    bool      `json:"newly_verified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToRegisterResponse proyecta el registro unido a la forma de respuesta de registro.
func ToRegisterResponse(u *entity.RegisteredUser) RegisterResponse {
	return RegisterResponse{
		UserID:             u.UserID,
		IECCode:            u.IECCode,
		VerificationStatus: u.VerificationStatus,
		CompanyDetails: CompanyDetails{
			CompanyName: u.CompanyName,
			Address:     u.Address,
			City:        u.City,
			State:       u.State,
			Pincode:     u.Pincode,
			Country:     u.Country,
			Email:       u.CompanyEmail,
			Phone:       u.CompanyPhone,
			Status:      u.Status,
		},
		CreatedAt: u.CreatedAt,
	}
}

// ToUserDetailsResponse proyecta el registro unido a la forma de detalle de usuario.
func ToUserDetailsResponse(u *entity.RegisteredUser) UserDetailsResponse {
	return UserDetailsResponse{
		UserID:             u.UserID,
		IECCode:            u.IECCode,
		UserEmail:          u.UserEmail,
		UserPhone:          u.UserPhone,
		VerificationStatus: u.VerificationStatus,
		CompanyDetails: UserCompanyDetails{
			CompanyName:  u.CompanyName,
			Address:      u.Address,
			City:         u.City,
			State:        u.State,
			Pincode:      u.Pincode,
			Country:      u.Country,
			CompanyEmail: u.CompanyEmail,
			CompanyPhone: u.CompanyPhone,
			Status:       u.Status,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToCompanyResponse proyecta una empresa verificada (sin el payload crudo de la autoridad).
func ToCompanyResponse(c *entity.IECCompany, isNew bool) CompanyResponse {
	return CompanyResponse{
		IECCode:          c.IECCode,
		CompanyName:      c.CompanyName,
		Address:          c.Address,
		City:             c.City,
		State:            c.State,
		Pincode:          c.Pincode,
		Country:          c.Country,
		Email:            c.Email,
		Phone:            c.Phone,
		Status:           c.Status,
		RegistrationDate: c.RegistrationDate,
		ValidFrom:        c.ValidFrom,
		ValidTo:          c.ValidTo,
		NewlyVerified:    isNew,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
