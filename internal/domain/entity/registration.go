package entity

import "time"

// VerificationStatusVerified es el único estado con el que se crea un registro.
const VerificationStatusVerified = "verified"

// UserRegistration vincula un usuario generado con un código IEC verificado (un IEC, un registro).
type UserRegistration struct {
	UserID             string
	IECCode            string
	UserEmail          *string
	UserPhone          *string
	VerificationStatus string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RegisteredUser proyección del registro unido con los datos de su empresa.
type RegisteredUser struct {
	UserRegistration

	CompanyName  string
	Address      string
	City         *string
	State        *string
	Pincode      *string
	Country      string
	CompanyEmail *string
	CompanyPhone *string
	Status       string
}

// JoinRegistration arma la proyección unida a partir de un registro y su empresa.
func JoinRegistration(r *UserRegistration, c *IECCompany) *RegisteredUser {
	if r == nil || c == nil {
		return nil
	}
	return &RegisteredUser{
		UserRegistration: *r,
		CompanyName:      c.CompanyName,
		Address:          c.Address,
		City:             c.City,
		State:            c.State,
		Pincode:          c.Pincode,
		Country:          c.Country,
		CompanyEmail:     c.Email,
		CompanyPhone:     c.Phone,
		Status:           c.Status,
	}
}
