package entity

import (
	"encoding/json"
	"time"
)

// Estados posibles de una empresa verificada.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// IECCompany representa una empresa verificada contra la autoridad DGFT, identificada por su código IEC normalizado.
// Una vez creada solo se actualiza por código (nunca se renombra el código).
type IECCompany struct {
	IECCode          string
	CompanyName      string
	Address          string
	City             *string
	State            *string
	Pincode          *string
	Country          string
	Email            *string // la API v3 no lo expone; queda nil
	Phone            *string
	Status           string // active, inactive
	RegistrationDate *string
	ValidFrom        *string
	ValidTo          *string
	RawAPIResponse   json.RawMessage // payload original de la autoridad, sin modificar (auditoría)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive informa si la empresa puede respaldar un registro.
func (c *IECCompany) IsActive() bool {
	return c != nil && c.Status == CompanyStatusActive
}
