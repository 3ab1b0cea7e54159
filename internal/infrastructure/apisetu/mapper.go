package apisetu

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

const (
	notAvailable   = "N/A"
	defaultCountry = "India"
)

// toCompany normaliza el payload de la autoridad a la forma de IECCompany.
// raw se guarda sin modificar para auditoría.
func toCompany(code string, p iecResponse, raw json.RawMessage) *entity.IECCompany {
	name := strings.TrimSpace(p.EntityName)
	if name == "" {
		name = notAvailable
	}
	address := strings.TrimSpace(strings.TrimSpace(p.Address1) + " " + strings.TrimSpace(p.Address2))
	if address == "" {
		address = notAvailable
	}
	status := entity.CompanyStatusInactive
	// iecStatus 0 significa IEC vigente; cualquier otro valor es inactivo.
	if p.IECStatus.isZero() {
		status = entity.CompanyStatusActive
	}
	return &entity.IECCompany{
		IECCode:        code,
		CompanyName:    name,
		Address:        address,
		City:           nullable(p.City),
		State:          nullable(p.State),
		Pincode:        nullable(string(p.PinCode)),
		Country:        defaultCountry,
		Status:         status,
		ValidFrom:      nullable(p.IECIssueDate),
		RawAPIResponse: raw,
	}
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
