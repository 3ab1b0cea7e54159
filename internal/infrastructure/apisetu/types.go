package apisetu

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// iecResponse subconjunto del payload v3 de DGFT que se normaliza. El resto se conserva en el raw.
type iecResponse struct {
	IECNumber    flexString `json:"iecNumber"`
	EntityName   string     `json:"entityName"`
	Address1     string     `json:"address1"`
	Address2     string     `json:"address2"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	PinCode      flexString `json:"pinCode"`
	IECStatus    flexString `json:"iecStatus"`
	IECIssueDate string     `json:"iecIssueDate"`
}

// errorResponse cuerpo de error de API Setu.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"errorDescription"`
	Message          string `json:"message"`
}

// flexString acepta cualquier valor JSON: strings tal cual (sin espacios), números en su forma
// textual, null como vacío y booleanos u objetos como su texto JSON compacto. Nunca falla el
// decode completo por el tipo de un campo.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*f = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*f = flexString(buf.String())
	}
	return nil
}

// isZero informa si el valor es numéricamente cero ("0", 0, 0.0).
func (f flexString) isZero() bool {
	n, err := strconv.ParseFloat(string(f), 64)
	return err == nil && n == 0
}

// missing informa si el valor no sirve como identificador: vacío, false o cero.
func (f flexString) missing() bool {
	return f == "" || f == "false" || f.isZero()
}
