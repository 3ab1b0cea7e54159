package ports

import (
	"context"

	"github.com/jhoicas/iec-registro/internal/domain/entity"
)

// IECVerifier define el puerto de salida hacia la autoridad que certifica códigos IEC.
// Cualquier adaptador (API Setu/DGFT, stub de pruebas) debe implementar esta interfaz.
type IECVerifier interface {
	// Verify hace una única llamada a la autoridad (sin reintentos) y devuelve la empresa ya
	// normalizada con el payload original adjunto. Los fallos llegan como *domain.Error:
	// not_found si el código no es válido, upstream si la autoridad rechaza o falla.
	Verify(ctx context.Context, code string) (*entity.IECCompany, error)
}
