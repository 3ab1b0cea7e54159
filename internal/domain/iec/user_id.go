package iec

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

// UserIDPrefix prefijo fijo de todos los user_id generados.
const UserIDPrefix = "USR"

// UserIDGenerator produce identificadores de usuario.
type UserIDGenerator interface {
	NewUserID() (string, error)
}

// ULIDGenerator genera "USR" + ULID: 48 bits de tiempo en ms (monótono) + 80 bits aleatorios.
// Dentro del mismo milisegundo la entropía se incrementa, así que los IDs de un proceso no colisionan.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy io.Reader // ulid.Monotonic; no es seguro entre goroutines, lo protege mu
	now     func() time.Time
}

// NewULIDGenerator construye el generador con entropía criptográfica.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// NewUserID devuelve un identificador nuevo. Seguro para uso concurrente.
func (g *ULIDGenerator) NewUserID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generar user_id: %w", err)
	}
	return UserIDPrefix + id.String(), nil
}
