package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de persistencia (sentinels devueltos por los adaptadores de repositorio).
var (
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrCodeAlreadyRegistered = errors.New("código IEC ya vinculado a un usuario")
	ErrUserIDTaken           = errors.New("user_id ya existe")
	ErrForeignKey            = errors.New("referencia inexistente")
)

// Kind clasifica un fallo para que la capa de transporte lo traduzca a un status.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindUpstream   Kind = "upstream"
	KindInternal   Kind = "internal"
)

// Error es el portador único de fallos del flujo de registro: clasificación + mensaje legible.
// Status solo se usa con KindUpstream (status devuelto por la autoridad externa).
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus devuelve el status de transporte asociado a la clasificación.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		if e.Status >= http.StatusBadRequest {
			return e.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Validation entrada del llamador mal formada (400).
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// Conflict regla de negocio violada por estado existente (409).
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Forbidden la regla de negocio prohíbe la operación (403).
func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

// NotFound recurso o código inexistente (404).
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Upstream la autoridad externa rechazó o falló; status se propaga tal cual.
func Upstream(status int, msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: msg, Err: err}
}

// Internal fallo inesperado (500).
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// AsError devuelve el *Error contenido en err. Los errores sin clasificar se envuelven
// como internal conservando el mensaje original.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return Internal(err.Error(), err)
}

// KindOf devuelve la clasificación de err (internal si no está clasificado).
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return AsError(err).Kind
}
