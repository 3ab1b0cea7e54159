package dto

// Response sobre común de todas las respuestas: success + message (+ data en éxito).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Nunca incluye trazas ni payloads internos.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewError construye el cuerpo de error estándar.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
