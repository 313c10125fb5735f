package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyInitialized = errors.New("el sistema ya tiene un usuario inicial")
	ErrWrongCredentials   = errors.New("credenciales incorrectas")
	ErrTooManyAttempts    = errors.New("demasiados intentos fallidos")
	ErrUnauthorized       = errors.New("no autorizado")
)
