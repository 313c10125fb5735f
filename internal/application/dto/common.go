package dto

import (
	"net/mail"
	"regexp"
	"strings"
)

// Reglas de validación mantenidas a mano, desacopladas de los tipos de columna.
// Mismos patrones que el frontend de administración.
var (
	roleNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{8,25}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// passwordSymbols conjunto fijo de símbolos aceptados en contraseñas.
const passwordSymbols = "#?!@$%^&*-"

// validEmail validación sintáctica de email (RFC 5322 vía net/mail).
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validPassword exige mínimo 8 caracteres con mayúscula, minúscula, dígito y
// un símbolo del conjunto fijo.
func validPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// MessageResponse confirmación simple de una mutación.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
