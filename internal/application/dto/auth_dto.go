package dto

import "github.com/tu-usuario/tienda-admin/internal/domain"

// BootstrapRequest entrada para crear el primer admin del sistema.
// El campo password_hash llega en texto plano y se hashea en el use case;
// se conserva el nombre del contrato del frontend.
type BootstrapRequest struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"password_hash"`
}

// Validate email sintáctico, username alfanumérico 8-25, nombres alfabéticos
// y contraseña con mayúscula, minúscula, dígito y símbolo.
func (r BootstrapRequest) Validate() error {
	if !validEmail(r.Email) {
		return domain.ErrValidation
	}
	if !usernameRegex.MatchString(r.Username) {
		return domain.ErrValidation
	}
	if !nameRegex.MatchString(r.FirstName) || !nameRegex.MatchString(r.LastName) {
		return domain.ErrValidation
	}
	if !validPassword(r.PasswordHash) {
		return domain.ErrValidation
	}
	return nil
}

// LoginRequest entrada para iniciar sesión. password_hash transporta la
// contraseña en texto plano; el hash almacenado nunca sale del servidor.
type LoginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Validate email sintáctico y contraseña con el formato mínimo. Un formato
// inválido se reporta igual que credenciales incorrectas para no filtrar
// qué campo falló.
func (r LoginRequest) Validate() error {
	if !validEmail(r.Email) || !validPassword(r.PasswordHash) {
		return domain.ErrWrongCredentials
	}
	return nil
}

// SessionResponse confirmación de login/bootstrap con el username de la sesión.
type SessionResponse struct {
	Message string `json:"message"`
}
