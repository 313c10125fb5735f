package entity

// MaxLoginRetries intentos fallidos permitidos antes de bloquear el login.
// Con el contador por encima de este valor el usuario debe contactar soporte.
const MaxLoginRetries = 5

// User representa una cuenta del backoffice.
type User struct {
	ID                   string
	Email                string
	Username             string
	FirstName            string
	LastName             string
	IsEmailVerified      bool
	PasswordRetryCounter int
	PasswordHash         string // bcrypt hash, nunca plano en dominio después de persistir
}

// Locked indica si la cuenta superó el límite de intentos fallidos de login.
func (u *User) Locked() bool {
	return u.PasswordRetryCounter > MaxLoginRetries
}
