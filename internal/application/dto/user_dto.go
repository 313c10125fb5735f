package dto

import "github.com/tu-usuario/tienda-admin/internal/domain"

// UserRoleInput un id de rol dentro del body de creación de usuario.
type UserRoleInput struct {
	UserRoleID string `json:"user_role_id"`
}

// CreateUserRequest entrada para aprovisionar un usuario con sus roles.
// password_hash llega en texto plano y se hashea en el use case.
type CreateUserRequest struct {
	Email        string          `json:"email"`
	Username     string          `json:"username"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	PasswordHash string          `json:"password_hash"`
	UserRole     []UserRoleInput `json:"userRole"`
}

// Validate mismos patrones que el bootstrap; los roles no pueden llevar id vacío.
func (r CreateUserRequest) Validate() error {
	base := BootstrapRequest{
		Email:        r.Email,
		Username:     r.Username,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
	}
	if err := base.Validate(); err != nil {
		return err
	}
	for _, ur := range r.UserRole {
		if ur.UserRoleID == "" {
			return domain.ErrValidation
		}
	}
	return nil
}

// RoleIDs devuelve los ids de rol planos del body.
func (r CreateUserRequest) RoleIDs() []string {
	out := make([]string, 0, len(r.UserRole))
	for _, ur := range r.UserRole {
		out = append(out, ur.UserRoleID)
	}
	return out
}
