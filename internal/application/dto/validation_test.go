package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
)

func validUser() dto.BootstrapRequest {
	return dto.BootstrapRequest{
		Email:        "admin@tienda.dev",
		Username:     "adminuser01",
		FirstName:    "Ana",
		LastName:     "Gomez",
		PasswordHash: "Segura#123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRoleRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		in      dto.CreateRoleRequest
		wantErr bool
	}{
		{"nombre alfanumérico válido", dto.CreateRoleRequest{Name: "editor2"}, false},
		{"con privilegios válidos", dto.CreateRoleRequest{
			Name:          "editor",
			RolePrivilege: []dto.RolePrivilegeInput{{Privilege: "product.read"}},
		}, false},
		{"nombre vacío", dto.CreateRoleRequest{Name: ""}, true},
		{"nombre con espacios", dto.CreateRoleRequest{Name: "mi rol"}, true},
		{"nombre con símbolos", dto.CreateRoleRequest{Name: "rol-x"}, true},
		{"privilegio fuera de la enumeración", dto.CreateRoleRequest{
			Name:          "editor",
			RolePrivilege: []dto.RolePrivilegeInput{{Privilege: "product.destroy"}},
		}, true},
		{"privilegio vacío", dto.CreateRoleRequest{
			Name:          "editor",
			RolePrivilege: []dto.RolePrivilegeInput{{Privilege: ""}},
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteRolesRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.DeleteRolesRequest{ID: []dto.RoleIDInput{{ID: "a"}}}.Validate())
	assert.Error(t, dto.DeleteRolesRequest{}.Validate(), "lista vacía es inválida")
	assert.Error(t, dto.DeleteRolesRequest{ID: []dto.RoleIDInput{{ID: ""}}}.Validate(),
		"id vacío dentro de la lista es inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y auth
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrapRequest_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.BootstrapRequest)
	}{
		{"email sin arroba", func(r *dto.BootstrapRequest) { r.Email = "no-es-email" }},
		{"username corto (7)", func(r *dto.BootstrapRequest) { r.Username = "corto77" }},
		{"username largo (26)", func(r *dto.BootstrapRequest) { r.Username = "abcdefghijklmnopqrstuvwxyz" }},
		{"username con símbolos", func(r *dto.BootstrapRequest) { r.Username = "admin_user" }},
		{"nombre con dígitos", func(r *dto.BootstrapRequest) { r.FirstName = "Ana3" }},
		{"apellido vacío", func(r *dto.BootstrapRequest) { r.LastName = "" }},
		{"contraseña corta", func(r *dto.BootstrapRequest) { r.PasswordHash = "Ab#1" }},
		{"contraseña sin mayúscula", func(r *dto.BootstrapRequest) { r.PasswordHash = "segura#123" }},
		{"contraseña sin minúscula", func(r *dto.BootstrapRequest) { r.PasswordHash = "SEGURA#123" }},
		{"contraseña sin dígito", func(r *dto.BootstrapRequest) { r.PasswordHash = "Segura#abc" }},
		{"contraseña sin símbolo", func(r *dto.BootstrapRequest) { r.PasswordHash = "Segura1234" }},
	}

	assert.NoError(t, validUser().Validate(), "el caso base debe ser válido")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validUser()
			tc.mutate(&in)
			assert.ErrorIs(t, in.Validate(), domain.ErrValidation)
		})
	}
}

// Los límites exactos del username (8 y 25) son válidos.
func TestBootstrapRequest_UsernameEnLimites(t *testing.T) {
	in := validUser()
	in.Username = "abcd1234"
	assert.NoError(t, in.Validate(), "8 caracteres es válido")

	in.Username = "a234567890123456789012345"
	assert.NoError(t, in.Validate(), "25 caracteres es válido")
}

// Un login con formato inválido devuelve el mismo error que credenciales
// incorrectas, sin revelar qué campo falló.
func TestLoginRequest_FormatoInvalido_ErrorUniforme(t *testing.T) {
	err := dto.LoginRequest{Email: "no-es-email", PasswordHash: "Segura#123"}.Validate()
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	err = dto.LoginRequest{Email: "admin@tienda.dev", PasswordHash: "corta"}.Validate()
	assert.ErrorIs(t, err, domain.ErrWrongCredentials)

	assert.NoError(t, dto.LoginRequest{Email: "admin@tienda.dev", PasswordHash: "Segura#123"}.Validate())
}

func TestCreateUserRequest_RolConIDVacio_Invalido(t *testing.T) {
	base := validUser()
	in := dto.CreateUserRequest{
		Email:        base.Email,
		Username:     base.Username,
		FirstName:    base.FirstName,
		LastName:     base.LastName,
		PasswordHash: base.PasswordHash,
		UserRole:     []dto.UserRoleInput{{UserRoleID: ""}},
	}
	assert.ErrorIs(t, in.Validate(), domain.ErrValidation)

	in.UserRole = []dto.UserRoleInput{{UserRoleID: "role-1"}}
	assert.NoError(t, in.Validate())
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := dto.CreateProductRequest{
		Code:  "SKU-001",
		Price: decimal.NewFromInt(10),
		Translations: []dto.TranslationInput{
			{LanguageID: "lang-1", Name: "Taza"},
		},
	}
	assert.NoError(t, valid.Validate())

	in := valid
	in.Code = ""
	assert.Error(t, in.Validate(), "código vacío")

	in = valid
	in.Price = decimal.NewFromInt(-1)
	assert.Error(t, in.Validate(), "precio negativo")

	in = valid
	in.Status = "archived"
	assert.Error(t, in.Validate(), "estado fuera de la enumeración")

	in = valid
	in.Translations = []dto.TranslationInput{{LanguageID: "", Name: "Taza"}}
	assert.Error(t, in.Validate(), "traducción sin idioma")
}

func TestRegisterStockRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.RegisterStockRequest{ImportQuantity: 5}.Validate())
	assert.NoError(t, dto.RegisterStockRequest{ExportQuantity: 3}.Validate())
	assert.Error(t, dto.RegisterStockRequest{}.Validate(), "ambas cantidades en cero")
	assert.Error(t, dto.RegisterStockRequest{ImportQuantity: -1}.Validate(), "cantidad negativa")
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	contact := dto.OrderContactInput{
		FirstName:    "Ana",
		LastName:     "Gomez",
		Email:        "ana@tienda.dev",
		PhoneNumber:  "5551234",
		AddressLine1: "Calle 1",
		City:         "Bogota",
		ZipCode:      "11001",
		Country:      "CO",
	}
	valid := dto.CreateOrderRequest{
		Items:    []dto.OrderItemInput{{ProductID: "p-1", Quantity: 2}},
		Billing:  contact,
		Shipping: contact,
	}
	assert.NoError(t, valid.Validate())

	in := valid
	in.Items = nil
	assert.Error(t, in.Validate(), "sin items")

	in = valid
	in.Items = []dto.OrderItemInput{{ProductID: "p-1", Quantity: 0}}
	assert.Error(t, in.Validate(), "cantidad menor a 1")

	in = valid
	in.DiscountType = "coupon"
	assert.Error(t, in.Validate(), "tipo de descuento fuera de la enumeración")

	in = valid
	in.DiscountValue = decimal.NewFromInt(-5)
	assert.Error(t, in.Validate(), "descuento negativo")

	in = valid
	in.Billing.Email = "no-es-email"
	assert.Error(t, in.Validate(), "facturación requiere email válido")

	// El envío no requiere email.
	in = valid
	in.Shipping.Email = ""
	assert.NoError(t, in.Validate())
}
