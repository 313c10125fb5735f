package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-admin/internal/application/auth"
	"github.com/tu-usuario/tienda-admin/internal/application/dto"
	"github.com/tu-usuario/tienda-admin/internal/domain"
	"github.com/tu-usuario/tienda-admin/pkg/config"
	"github.com/tu-usuario/tienda-admin/pkg/session"
)

// AuthHandler maneja bootstrap del primer admin, login y logout (público).
type AuthHandler struct {
	uc  *auth.UseCase
	cfg config.SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, cfg config.SessionConfig) *AuthHandler {
	if cfg.CookieName == "" {
		cfg.CookieName = session.DefaultCookieName
	}
	return &AuthHandler{uc: uc, cfg: cfg}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// CreateFirstAdmin godoc
// @Summary      Crear el primer administrador del sistema
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BootstrapRequest  true  "Datos del primer admin"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/create-first-admin [post]
func (h *AuthHandler) CreateFirstAdmin(c *fiber.Ctx) error {
	var in dto.BootstrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	user, err := h.uc.BootstrapFirstAdmin(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyInitialized) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_INITIALIZED", Message: "el sistema ya tiene usuarios"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "email o username ya existen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	token, err := session.Issue(h.cfg.Secret, user.ID, user.Username, h.cfg.Issuer, session.BootstrapTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	h.setSessionCookie(c, token, session.BootstrapTTL)
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Message: "administrador creado"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/log-in [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "WRONG_CREDENTIALS", Message: "credenciales incorrectas"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "WRONG_CREDENTIALS", Message: "credenciales incorrectas"})
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_ATTEMPTS", Message: "demasiados intentos fallidos"})
		}
		if errors.Is(err, domain.ErrWrongCredentials) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "WRONG_CREDENTIALS", Message: "credenciales incorrectas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	ttl := time.Duration(h.cfg.ExpMinutes) * time.Minute
	token, err := session.Issue(h.cfg.Secret, user.ID, user.Username, h.cfg.Issuer, ttl)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	h.setSessionCookie(c, token, ttl)
	return c.JSON(dto.SessionResponse{Message: "sesión iniciada"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/log-out [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Idempotente: expirar la cookie basta, sin estado en servidor.
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}
