package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"allupro/internal/middleware"
	"allupro/internal/models"
	"allupro/internal/repositories"
	"allupro/internal/services"
	"allupro/internal/session"
)

// AuthHandler handles HTTP requests for registration, login and the session
// lifecycle.
type AuthHandler struct {
	authService   *services.AuthService
	sessions      session.Store
	validate      *validator.Validate
	sessionTTL    time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions session.Store, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		validate:      validator.New(),
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes registers the authentication routes. None of these are
// gated: register and login establish the session, logout and check must
// answer sensibly without one.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
	router.Get("/auth/check", h.HandleCheckAuth)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// HandleRegister handles new user registration and binds a session on
// success.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	usuario, err := h.authService.Register(req.Nome, req.Email, req.Senha)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return badRequest(c, "Email já cadastrado")
		}
		return writeFailure(c, err)
	}

	if err := h.bindSession(c, usuario); err != nil {
		log.Printf("Error creating session after registration: %v", err)
		return writeFailure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    userPayload(usuario),
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// HandleLogin verifies credentials and binds a session on success.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return badRequest(c, "corpo da requisição inválido")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	usuario, err := h.authService.Login(req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Email ou senha incorretos",
			})
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return writeFailure(c, err)
	}

	if err := h.bindSession(c, usuario); err != nil {
		log.Printf("Error creating session after login: %v", err)
		return writeFailure(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userPayload(usuario),
	})
}

// HandleLogout clears the session. Logging out without one is not an error.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.CookieName); token != "" {
		if err := h.sessions.Delete(token); err != nil {
			log.Printf("Error deleting session on logout: %v", err)
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

// HandleCheckAuth reports whether the request carries a bound session. This
// is introspection, not gating: both outcomes are normal.
func (h *AuthHandler) HandleCheckAuth(c *fiber.Ctx) error {
	token := c.Cookies(middleware.CookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	identity, ok, err := h.sessions.Get(token)
	if err != nil {
		log.Printf("Session lookup failed on auth check: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":           identity.UserID,
			"nome":         identity.Nome,
			"tipo_usuario": identity.TipoUsuario,
		},
	})
}

// bindSession creates a server-side session for the user and hands the
// opaque token to the client as an HttpOnly cookie.
func (h *AuthHandler) bindSession(c *fiber.Ctx, usuario *models.Usuario) error {
	token, err := h.sessions.Create(session.Identity{
		UserID:      usuario.ID,
		Nome:        usuario.Nome,
		TipoUsuario: usuario.TipoUsuario,
	})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func userPayload(usuario *models.Usuario) fiber.Map {
	return fiber.Map{
		"id":           usuario.ID,
		"nome":         usuario.Nome,
		"email":        usuario.Email,
		"tipo_usuario": usuario.TipoUsuario,
	}
}
