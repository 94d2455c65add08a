package handlers

import (
	"errors"

	"riskdesk/internal/middleware"
	"riskdesk/internal/services/auth"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates against the demo credential table and returns the
// identity plus a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	identity, token, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":          identity.UserID,
			"email":       identity.Email,
			"role":        identity.Role,
			"permissions": identity.Permissions,
		},
	})
}

// Logout clears the stored session. Always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims != nil {
		if err := h.authService.Logout(c.Context(), claims.SessionID); err != nil {
			return utils.InternalError(c, "Logout failed")
		}
	}
	return utils.Success(c, fiber.Map{"message": "logged out"})
}

// Me returns the authenticated identity.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return utils.Unauthorized(c, "unauthorized")
	}
	return utils.Success(c, identity)
}
