package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-kit/lostfound-service/internal/api/dto"
	"github.com/campus-kit/lostfound-service/internal/service"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// AuthHandler exposes staff login and registration endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/staff/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	profile, token, exp, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profile,
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Register handles POST /auth/staff/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return apperrors.NewValidationError("username, password, name required", nil)
	}

	id, err := h.auth.CreateAccount(c.Context(), req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"id": id},
	})
}

// ListStaff handles GET /staff.
func (h *AuthHandler) ListStaff(c *fiber.Ctx) error {
	staff, err := h.auth.ListStaff(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staff})
}
