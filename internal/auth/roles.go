package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// RequireTeacher ensures the caller is authenticated and holds the
// teacher role. Every write operation is gated by this check before
// any mutation happens.
func RequireTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsTeacher() {
			return apperrors.NewForbidden("teacher role required")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present without checking
// its role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
