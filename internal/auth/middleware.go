package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/campus-kit/lostfound-service/internal/domain"
	"github.com/campus-kit/lostfound-service/internal/repository"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Profile may be nil
// when no uploader profile is linked to the credential.
type Principal struct {
	Credential *domain.StaffCredential
	Profile    *domain.Profile
}

// IsTeacher reports whether the caller holds write access.
func (p *Principal) IsTeacher() bool {
	return p != nil && p.Profile.IsTeacher()
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens      *TokenManager
	credentials repository.CredentialRepository
	profiles    repository.ProfileRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, credentials repository.CredentialRepository, profiles repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, credentials: credentials, profiles: profiles}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	cred, err := m.credentials.GetByID(c.Context(), claims.CredentialID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("account not found")
		}
		return apperrors.MapError(err)
	}

	principal := &Principal{Credential: cred}

	// Role authority lives on the profile, not on the token claim.
	profile, err := m.profiles.GetByCredential(c.Context(), cred.ID)
	if err != nil && err != pgx.ErrNoRows {
		return apperrors.MapError(err)
	}
	principal.Profile = profile

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
