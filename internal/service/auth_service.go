package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campus-kit/lostfound-service/internal/auth"
	"github.com/campus-kit/lostfound-service/internal/config"
	"github.com/campus-kit/lostfound-service/internal/domain"
	"github.com/campus-kit/lostfound-service/internal/repository"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

// Demo seed account, provisioned on first login when enabled via
// AUTH_SEED_DEMO_ACCOUNT. Convenience for local setups, not a security
// feature.
const (
	demoUsername = "teacher1"
	demoPassword = "password123"
	demoName     = "Demo Teacher"
)

// AuthService coordinates staff login and account creation.
type AuthService struct {
	credentials repository.CredentialRepository
	profiles    repository.ProfileRepository
	tokenMgr    *auth.TokenManager
	bcryptCost  int
	seedDemo    bool
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CredentialRepo repository.CredentialRepository
	ProfileRepo    repository.ProfileRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		credentials: deps.CredentialRepo,
		profiles:    deps.ProfileRepo,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost:  cfg.BcryptCost,
		seedDemo:    cfg.SeedDemoAccount,
	}
}

// Login authenticates a staff account. Failures are always the generic
// invalid-username-or-password error; the caller can never tell an
// unknown account from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.PublicProfile, string, time.Time, error) {
	cred, err := s.credentials.GetByUsername(ctx, username)
	if err == pgx.ErrNoRows && s.seedDemo && username == demoUsername && password == demoPassword {
		if _, seedErr := s.CreateAccount(ctx, demoUsername, demoPassword, demoName, nil); seedErr != nil {
			return nil, "", time.Time{}, seedErr
		}
		cred, err = s.credentials.GetByUsername(ctx, username)
	}
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewAuthenticationFailed()
		}
		return nil, "", time.Time{}, apperrors.NewOperationFailed(err)
	}

	if err := auth.ComparePassword(cred.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewAuthenticationFailed()
	}

	role := domain.RoleMember
	if profile, err := s.profiles.GetByCredential(ctx, cred.ID); err == nil && profile != nil {
		role = profile.Role
	}

	token, exp, err := s.tokenMgr.GenerateToken(cred.ID, role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewOperationFailed(err)
	}

	public := cred.Public()
	return &public, token, exp, nil
}

// CreateAccount registers a staff account and its linked teacher
// profile. Usernames are unique; a taken name yields DUPLICATE_USERNAME.
func (s *AuthService) CreateAccount(ctx context.Context, username, password, name string, email *string) (string, error) {
	if _, err := s.credentials.GetByUsername(ctx, username); err == nil {
		return "", apperrors.NewDuplicateUsername(username)
	} else if err != pgx.ErrNoRows {
		return "", apperrors.NewOperationFailed(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", apperrors.NewOperationFailed(err)
	}

	cred := &domain.StaffCredential{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Email:        email,
	}
	if err := s.credentials.Create(ctx, cred); err != nil {
		return "", apperrors.NewOperationFailed(err)
	}

	profile := &domain.Profile{
		Name:         name,
		Email:        email,
		Role:         domain.RoleTeacher,
		CredentialID: &cred.ID,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return "", apperrors.NewOperationFailed(err)
	}

	return cred.ID, nil
}

// ListStaff returns every staff account without password hashes.
func (s *AuthService) ListStaff(ctx context.Context) ([]domain.PublicProfile, error) {
	creds, err := s.credentials.List(ctx)
	if err != nil {
		return nil, apperrors.NewOperationFailed(err)
	}
	result := make([]domain.PublicProfile, 0, len(creds))
	for i := range creds {
		result = append(result, creds[i].Public())
	}
	return result, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
