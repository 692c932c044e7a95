package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-kit/lostfound-service/internal/config"
	"github.com/campus-kit/lostfound-service/internal/domain"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

func testAuthConfig(seedDemo bool) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
		SeedDemoAccount:       seedDemo,
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	aliceHash := hashFor(t, "secret")

	tests := []struct {
		name         string
		username     string
		password     string
		setupMock    func(*MockCredentialRepository, *MockProfileRepository)
		expectedCode string
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "secret",
			setupMock: func(creds *MockCredentialRepository, profiles *MockProfileRepository) {
				creds.On("GetByUsername", mock.Anything, "alice").Return(&domain.StaffCredential{
					ID:           "cred-1",
					Username:     "alice",
					PasswordHash: aliceHash,
					Name:         "Alice",
				}, nil)
				profiles.On("GetByCredential", mock.Anything, "cred-1").Return(&domain.Profile{
					ID:   "profile-1",
					Role: domain.RoleTeacher,
				}, nil)
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(creds *MockCredentialRepository, profiles *MockProfileRepository) {
				creds.On("GetByUsername", mock.Anything, "alice").Return(&domain.StaffCredential{
					ID:           "cred-1",
					Username:     "alice",
					PasswordHash: aliceHash,
					Name:         "Alice",
				}, nil)
			},
			expectedCode: "AUTHENTICATION_FAILED",
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "secret",
			setupMock: func(creds *MockCredentialRepository, profiles *MockProfileRepository) {
				creds.On("GetByUsername", mock.Anything, "nobody").Return(nil, pgx.ErrNoRows)
			},
			expectedCode: "AUTHENTICATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := new(MockCredentialRepository)
			profiles := new(MockProfileRepository)
			tt.setupMock(creds, profiles)

			svc := NewAuthService(testAuthConfig(false), AuthDependencies{
				CredentialRepo: creds,
				ProfileRepo:    profiles,
			})
			profile, token, _, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				domainErr := apperrors.ToDomainError(err)
				assert.Equal(t, tt.expectedCode, domainErr.Code)
				assert.Nil(t, profile)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, "alice", profile.Username)
				assert.Equal(t, "Alice", profile.Name)
			}

			creds.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginFailureIsGeneric(t *testing.T) {
	// An unknown username and a wrong password must be
	// indistinguishable to the caller.
	creds := new(MockCredentialRepository)
	profiles := new(MockProfileRepository)
	creds.On("GetByUsername", mock.Anything, "nobody").Return(nil, pgx.ErrNoRows)
	creds.On("GetByUsername", mock.Anything, "alice").Return(&domain.StaffCredential{
		ID:           "cred-1",
		Username:     "alice",
		PasswordHash: hashFor(t, "secret"),
	}, nil)

	svc := NewAuthService(testAuthConfig(false), AuthDependencies{
		CredentialRepo: creds,
		ProfileRepo:    profiles,
	})

	_, _, _, unknownErr := svc.Login(context.Background(), "nobody", "secret")
	_, _, _, wrongErr := svc.Login(context.Background(), "alice", "wrong")

	assert.EqualError(t, unknownErr, wrongErr.Error())
	assert.Equal(t,
		apperrors.ToDomainError(unknownErr).Code,
		apperrors.ToDomainError(wrongErr).Code,
	)
}

func TestAuthService_CreateAccount(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		setupMock     func(*MockCredentialRepository, *MockProfileRepository)
		expectedCode  string
		expectProfile bool
	}{
		{
			name:     "successful registration",
			username: "bob",
			setupMock: func(creds *MockCredentialRepository, profiles *MockProfileRepository) {
				creds.On("GetByUsername", mock.Anything, "bob").Return(nil, pgx.ErrNoRows)
				creds.On("Create", mock.Anything, mock.AnythingOfType("*domain.StaffCredential")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.StaffCredential).ID = "cred-2"
					}).Return(nil)
				profiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)
			},
			expectProfile: true,
		},
		{
			name:     "username already exists",
			username: "taken",
			setupMock: func(creds *MockCredentialRepository, profiles *MockProfileRepository) {
				creds.On("GetByUsername", mock.Anything, "taken").Return(&domain.StaffCredential{
					ID:       "cred-9",
					Username: "taken",
				}, nil)
			},
			expectedCode: "DUPLICATE_USERNAME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := new(MockCredentialRepository)
			profiles := new(MockProfileRepository)
			tt.setupMock(creds, profiles)

			svc := NewAuthService(testAuthConfig(false), AuthDependencies{
				CredentialRepo: creds,
				ProfileRepo:    profiles,
			})
			id, err := svc.CreateAccount(context.Background(), tt.username, "password", "Name", nil)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.ToDomainError(err).Code)
				assert.Empty(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "cred-2", id)
			}

			creds.AssertExpectations(t)
			profiles.AssertExpectations(t)
		})
	}
}

func TestAuthService_CreateAccountHashesPassword(t *testing.T) {
	creds := new(MockCredentialRepository)
	profiles := new(MockProfileRepository)

	var stored *domain.StaffCredential
	creds.On("GetByUsername", mock.Anything, "carol").Return(nil, pgx.ErrNoRows)
	creds.On("Create", mock.Anything, mock.AnythingOfType("*domain.StaffCredential")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.StaffCredential)
			stored.ID = "cred-3"
		}).Return(nil)
	profiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := NewAuthService(testAuthConfig(false), AuthDependencies{
		CredentialRepo: creds,
		ProfileRepo:    profiles,
	})
	_, err := svc.CreateAccount(context.Background(), "carol", "hunter2", "Carol", nil)

	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestAuthService_DemoSeed(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		profiles := new(MockProfileRepository)
		creds.On("GetByUsername", mock.Anything, "teacher1").Return(nil, pgx.ErrNoRows)

		svc := NewAuthService(testAuthConfig(false), AuthDependencies{
			CredentialRepo: creds,
			ProfileRepo:    profiles,
		})
		_, _, _, err := svc.Login(context.Background(), "teacher1", "password123")

		assert.Error(t, err)
		assert.Equal(t, "AUTHENTICATION_FAILED", apperrors.ToDomainError(err).Code)
		creds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("provisions demo account when enabled", func(t *testing.T) {
		creds := new(MockCredentialRepository)
		profiles := new(MockProfileRepository)

		creds.On("GetByUsername", mock.Anything, "teacher1").Return(nil, pgx.ErrNoRows).Twice()
		creds.On("Create", mock.Anything, mock.AnythingOfType("*domain.StaffCredential")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.StaffCredential).ID = "cred-demo"
			}).Return(nil)
		profiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)
		// After seeding, the login path re-reads the credential.
		creds.On("GetByUsername", mock.Anything, "teacher1").Return(&domain.StaffCredential{
			ID:           "cred-demo",
			Username:     "teacher1",
			PasswordHash: hashFor(t, "password123"),
			Name:         "Demo Teacher",
		}, nil)
		profiles.On("GetByCredential", mock.Anything, "cred-demo").Return(&domain.Profile{
			ID:   "profile-demo",
			Role: domain.RoleTeacher,
		}, nil)

		svc := NewAuthService(testAuthConfig(true), AuthDependencies{
			CredentialRepo: creds,
			ProfileRepo:    profiles,
		})
		profile, token, _, err := svc.Login(context.Background(), "teacher1", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "teacher1", profile.Username)
	})
}

func TestAuthService_ListStaffOmitsPasswordHashes(t *testing.T) {
	creds := new(MockCredentialRepository)
	profiles := new(MockProfileRepository)
	creds.On("List", mock.Anything).Return([]domain.StaffCredential{
		{ID: "cred-1", Username: "alice", PasswordHash: "hash-1", Name: "Alice"},
		{ID: "cred-2", Username: "bob", PasswordHash: "hash-2", Name: "Bob"},
	}, nil)

	svc := NewAuthService(testAuthConfig(false), AuthDependencies{
		CredentialRepo: creds,
		ProfileRepo:    profiles,
	})
	staff, err := svc.ListStaff(context.Background())

	assert.NoError(t, err)
	assert.Len(t, staff, 2)
	assert.Equal(t, "alice", staff[0].Username)
	assert.Equal(t, "bob", staff[1].Username)
}
