package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	token, exp, err := tm.GenerateToken("cred-1", domain.RoleTeacher)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "cred-1", claims.CredentialID)
	assert.Equal(t, domain.RoleTeacher, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 15)
	verifier := NewTokenManager("secret-b", 15)

	token, _, err := issuer.GenerateToken("cred-1", domain.RoleTeacher)
	assert.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}
