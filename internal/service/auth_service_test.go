package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewAuthService()

	token, err := svc.GenerateSessionToken("s_abc12345")
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s_abc12345", claims.SessionID)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.ValidateSessionToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSessionTokenRejectsWrongKey(t *testing.T) {
	issuer := &AuthService{jwtSecret: []byte("key-one")}
	verifier := &AuthService{jwtSecret: []byte("key-two")}

	token, err := issuer.GenerateSessionToken("s_abc12345")
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
