package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin/pkg/session"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "tienda-admin-test"
)

func TestSession_IssueYParse(t *testing.T) {
	tok, err := session.Issue(testSecret, testUserID, "alice99999", testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := session.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "alice99999", username)
}

func TestSession_TokenExpirado_RetornaError(t *testing.T) {
	// Token con TTL negativo (ya expirado)
	tok, err := session.Issue(testSecret, testUserID, "alice99999", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, _, err = session.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestSession_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := session.Issue(testSecret, testUserID, "alice99999", testIssuer, time.Hour)
	require.NoError(t, err)

	_, _, err = session.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestSession_SecretVacio_RetornaError(t *testing.T) {
	_, err := session.Issue("", testUserID, "alice99999", testIssuer, time.Hour)
	assert.Error(t, err)

	_, _, err = session.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

func TestSession_TokenManipulado_RetornaError(t *testing.T) {
	tok, err := session.Issue(testSecret, testUserID, "alice99999", testIssuer, time.Hour)
	require.NoError(t, err)

	_, _, err = session.Parse(testSecret, tok+"x")
	assert.Error(t, err, "token alterado debe invalidar la firma")
}
