package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgjwt "github.com/asplot/plotshop-api/pkg/jwt"
)

const (
	testSecret = "secret-para-tests-unitarios"
	testIssuer = "plotshop-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "operador1", "laboral", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "operador1", username)
	assert.Equal(t, "laboral", role)
}

func TestGenerate_ErrorSiSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "operador1", "laboral", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_ErrorSiFirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "operador1", "laboral", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe ser rechazado")
}

func TestParse_ErrorSiTokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u-1", "operador1", "laboral", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido debe ser rechazado")
}
