package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhiwira/kapten/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "kapten-test",
	}
}

func TestGenerateSessionToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateSessionToken("captain-1", "captain", cfg)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateSessionToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "captain-1", claims.CaptainID)
	assert.Equal(t, "captain", claims.Role)
	assert.Equal(t, "kapten-test", claims.Issuer)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := GenerateSessionToken("captain-1", "captain", cfg)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "a-different-secret")

	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -5

	token, _, err := GenerateSessionToken("captain-1", "captain", cfg)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, cfg.Secret)

	assert.Error(t, err)
}

func TestValidateSessionToken_RejectsUnsignedAlg(t *testing.T) {
	cfg := testJWTConfig()
	claims := &models.WebSocketClaims{
		CaptainID: "captain-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, cfg.Secret)

	assert.Error(t, err)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", "secret")
	assert.Error(t, err)
}
