package keycloak_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"microvetcare/internal/adapters/auth/keycloak"
)

const clientID = "vetcare-app"

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifier_AplanaRoles(t *testing.T) {
	key, pub := newKeyPair(t)
	v, err := keycloak.NewVerifier(pub, clientID)
	require.NoError(t, err)

	token := signToken(t, key, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
		"realm_access": map[string]any{
			"roles": []string{"admin"},
		},
		"resource_access": map[string]any{
			clientID: map[string]any{
				"roles": []string{"veterinario"},
			},
			"otro-cliente": map[string]any{
				"roles": []string{"ignorado"},
			},
		},
	})

	claims, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.ElementsMatch(t, []string{"ROLE_ADMIN", "ROLE_VETERINARIO"}, claims.Roles)
}

func TestVerifier_TokenExpirado(t *testing.T) {
	key, pub := newKeyPair(t)
	v, err := keycloak.NewVerifier(pub, clientID)
	require.NoError(t, err)

	token := signToken(t, key, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = v.Verify(context.Background(), token)
	require.Error(t, err)
}

func TestVerifier_FirmaAjena(t *testing.T) {
	_, pub := newKeyPair(t)
	otherKey, _ := newKeyPair(t)

	v, err := keycloak.NewVerifier(pub, clientID)
	require.NoError(t, err)

	token := signToken(t, otherKey, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.Verify(context.Background(), token)
	require.Error(t, err)
}

func TestVerifier_TokenVacio(t *testing.T) {
	_, pub := newKeyPair(t)
	v, err := keycloak.NewVerifier(pub, clientID)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "")
	require.ErrorIs(t, err, keycloak.ErrTokenEmpty)
}

func TestVerifier_ClavePublicaInvalida(t *testing.T) {
	_, err := keycloak.NewVerifier("no es un pem", clientID)
	require.Error(t, err)
}
