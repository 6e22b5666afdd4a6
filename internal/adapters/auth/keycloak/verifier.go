// Package keycloak valida los bearer tokens emitidos por el proveedor de
// identidad y aplana sus roles de realm y de cliente a la convención
// ROLE_<MAYÚSCULAS> que usa el resto de la API.
package keycloak

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"microvetcare/internal/ports/auth"
)

const rolePrefix = "ROLE_"

var ErrTokenEmpty = errors.New("token vacío")

// Verifier implementa auth.AuthVerifier contra la clave pública del realm.
type Verifier struct {
	publicKey *rsa.PublicKey
	clientID  string
}

func NewVerifier(publicKeyPEM, clientID string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("keycloak: clave pública inválida: %w", err)
	}
	return &Verifier{publicKey: key, clientID: clientID}, nil
}

type tokenClaims struct {
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	ResourceAccess map[string]struct {
		Roles []string `json:"roles"`
	} `json:"resource_access"`
	jwt.RegisteredClaims
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("keycloak: token inválido: %w", err)
	}
	if !parsed.Valid {
		return auth.Claims{}, errors.New("keycloak: token inválido")
	}

	roles := make([]string, 0, len(tc.RealmAccess.Roles))
	for _, r := range tc.RealmAccess.Roles {
		roles = append(roles, rolePrefix+strings.ToUpper(r))
	}
	if client, ok := tc.ResourceAccess[v.clientID]; ok {
		for _, r := range client.Roles {
			roles = append(roles, rolePrefix+strings.ToUpper(r))
		}
	}

	return auth.Claims{Subject: tc.Subject, Roles: roles}, nil
}
