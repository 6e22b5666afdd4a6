package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"microvetcare/internal/middleware"
	"microvetcare/internal/ports/auth"
)

func protected(roles ...string) http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.AuthContext(nil)(middleware.RequireRoles(roles...)(h))
}

func do(t *testing.T, h http.Handler, debugRoles string) int {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	if debugRoles != "" {
		req.Header.Set("X-Debug-Roles", debugRoles)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireRoles_SinClaims(t *testing.T) {
	h := protected(auth.RoleAdmin)

	if st := do(t, h, ""); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", st)
	}
}

func TestRequireRoles_RolInsuficiente(t *testing.T) {
	h := protected(auth.RoleAdmin)

	if st := do(t, h, "VETERINARIO"); st != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong role, got %d", st)
	}
}

func TestRequireRoles_BastaUnRol(t *testing.T) {
	h := protected(auth.RoleAdmin, auth.RoleAsistente)

	if st := do(t, h, "ASISTENTE"); st != http.StatusOK {
		t.Fatalf("expected 200 with matching role, got %d", st)
	}
}

func TestAuthContext_NormalizaDebugRoles(t *testing.T) {
	h := protected(auth.RoleAdmin)

	// minúsculas, espacios y prefijo explícito dan lo mismo
	for _, raw := range []string{"admin", " Admin ", "ROLE_ADMIN", "asistente,admin"} {
		if st := do(t, h, raw); st != http.StatusOK {
			t.Fatalf("expected 200 for X-Debug-Roles=%q, got %d", raw, st)
		}
	}
}
