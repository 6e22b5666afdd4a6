package middleware

import (
	"net/http"

	"microvetcare/internal/platform/httpjson"
)

// RequireRoles corta el request antes del handler: 401 si no hay claims
// utilizables, 403 si ninguno de los roles pedidos está en el token.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				httpjson.WriteStatusError(w, r, http.StatusUnauthorized, "Se requiere autenticación.")
				return
			}
			if !claims.HasAnyRole(roles...) {
				httpjson.WriteStatusError(w, r, http.StatusForbidden, "No tiene permisos para esta operación.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
