package auth

// Roles que reconoce la API, ya con la convención ROLE_ del proveedor
// de identidad aplicada.
const (
	RoleAdmin       = "ROLE_ADMIN"
	RoleVeterinario = "ROLE_VETERINARIO"
	RoleAsistente   = "ROLE_ASISTENTE"
)

// Claims representa la información extraída del token.
type Claims struct {
	Subject string
	Roles   []string
}

// HasAnyRole responde si el token trae al menos uno de los roles pedidos.
func (c Claims) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
