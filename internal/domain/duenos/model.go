package duenos

// Dueno es la persona responsable de una o más mascotas.
// Rut y Email (cuando existe) son únicos entre dueños.
type Dueno struct {
	ID        int64
	Rut       string // formato NNNNNNNN-X
	Nombre    string
	Apellido  string
	Direccion string // opcional
	Telefono  string // 11 dígitos, opcional
	Email     string // opcional; "" = sin email
	Estado    bool
}
