package razas

// Estado de una raza, codificado en un carácter.
const (
	EstadoActiva   = "A"
	EstadoInactiva = "I"
)

// Raza es una subdivisión con nombre único dentro de una especie
// (Labrador bajo Perro). La referencia a la especie es obligatoria.
type Raza struct {
	ID        int64
	Nombre    string
	Estado    string // "A" / "I"
	EspecieID int64
}
