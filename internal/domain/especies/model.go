package especies

// Estado de una especie.
const (
	EstadoActiva   = 1
	EstadoInactiva = 0
)

// Especie es la clasificación de nivel superior (Perro, Gato, ...).
type Especie struct {
	ID            int64
	NombreEspecie string // designación científica
	Nombre        string // nombre común, único entre especies
	Estado        int    // 1 activa, 0 inactiva
}
