package mascotas

import "time"

// Estado de una mascota.
const (
	EstadoActiva   = 1
	EstadoInactiva = 0
)

// Mascota pertenece a exactamente un dueño y una raza; ambas referencias
// deben resolver al momento de escribir. No hay unicidad sobre sus campos.
type Mascota struct {
	ID              int64
	Nombre          string
	FechaNacimiento time.Time
	Estado          int
	Chip            string
	Genero          string // texto libre en el modelo ("Macho"/"Hembra", ...)
	DuenoID         int64
	RazaID          int64
}

// MascotaView es la proyección de lectura: los nombres del dueño y de la
// raza se derivan al leer, nunca se almacenan.
type MascotaView struct {
	Mascota
	NombreDueno string
	NombreRaza  string
}
