// Package memory implementa los repositorios sobre tablas en memoria.
// Sirve para dev y tests; Postgres es el storage real.
package memory

import (
	"sync"

	"microvetcare/internal/domain/duenos"
	"microvetcare/internal/domain/especies"
	"microvetcare/internal/domain/mascotas"
	"microvetcare/internal/domain/razas"
)

// Store guarda las cuatro tablas bajo un solo mutex para que los borrados
// en cascada sean atómicos. Las back-references (dueño->mascotas,
// especie->razas) se resuelven recorriendo la tabla hija, nunca con
// punteros embebidos en el registro padre.
type Store struct {
	mu sync.RWMutex

	seq int64

	especies map[int64]especies.Especie
	razas    map[int64]razas.Raza
	duenos   map[int64]duenos.Dueno
	mascotas map[int64]mascotas.Mascota
}

func NewStore() *Store {
	return &Store{
		especies: make(map[int64]especies.Especie),
		razas:    make(map[int64]razas.Raza),
		duenos:   make(map[int64]duenos.Dueno),
		mascotas: make(map[int64]mascotas.Mascota),
	}
}

// nextID asigna ids de una secuencia única compartida. Caller con lock.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}
