package especies

import (
	"context"
	"errors"
)

var (
	// ErrNotFound lo devuelven los adapters de storage cuando el id/nombre no resuelve.
	ErrNotFound = errors.New("especie no encontrada")
	// ErrRazasEnUso bloquea el borrado si alguna raza de la especie tiene mascotas.
	ErrRazasEnUso = errors.New("razas de la especie con mascotas asociadas")
)

type Repository interface {
	ListAll(ctx context.Context) ([]Especie, error)
	GetByID(ctx context.Context, id int64) (Especie, error)
	GetByNombre(ctx context.Context, nombre string) (Especie, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	ExistsByNombreEspecie(ctx context.Context, nombreEspecie string) (bool, error)
	Create(ctx context.Context, e Especie) (Especie, error)
	Update(ctx context.Context, e Especie) error
	// Delete elimina la especie y en cascada sus razas.
	Delete(ctx context.Context, id int64) error
}
