package duenos

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("dueño no encontrado")

type Repository interface {
	ListAll(ctx context.Context) ([]Dueno, error)
	GetByID(ctx context.Context, id int64) (Dueno, error)
	GetByRut(ctx context.Context, rut string) (Dueno, error)
	GetByEmail(ctx context.Context, email string) (Dueno, error)
	ExistsByRut(ctx context.Context, rut string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, d Dueno) (Dueno, error)
	Update(ctx context.Context, d Dueno) error
	// Delete elimina al dueño y en cascada todas sus mascotas.
	Delete(ctx context.Context, id int64) error
	// MascotaIDs resuelve la back-reference dueño->mascotas por consulta,
	// sin punteros embebidos en el registro.
	MascotaIDs(ctx context.Context, duenoID int64) ([]int64, error)
}
