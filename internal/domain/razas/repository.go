package razas

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("raza no encontrada")
	// ErrEnUso bloquea el borrado mientras existan mascotas de la raza.
	ErrEnUso = errors.New("raza con mascotas asociadas")
)

type Repository interface {
	ListAll(ctx context.Context) ([]Raza, error)
	GetByID(ctx context.Context, id int64) (Raza, error)
	GetByNombre(ctx context.Context, nombre string) (Raza, error)
	ListByEspecieID(ctx context.Context, especieID int64) ([]Raza, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	Create(ctx context.Context, rz Raza) (Raza, error)
	Update(ctx context.Context, rz Raza) error
	Delete(ctx context.Context, id int64) error
}
