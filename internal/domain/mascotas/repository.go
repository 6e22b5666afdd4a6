package mascotas

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("mascota no encontrada")

type Repository interface {
	ListAll(ctx context.Context) ([]Mascota, error)
	GetByID(ctx context.Context, id int64) (Mascota, error)
	Create(ctx context.Context, m Mascota) (Mascota, error)
	Update(ctx context.Context, m Mascota) error
	Delete(ctx context.Context, id int64) error

	ListByNombre(ctx context.Context, nombre string) ([]Mascota, error)
	ListByDuenoID(ctx context.Context, duenoID int64) ([]Mascota, error)
	ListByRazaID(ctx context.Context, razaID int64) ([]Mascota, error)
	ListByGenero(ctx context.Context, genero string) ([]Mascota, error)
	ListBornAfter(ctx context.Context, fecha time.Time) ([]Mascota, error)
	ListBornBefore(ctx context.Context, fecha time.Time) ([]Mascota, error)
}
