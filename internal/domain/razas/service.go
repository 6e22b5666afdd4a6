package razas

import (
	"context"
	"errors"
	"strings"

	"microvetcare/internal/domain/especies"
	"microvetcare/internal/platform/apierr"
)

type Service struct {
	repo     Repository
	especies especies.Repository
}

func NewService(repo Repository, especiesRepo especies.Repository) *Service {
	return &Service{repo: repo, especies: especiesRepo}
}

type CreateInput struct {
	ID     *int64
	Nombre string
	Estado string
}

// UpdateInput pisa nombre y estado siempre; la especie solo se re-resuelve
// cuando viene un id nuevo.
type UpdateInput struct {
	Nombre    string
	Estado    string
	EspecieID *int64
}

func (s *Service) ListAll(ctx context.Context) ([]Raza, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Raza, error) {
	rz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Raza{}, apierr.NotFound("Raza no encontrada con ID: %d", id)
		}
		return Raza{}, err
	}
	return rz, nil
}

func (s *Service) GetByNombre(ctx context.Context, nombre string) (Raza, error) {
	rz, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Raza{}, apierr.NotFound("Raza no encontrada con nombre: %s", nombre)
		}
		return Raza{}, err
	}
	return rz, nil
}

func (s *Service) ListByEspecieID(ctx context.Context, especieID int64) ([]Raza, error) {
	return s.repo.ListByEspecieID(ctx, especieID)
}

// Create exige el parámetro especieId: 400 si falta, 404 si no resuelve.
func (s *Service) Create(ctx context.Context, in CreateInput, especieID *int64) (Raza, error) {
	if especieID == nil {
		return Raza{}, apierr.Invalid("El parámetro especieId es obligatorio.")
	}
	if in.ID != nil {
		return Raza{}, apierr.Invalid("El ID debe ser nulo para una nueva raza.")
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return Raza{}, apierr.Invalid("El nombre es obligatorio.")
	}

	exists, err := s.repo.ExistsByNombre(ctx, nombre)
	if err != nil {
		return Raza{}, err
	}
	if exists {
		return Raza{}, apierr.Invalid("Ya existe una raza con el nombre: %s", nombre)
	}

	if err := s.resolveEspecie(ctx, *especieID); err != nil {
		return Raza{}, err
	}

	estado := in.Estado
	if estado == "" {
		estado = EstadoActiva
	}
	return s.repo.Create(ctx, Raza{
		Nombre:    nombre,
		Estado:    estado,
		EspecieID: *especieID,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Raza, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Raza{}, err
	}

	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return Raza{}, apierr.Invalid("El nombre es obligatorio.")
	}
	if nombre != existing.Nombre {
		taken, err := s.repo.ExistsByNombre(ctx, nombre)
		if err != nil {
			return Raza{}, err
		}
		if taken {
			return Raza{}, apierr.Invalid("El nombre '%s' ya está registrado para otra raza.", nombre)
		}
	}
	existing.Nombre = nombre
	if in.Estado != "" {
		existing.Estado = in.Estado
	}
	if in.EspecieID != nil {
		if err := s.resolveEspecie(ctx, *in.EspecieID); err != nil {
			return Raza{}, err
		}
		existing.EspecieID = *in.EspecieID
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return Raza{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrEnUso):
			return apierr.Invalid("No se puede eliminar la raza %d: tiene mascotas asociadas.", id)
		case errors.Is(err, ErrNotFound):
			return apierr.NotFound("Raza no encontrada con ID: %d", id)
		}
		return err
	}
	return nil
}

func (s *Service) resolveEspecie(ctx context.Context, especieID int64) error {
	if _, err := s.especies.GetByID(ctx, especieID); err != nil {
		if errors.Is(err, especies.ErrNotFound) {
			return apierr.NotFound("Especie no encontrada con ID: %d", especieID)
		}
		return err
	}
	return nil
}
