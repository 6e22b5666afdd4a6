package especies

import (
	"context"
	"errors"
	"strings"

	"microvetcare/internal/platform/apierr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	ID            *int64
	NombreEspecie string
	Nombre        string
	Estado        int
}

// UpdateInput es un patch: nil = no tocar el campo.
type UpdateInput struct {
	NombreEspecie *string
	Nombre        *string
	Estado        *int
}

func (s *Service) ListAll(ctx context.Context) ([]Especie, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Especie, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Especie{}, apierr.NotFound("Especie no encontrada con ID: %d", id)
		}
		return Especie{}, err
	}
	return e, nil
}

func (s *Service) GetByNombre(ctx context.Context, nombre string) (Especie, error) {
	e, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Especie{}, apierr.NotFound("Especie no encontrada con nombre: %s", nombre)
		}
		return Especie{}, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Especie, error) {
	nombre := strings.TrimSpace(in.Nombre)
	nombreEspecie := strings.TrimSpace(in.NombreEspecie)
	if nombre == "" || nombreEspecie == "" {
		return Especie{}, apierr.Invalid("El nombre y el nombreEspecie son obligatorios.")
	}

	exists, err := s.repo.ExistsByNombre(ctx, nombre)
	if err != nil {
		return Especie{}, err
	}
	if exists {
		return Especie{}, apierr.Invalid("Ya existe una especie con el nombre: %s", nombre)
	}
	if in.ID != nil {
		return Especie{}, apierr.Invalid("El ID debe ser nulo para una nueva especie.")
	}

	return s.repo.Create(ctx, Especie{
		NombreEspecie: nombreEspecie,
		Nombre:        nombre,
		Estado:        in.Estado,
	})
}

// Update aplica semántica parcial: solo los campos provistos pisan el valor
// almacenado, re-chequeando unicidad exclusiva cuando cambian los nombres.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Especie, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Especie{}, err
	}

	if in.NombreEspecie != nil && *in.NombreEspecie != existing.NombreEspecie {
		taken, err := s.repo.ExistsByNombreEspecie(ctx, *in.NombreEspecie)
		if err != nil {
			return Especie{}, err
		}
		if taken {
			return Especie{}, apierr.Invalid("El nombreEspecie '%s' ya está registrado para otra especie.", *in.NombreEspecie)
		}
		existing.NombreEspecie = *in.NombreEspecie
	}
	if in.Nombre != nil && *in.Nombre != existing.Nombre {
		taken, err := s.repo.ExistsByNombre(ctx, *in.Nombre)
		if err != nil {
			return Especie{}, err
		}
		if taken {
			return Especie{}, apierr.Invalid("El nombre '%s' ya está registrado para otra especie.", *in.Nombre)
		}
		existing.Nombre = *in.Nombre
	}
	if in.Estado != nil {
		existing.Estado = *in.Estado
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return Especie{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrRazasEnUso):
			return apierr.Invalid("No se puede eliminar la especie %d: existen mascotas asociadas a sus razas.", id)
		case errors.Is(err, ErrNotFound):
			return apierr.NotFound("Especie no encontrada con ID: %d", id)
		}
		return err
	}
	return nil
}
