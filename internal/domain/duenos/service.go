package duenos

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"microvetcare/internal/platform/apierr"
)

var (
	rutPattern      = regexp.MustCompile(`^[0-9]{7,8}-[0-9Kk]$`)
	telefonoPattern = regexp.MustCompile(`^\d{11}$`)
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	ID        *int64
	Rut       string
	Nombre    string
	Apellido  string
	Direccion string
	Telefono  string
	Email     string
	Estado    bool
}

// UpdateInput es un patch: nil = conservar el valor almacenado.
type UpdateInput struct {
	Rut       *string
	Nombre    *string
	Apellido  *string
	Direccion *string
	Telefono  *string
	Email     *string
	Estado    *bool
}

func (s *Service) ListAll(ctx context.Context) ([]Dueno, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dueno, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dueno{}, apierr.NotFound("Dueño no encontrado con ID: %d", id)
		}
		return Dueno{}, err
	}
	return d, nil
}

func (s *Service) GetByRut(ctx context.Context, rut string) (Dueno, error) {
	d, err := s.repo.GetByRut(ctx, rut)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dueno{}, apierr.NotFound("Dueño no encontrado con RUT: %s", rut)
		}
		return Dueno{}, err
	}
	return d, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Dueno, error) {
	d, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dueno{}, apierr.NotFound("Dueño no encontrado con Email: %s", email)
		}
		return Dueno{}, err
	}
	return d, nil
}

// MascotaIDs lista los ids de las mascotas del dueño para la proyección.
func (s *Service) MascotaIDs(ctx context.Context, id int64) ([]int64, error) {
	return s.repo.MascotaIDs(ctx, id)
}

// Create valida formato y luego unicidad: primero RUT, después Email.
// Un request con ambos duplicados observa el error del RUT.
func (s *Service) Create(ctx context.Context, in CreateInput) (Dueno, error) {
	rut := strings.TrimSpace(in.Rut)
	if !rutPattern.MatchString(rut) {
		return Dueno{}, apierr.Invalid("El RUT no es válido")
	}
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Apellido) == "" {
		return Dueno{}, apierr.Invalid("El nombre y el apellido son obligatorios.")
	}
	if in.Telefono != "" && !telefonoPattern.MatchString(in.Telefono) {
		return Dueno{}, apierr.Invalid("El teléfono debe contener exactamente 11 dígitos")
	}

	exists, err := s.repo.ExistsByRut(ctx, rut)
	if err != nil {
		return Dueno{}, err
	}
	if exists {
		return Dueno{}, apierr.Invalid("Ya existe un dueño con el RUT: %s", rut)
	}
	if in.Email != "" {
		exists, err := s.repo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return Dueno{}, err
		}
		if exists {
			return Dueno{}, apierr.Invalid("Ya existe un dueño con el Email: %s", in.Email)
		}
	}
	if in.ID != nil {
		return Dueno{}, apierr.Invalid("El ID debe ser nulo para un nuevo dueño.")
	}

	return s.repo.Create(ctx, Dueno{
		Rut:       rut,
		Nombre:    strings.TrimSpace(in.Nombre),
		Apellido:  strings.TrimSpace(in.Apellido),
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Estado:    in.Estado,
	})
}

// Update aplica semántica parcial. RUT y Email solo se re-chequean cuando
// el valor provisto difiere del almacenado (unicidad exclusiva).
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Dueno, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return Dueno{}, err
	}

	if in.Rut != nil && *in.Rut != existing.Rut {
		if !rutPattern.MatchString(*in.Rut) {
			return Dueno{}, apierr.Invalid("El RUT no es válido")
		}
		taken, err := s.repo.ExistsByRut(ctx, *in.Rut)
		if err != nil {
			return Dueno{}, err
		}
		if taken {
			return Dueno{}, apierr.Invalid("El RUT %s ya está registrado para otro dueño.", *in.Rut)
		}
		existing.Rut = *in.Rut
	}
	if in.Email != nil && *in.Email != existing.Email {
		if *in.Email != "" {
			taken, err := s.repo.ExistsByEmail(ctx, *in.Email)
			if err != nil {
				return Dueno{}, err
			}
			if taken {
				return Dueno{}, apierr.Invalid("El Email %s ya está registrado para otro dueño.", *in.Email)
			}
		}
		existing.Email = *in.Email
	}
	if in.Nombre != nil {
		existing.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		existing.Apellido = *in.Apellido
	}
	if in.Direccion != nil {
		existing.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		if *in.Telefono != "" && !telefonoPattern.MatchString(*in.Telefono) {
			return Dueno{}, apierr.Invalid("El teléfono debe contener exactamente 11 dígitos")
		}
		existing.Telefono = *in.Telefono
	}
	if in.Estado != nil {
		existing.Estado = *in.Estado
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return Dueno{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Dueño no encontrado con ID: %d", id)
		}
		return err
	}
	return nil
}
