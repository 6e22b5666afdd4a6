package mascotas

import (
	"context"
	"errors"
	"strings"
	"time"

	"microvetcare/internal/domain/duenos"
	"microvetcare/internal/domain/razas"
	"microvetcare/internal/platform/apierr"
)

// Service resuelve las referencias dueño/raza contra sus repositorios antes
// de cada escritura, igual que valida sus filtros por referencia.
type Service struct {
	repo   Repository
	duenos duenos.Repository
	razas  razas.Repository
}

func NewService(repo Repository, duenosRepo duenos.Repository, razasRepo razas.Repository) *Service {
	return &Service{repo: repo, duenos: duenosRepo, razas: razasRepo}
}

type CreateInput struct {
	ID              *int64
	Nombre          string
	FechaNacimiento time.Time
	Estado          int
	Chip            string
	Genero          string
}

// UpdateInput reemplaza todos los escalares (full-replace, a diferencia del
// patch parcial de dueños/especies).
type UpdateInput struct {
	Nombre          string
	FechaNacimiento time.Time
	Estado          int
	Chip            string
	Genero          string
}

func (s *Service) ListAll(ctx context.Context) ([]MascotaView, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) GetByID(ctx context.Context, id int64) (MascotaView, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return MascotaView{}, apierr.NotFound("Mascota no encontrada con ID: %d", id)
		}
		return MascotaView{}, err
	}
	views, err := s.resolveViews(ctx, []Mascota{m})
	if err != nil {
		return MascotaView{}, err
	}
	return views[0], nil
}

// Create toma los escalares del body y las relaciones de los parámetros
// duenoId/razaId; los ids embebidos en el body no se usan para persistir.
func (s *Service) Create(ctx context.Context, in CreateInput, duenoID, razaID *int64) (MascotaView, error) {
	if duenoID == nil || razaID == nil {
		return MascotaView{}, apierr.Invalid("Los parámetros duenoId y razaId son obligatorios.")
	}
	if in.ID != nil {
		return MascotaView{}, apierr.Invalid("El ID debe ser nulo para una nueva mascota.")
	}
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Chip) == "" || strings.TrimSpace(in.Genero) == "" {
		return MascotaView{}, apierr.Invalid("El nombre, el chip y el género son obligatorios.")
	}

	dueno, err := s.resolveDueno(ctx, *duenoID)
	if err != nil {
		return MascotaView{}, err
	}
	raza, err := s.resolveRaza(ctx, *razaID)
	if err != nil {
		return MascotaView{}, err
	}

	m, err := s.repo.Create(ctx, Mascota{
		Nombre:          strings.TrimSpace(in.Nombre),
		FechaNacimiento: in.FechaNacimiento,
		Estado:          in.Estado,
		Chip:            in.Chip,
		Genero:          in.Genero,
		DuenoID:         dueno.ID,
		RazaID:          raza.ID,
	})
	if err != nil {
		return MascotaView{}, err
	}
	return viewOf(m, dueno, raza), nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput, duenoID, razaID *int64) (MascotaView, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return MascotaView{}, apierr.NotFound("Mascota no encontrada con ID: %d", id)
		}
		return MascotaView{}, err
	}
	if duenoID == nil || razaID == nil {
		return MascotaView{}, apierr.Invalid("Los parámetros duenoId y razaId son obligatorios.")
	}

	dueno, err := s.resolveDueno(ctx, *duenoID)
	if err != nil {
		return MascotaView{}, err
	}
	raza, err := s.resolveRaza(ctx, *razaID)
	if err != nil {
		return MascotaView{}, err
	}

	existing.Nombre = in.Nombre
	existing.FechaNacimiento = in.FechaNacimiento
	existing.Estado = in.Estado
	existing.Chip = in.Chip
	existing.Genero = in.Genero
	existing.DuenoID = dueno.ID
	existing.RazaID = raza.ID

	if err := s.repo.Update(ctx, existing); err != nil {
		return MascotaView{}, err
	}
	return viewOf(existing, dueno, raza), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Mascota no encontrada con ID: %d", id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByNombre(ctx context.Context, nombre string) ([]MascotaView, error) {
	items, err := s.repo.ListByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

// ListByDuenoID exige que el dueño exista; con dueño sin mascotas responde
// lista vacía, no not-found.
func (s *Service) ListByDuenoID(ctx context.Context, duenoID int64) ([]MascotaView, error) {
	if _, err := s.resolveDueno(ctx, duenoID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByDuenoID(ctx, duenoID)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) ListByRazaID(ctx context.Context, razaID int64) ([]MascotaView, error) {
	if _, err := s.resolveRaza(ctx, razaID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByRazaID(ctx, razaID)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) ListByGenero(ctx context.Context, genero string) ([]MascotaView, error) {
	items, err := s.repo.ListByGenero(ctx, genero)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) ListBornAfter(ctx context.Context, fecha time.Time) ([]MascotaView, error) {
	items, err := s.repo.ListBornAfter(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) ListBornBefore(ctx context.Context, fecha time.Time) ([]MascotaView, error) {
	items, err := s.repo.ListBornBefore(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return s.resolveViews(ctx, items)
}

func (s *Service) resolveDueno(ctx context.Context, id int64) (duenos.Dueno, error) {
	d, err := s.duenos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, duenos.ErrNotFound) {
			return duenos.Dueno{}, apierr.NotFound("Dueño no encontrado con ID: %d", id)
		}
		return duenos.Dueno{}, err
	}
	return d, nil
}

func (s *Service) resolveRaza(ctx context.Context, id int64) (razas.Raza, error) {
	rz, err := s.razas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, razas.ErrNotFound) {
			return razas.Raza{}, apierr.NotFound("Raza no encontrada con ID: %d", id)
		}
		return razas.Raza{}, err
	}
	return rz, nil
}

// resolveViews resuelve dueños y razas de una sola pasada (lectura eager)
// en vez de un lookup por fila.
func (s *Service) resolveViews(ctx context.Context, items []Mascota) ([]MascotaView, error) {
	out := make([]MascotaView, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	allDuenos, err := s.duenos.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	allRazas, err := s.razas.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nombreDueno := make(map[int64]string, len(allDuenos))
	for _, d := range allDuenos {
		nombreDueno[d.ID] = d.Nombre + " " + d.Apellido
	}
	nombreRaza := make(map[int64]string, len(allRazas))
	for _, rz := range allRazas {
		nombreRaza[rz.ID] = rz.Nombre
	}

	for _, m := range items {
		out = append(out, MascotaView{
			Mascota:     m,
			NombreDueno: nombreDueno[m.DuenoID],
			NombreRaza:  nombreRaza[m.RazaID],
		})
	}
	return out, nil
}

func viewOf(m Mascota, d duenos.Dueno, rz razas.Raza) MascotaView {
	return MascotaView{
		Mascota:     m,
		NombreDueno: d.Nombre + " " + d.Apellido,
		NombreRaza:  rz.Nombre,
	}
}
