package memory

import (
	"context"
	"sort"
	"time"

	"microvetcare/internal/domain/mascotas"
)

type MascotaRepo struct {
	s *Store
}

func NewMascotaRepo(s *Store) *MascotaRepo {
	return &MascotaRepo{s: s}
}

func (r *MascotaRepo) ListAll(ctx context.Context) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return true }), nil
}

func (r *MascotaRepo) GetByID(ctx context.Context, id int64) (mascotas.Mascota, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.mascotas[id]
	if !ok {
		return mascotas.Mascota{}, mascotas.ErrNotFound
	}
	return m, nil
}

func (r *MascotaRepo) Create(ctx context.Context, m mascotas.Mascota) (mascotas.Mascota, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.nextID()
	r.s.mascotas[m.ID] = m
	return m, nil
}

func (r *MascotaRepo) Update(ctx context.Context, m mascotas.Mascota) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.mascotas[m.ID]; !ok {
		return mascotas.ErrNotFound
	}
	r.s.mascotas[m.ID] = m
	return nil
}

func (r *MascotaRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.mascotas[id]; !ok {
		return mascotas.ErrNotFound
	}
	delete(r.s.mascotas, id)
	return nil
}

func (r *MascotaRepo) ListByNombre(ctx context.Context, nombre string) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.Nombre == nombre }), nil
}

func (r *MascotaRepo) ListByDuenoID(ctx context.Context, duenoID int64) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.DuenoID == duenoID }), nil
}

func (r *MascotaRepo) ListByRazaID(ctx context.Context, razaID int64) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.RazaID == razaID }), nil
}

func (r *MascotaRepo) ListByGenero(ctx context.Context, genero string) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.Genero == genero }), nil
}

func (r *MascotaRepo) ListBornAfter(ctx context.Context, fecha time.Time) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.FechaNacimiento.After(fecha) }), nil
}

func (r *MascotaRepo) ListBornBefore(ctx context.Context, fecha time.Time) ([]mascotas.Mascota, error) {
	return r.listWhere(func(m mascotas.Mascota) bool { return m.FechaNacimiento.Before(fecha) }), nil
}

func (r *MascotaRepo) listWhere(match func(mascotas.Mascota) bool) []mascotas.Mascota {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]mascotas.Mascota, 0)
	for _, m := range r.s.mascotas {
		if match(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
