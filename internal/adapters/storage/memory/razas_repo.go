package memory

import (
	"context"
	"sort"

	"microvetcare/internal/domain/razas"
)

type RazaRepo struct {
	s *Store
}

func NewRazaRepo(s *Store) *RazaRepo {
	return &RazaRepo{s: s}
}

func (r *RazaRepo) ListAll(ctx context.Context) ([]razas.Raza, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]razas.Raza, 0, len(r.s.razas))
	for _, rz := range r.s.razas {
		out = append(out, rz)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RazaRepo) GetByID(ctx context.Context, id int64) (razas.Raza, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rz, ok := r.s.razas[id]
	if !ok {
		return razas.Raza{}, razas.ErrNotFound
	}
	return rz, nil
}

func (r *RazaRepo) GetByNombre(ctx context.Context, nombre string) (razas.Raza, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rz := range r.s.razas {
		if rz.Nombre == nombre {
			return rz, nil
		}
	}
	return razas.Raza{}, razas.ErrNotFound
}

func (r *RazaRepo) ListByEspecieID(ctx context.Context, especieID int64) ([]razas.Raza, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]razas.Raza, 0)
	for _, rz := range r.s.razas {
		if rz.EspecieID == especieID {
			out = append(out, rz)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RazaRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rz := range r.s.razas {
		if rz.Nombre == nombre {
			return true, nil
		}
	}
	return false, nil
}

func (r *RazaRepo) Create(ctx context.Context, rz razas.Raza) (razas.Raza, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rz.ID = r.s.nextID()
	r.s.razas[rz.ID] = rz
	return rz, nil
}

func (r *RazaRepo) Update(ctx context.Context, rz razas.Raza) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.razas[rz.ID]; !ok {
		return razas.ErrNotFound
	}
	r.s.razas[rz.ID] = rz
	return nil
}

func (r *RazaRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.razas[id]; !ok {
		return razas.ErrNotFound
	}
	for _, m := range r.s.mascotas {
		if m.RazaID == id {
			return razas.ErrEnUso
		}
	}
	delete(r.s.razas, id)
	return nil
}
