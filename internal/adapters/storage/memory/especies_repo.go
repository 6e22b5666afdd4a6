package memory

import (
	"context"
	"sort"

	"microvetcare/internal/domain/especies"
)

type EspecieRepo struct {
	s *Store
}

func NewEspecieRepo(s *Store) *EspecieRepo {
	return &EspecieRepo{s: s}
}

func (r *EspecieRepo) ListAll(ctx context.Context) ([]especies.Especie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]especies.Especie, 0, len(r.s.especies))
	for _, e := range r.s.especies {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EspecieRepo) GetByID(ctx context.Context, id int64) (especies.Especie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.especies[id]
	if !ok {
		return especies.Especie{}, especies.ErrNotFound
	}
	return e, nil
}

func (r *EspecieRepo) GetByNombre(ctx context.Context, nombre string) (especies.Especie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.especies {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return especies.Especie{}, especies.ErrNotFound
}

func (r *EspecieRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.especies {
		if e.Nombre == nombre {
			return true, nil
		}
	}
	return false, nil
}

func (r *EspecieRepo) ExistsByNombreEspecie(ctx context.Context, nombreEspecie string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.especies {
		if e.NombreEspecie == nombreEspecie {
			return true, nil
		}
	}
	return false, nil
}

func (r *EspecieRepo) Create(ctx context.Context, e especies.Especie) (especies.Especie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = r.s.nextID()
	r.s.especies[e.ID] = e
	return e, nil
}

func (r *EspecieRepo) Update(ctx context.Context, e especies.Especie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.especies[e.ID]; !ok {
		return especies.ErrNotFound
	}
	r.s.especies[e.ID] = e
	return nil
}

func (r *EspecieRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.especies[id]; !ok {
		return especies.ErrNotFound
	}

	// restricción: ninguna raza de la especie puede tener mascotas
	for razaID, rz := range r.s.razas {
		if rz.EspecieID != id {
			continue
		}
		for _, m := range r.s.mascotas {
			if m.RazaID == razaID {
				return especies.ErrRazasEnUso
			}
		}
	}

	for razaID, rz := range r.s.razas {
		if rz.EspecieID == id {
			delete(r.s.razas, razaID)
		}
	}
	delete(r.s.especies, id)
	return nil
}
