package memory

import (
	"context"
	"sort"

	"microvetcare/internal/domain/duenos"
)

type DuenoRepo struct {
	s *Store
}

func NewDuenoRepo(s *Store) *DuenoRepo {
	return &DuenoRepo{s: s}
}

func (r *DuenoRepo) ListAll(ctx context.Context) ([]duenos.Dueno, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]duenos.Dueno, 0, len(r.s.duenos))
	for _, d := range r.s.duenos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DuenoRepo) GetByID(ctx context.Context, id int64) (duenos.Dueno, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.duenos[id]
	if !ok {
		return duenos.Dueno{}, duenos.ErrNotFound
	}
	return d, nil
}

func (r *DuenoRepo) GetByRut(ctx context.Context, rut string) (duenos.Dueno, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.duenos {
		if d.Rut == rut {
			return d, nil
		}
	}
	return duenos.Dueno{}, duenos.ErrNotFound
}

func (r *DuenoRepo) GetByEmail(ctx context.Context, email string) (duenos.Dueno, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.duenos {
		if d.Email != "" && d.Email == email {
			return d, nil
		}
	}
	return duenos.Dueno{}, duenos.ErrNotFound
}

func (r *DuenoRepo) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.duenos {
		if d.Rut == rut {
			return true, nil
		}
	}
	return false, nil
}

func (r *DuenoRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.duenos {
		if d.Email != "" && d.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *DuenoRepo) Create(ctx context.Context, d duenos.Dueno) (duenos.Dueno, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.nextID()
	r.s.duenos[d.ID] = d
	return d, nil
}

func (r *DuenoRepo) Update(ctx context.Context, d duenos.Dueno) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.duenos[d.ID]; !ok {
		return duenos.ErrNotFound
	}
	r.s.duenos[d.ID] = d
	return nil
}

func (r *DuenoRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.duenos[id]; !ok {
		return duenos.ErrNotFound
	}
	for mascotaID, m := range r.s.mascotas {
		if m.DuenoID == id {
			delete(r.s.mascotas, mascotaID)
		}
	}
	delete(r.s.duenos, id)
	return nil
}

func (r *DuenoRepo) MascotaIDs(ctx context.Context, duenoID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]int64, 0)
	for _, m := range r.s.mascotas {
		if m.DuenoID == duenoID {
			out = append(out, m.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
