package postgres

import (
	"context"
	"database/sql"
	"time"

	"microvetcare/internal/domain/mascotas"
)

type MascotaRepo struct {
	db *sql.DB
}

func NewMascotaRepo(db *sql.DB) *MascotaRepo {
	return &MascotaRepo{db: db}
}

const mascotaCols = `id, nombre, fecha_nacimiento, estado, chip, genero, id_dueno, id_raza`

func scanMascota(row interface{ Scan(...any) error }) (mascotas.Mascota, error) {
	var m mascotas.Mascota
	err := row.Scan(
		&m.ID,
		&m.Nombre,
		&m.FechaNacimiento,
		&m.Estado,
		&m.Chip,
		&m.Genero,
		&m.DuenoID,
		&m.RazaID,
	)
	return m, err
}

func (r *MascotaRepo) ListAll(ctx context.Context) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		ORDER BY id ASC
	`)
}

func (r *MascotaRepo) GetByID(ctx context.Context, id int64) (mascotas.Mascota, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE id = $1
	`, id)

	m, err := scanMascota(row)
	if err == sql.ErrNoRows {
		return mascotas.Mascota{}, mascotas.ErrNotFound
	}
	return m, err
}

func (r *MascotaRepo) Create(ctx context.Context, m mascotas.Mascota) (mascotas.Mascota, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO mascota (nombre, fecha_nacimiento, estado, chip, genero, id_dueno, id_raza)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		m.Nombre,
		m.FechaNacimiento,
		m.Estado,
		m.Chip,
		m.Genero,
		m.DuenoID,
		m.RazaID,
	).Scan(&m.ID)
	return m, err
}

func (r *MascotaRepo) Update(ctx context.Context, m mascotas.Mascota) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE mascota
		SET nombre = $2, fecha_nacimiento = $3, estado = $4,
		    chip = $5, genero = $6, id_dueno = $7, id_raza = $8
		WHERE id = $1
	`,
		m.ID,
		m.Nombre,
		m.FechaNacimiento,
		m.Estado,
		m.Chip,
		m.Genero,
		m.DuenoID,
		m.RazaID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mascotas.ErrNotFound
	}
	return nil
}

func (r *MascotaRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mascota WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mascotas.ErrNotFound
	}
	return nil
}

func (r *MascotaRepo) ListByNombre(ctx context.Context, nombre string) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE nombre = $1
		ORDER BY id ASC
	`, nombre)
}

func (r *MascotaRepo) ListByDuenoID(ctx context.Context, duenoID int64) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE id_dueno = $1
		ORDER BY id ASC
	`, duenoID)
}

func (r *MascotaRepo) ListByRazaID(ctx context.Context, razaID int64) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE id_raza = $1
		ORDER BY id ASC
	`, razaID)
}

func (r *MascotaRepo) ListByGenero(ctx context.Context, genero string) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE genero = $1
		ORDER BY id ASC
	`, genero)
}

func (r *MascotaRepo) ListBornAfter(ctx context.Context, fecha time.Time) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE fecha_nacimiento > $1
		ORDER BY id ASC
	`, fecha)
}

func (r *MascotaRepo) ListBornBefore(ctx context.Context, fecha time.Time) ([]mascotas.Mascota, error) {
	return r.list(ctx, `
		SELECT `+mascotaCols+`
		FROM mascota
		WHERE fecha_nacimiento < $1
		ORDER BY id ASC
	`, fecha)
}

func (r *MascotaRepo) list(ctx context.Context, query string, args ...any) ([]mascotas.Mascota, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mascotas.Mascota, 0)
	for rows.Next() {
		m, err := scanMascota(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
