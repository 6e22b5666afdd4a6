package postgres

import (
	"context"
	"database/sql"

	"microvetcare/internal/domain/duenos"
)

type DuenoRepo struct {
	db *sql.DB
}

func NewDuenoRepo(db *sql.DB) *DuenoRepo {
	return &DuenoRepo{db: db}
}

const duenoCols = `id, rut, nombre, apellido, direccion, telefono, email, estado`

// direccion, telefono y email son opcionales; NULL se normaliza a "".
func scanDueno(row interface{ Scan(...any) error }) (duenos.Dueno, error) {
	var d duenos.Dueno
	var direccion, telefono, email sql.NullString
	err := row.Scan(&d.ID, &d.Rut, &d.Nombre, &d.Apellido, &direccion, &telefono, &email, &d.Estado)
	if err != nil {
		return duenos.Dueno{}, err
	}
	d.Direccion = direccion.String
	d.Telefono = telefono.String
	d.Email = email.String
	return d, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *DuenoRepo) ListAll(ctx context.Context) ([]duenos.Dueno, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+duenoCols+`
		FROM dueno
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]duenos.Dueno, 0)
	for rows.Next() {
		d, err := scanDueno(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DuenoRepo) GetByID(ctx context.Context, id int64) (duenos.Dueno, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+duenoCols+`
		FROM dueno
		WHERE id = $1
	`, id)

	d, err := scanDueno(row)
	if err == sql.ErrNoRows {
		return duenos.Dueno{}, duenos.ErrNotFound
	}
	return d, err
}

func (r *DuenoRepo) GetByRut(ctx context.Context, rut string) (duenos.Dueno, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+duenoCols+`
		FROM dueno
		WHERE rut = $1
	`, rut)

	d, err := scanDueno(row)
	if err == sql.ErrNoRows {
		return duenos.Dueno{}, duenos.ErrNotFound
	}
	return d, err
}

func (r *DuenoRepo) GetByEmail(ctx context.Context, email string) (duenos.Dueno, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+duenoCols+`
		FROM dueno
		WHERE email = $1
	`, email)

	d, err := scanDueno(row)
	if err == sql.ErrNoRows {
		return duenos.Dueno{}, duenos.ErrNotFound
	}
	return d, err
}

func (r *DuenoRepo) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM dueno WHERE rut = $1)
	`, rut).Scan(&exists)
	return exists, err
}

func (r *DuenoRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM dueno WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *DuenoRepo) Create(ctx context.Context, d duenos.Dueno) (duenos.Dueno, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO dueno (rut, nombre, apellido, direccion, telefono, email, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		d.Rut,
		d.Nombre,
		d.Apellido,
		toNullString(d.Direccion),
		toNullString(d.Telefono),
		toNullString(d.Email),
		d.Estado,
	).Scan(&d.ID)
	return d, err
}

func (r *DuenoRepo) Update(ctx context.Context, d duenos.Dueno) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dueno
		SET rut = $2, nombre = $3, apellido = $4,
		    direccion = $5, telefono = $6, email = $7, estado = $8
		WHERE id = $1
	`,
		d.ID,
		d.Rut,
		d.Nombre,
		d.Apellido,
		toNullString(d.Direccion),
		toNullString(d.Telefono),
		toNullString(d.Email),
		d.Estado,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return duenos.ErrNotFound
	}
	return nil
}

// Delete borra al dueño; la FK de mascota (ON DELETE CASCADE) arrastra sus
// mascotas en la misma sentencia.
func (r *DuenoRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dueno WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return duenos.ErrNotFound
	}
	return nil
}

func (r *DuenoRepo) MascotaIDs(ctx context.Context, duenoID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id
		FROM mascota
		WHERE id_dueno = $1
		ORDER BY id ASC
	`, duenoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
