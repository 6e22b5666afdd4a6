package postgres

import (
	"context"
	"database/sql"

	"microvetcare/internal/domain/razas"
)

type RazaRepo struct {
	db *sql.DB
}

func NewRazaRepo(db *sql.DB) *RazaRepo {
	return &RazaRepo{db: db}
}

const razaCols = `id, nombre, estado, id_especie`

func scanRaza(row interface{ Scan(...any) error }) (razas.Raza, error) {
	var rz razas.Raza
	err := row.Scan(&rz.ID, &rz.Nombre, &rz.Estado, &rz.EspecieID)
	return rz, err
}

func (r *RazaRepo) ListAll(ctx context.Context) ([]razas.Raza, error) {
	return r.list(ctx, `
		SELECT `+razaCols+`
		FROM raza
		ORDER BY id ASC
	`)
}

func (r *RazaRepo) GetByID(ctx context.Context, id int64) (razas.Raza, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+razaCols+`
		FROM raza
		WHERE id = $1
	`, id)

	rz, err := scanRaza(row)
	if err == sql.ErrNoRows {
		return razas.Raza{}, razas.ErrNotFound
	}
	return rz, err
}

func (r *RazaRepo) GetByNombre(ctx context.Context, nombre string) (razas.Raza, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+razaCols+`
		FROM raza
		WHERE nombre = $1
	`, nombre)

	rz, err := scanRaza(row)
	if err == sql.ErrNoRows {
		return razas.Raza{}, razas.ErrNotFound
	}
	return rz, err
}

func (r *RazaRepo) ListByEspecieID(ctx context.Context, especieID int64) ([]razas.Raza, error) {
	return r.list(ctx, `
		SELECT `+razaCols+`
		FROM raza
		WHERE id_especie = $1
		ORDER BY id ASC
	`, especieID)
}

func (r *RazaRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM raza WHERE nombre = $1)
	`, nombre).Scan(&exists)
	return exists, err
}

func (r *RazaRepo) Create(ctx context.Context, rz razas.Raza) (razas.Raza, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO raza (nombre, estado, id_especie)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rz.Nombre, rz.Estado, rz.EspecieID).Scan(&rz.ID)
	return rz, err
}

func (r *RazaRepo) Update(ctx context.Context, rz razas.Raza) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE raza
		SET nombre = $2, estado = $3, id_especie = $4
		WHERE id = $1
	`, rz.ID, rz.Nombre, rz.Estado, rz.EspecieID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return razas.ErrNotFound
	}
	return nil
}

// Delete está bloqueado mientras existan mascotas de la raza (además del
// RESTRICT a nivel de esquema, el chequeo explícito permite devolver el
// sentinel de dominio).
func (r *RazaRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var enUso bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM mascota WHERE id_raza = $1)
	`, id).Scan(&enUso)
	if err != nil {
		return err
	}
	if enUso {
		return razas.ErrEnUso
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM raza WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return razas.ErrNotFound
	}

	return tx.Commit()
}

func (r *RazaRepo) list(ctx context.Context, query string, args ...any) ([]razas.Raza, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]razas.Raza, 0)
	for rows.Next() {
		rz, err := scanRaza(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rz)
	}
	return out, rows.Err()
}
