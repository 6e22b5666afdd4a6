package postgres

import (
	"context"
	"database/sql"

	"microvetcare/internal/domain/especies"
)

type EspecieRepo struct {
	db *sql.DB
}

func NewEspecieRepo(db *sql.DB) *EspecieRepo {
	return &EspecieRepo{db: db}
}

const especieCols = `id, nombre_especie, nombre, estado`

func scanEspecie(row interface{ Scan(...any) error }) (especies.Especie, error) {
	var e especies.Especie
	err := row.Scan(&e.ID, &e.NombreEspecie, &e.Nombre, &e.Estado)
	return e, err
}

func (r *EspecieRepo) ListAll(ctx context.Context) ([]especies.Especie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+especieCols+`
		FROM especie
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]especies.Especie, 0)
	for rows.Next() {
		e, err := scanEspecie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EspecieRepo) GetByID(ctx context.Context, id int64) (especies.Especie, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+especieCols+`
		FROM especie
		WHERE id = $1
	`, id)

	e, err := scanEspecie(row)
	if err == sql.ErrNoRows {
		return especies.Especie{}, especies.ErrNotFound
	}
	return e, err
}

func (r *EspecieRepo) GetByNombre(ctx context.Context, nombre string) (especies.Especie, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+especieCols+`
		FROM especie
		WHERE nombre = $1
	`, nombre)

	e, err := scanEspecie(row)
	if err == sql.ErrNoRows {
		return especies.Especie{}, especies.ErrNotFound
	}
	return e, err
}

func (r *EspecieRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM especie WHERE nombre = $1)
	`, nombre).Scan(&exists)
	return exists, err
}

func (r *EspecieRepo) ExistsByNombreEspecie(ctx context.Context, nombreEspecie string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM especie WHERE nombre_especie = $1)
	`, nombreEspecie).Scan(&exists)
	return exists, err
}

func (r *EspecieRepo) Create(ctx context.Context, e especies.Especie) (especies.Especie, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO especie (nombre_especie, nombre, estado)
		VALUES ($1, $2, $3)
		RETURNING id
	`, e.NombreEspecie, e.Nombre, e.Estado).Scan(&e.ID)
	return e, err
}

func (r *EspecieRepo) Update(ctx context.Context, e especies.Especie) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE especie
		SET nombre_especie = $2, nombre = $3, estado = $4
		WHERE id = $1
	`, e.ID, e.NombreEspecie, e.Nombre, e.Estado)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return especies.ErrNotFound
	}
	return nil
}

// Delete borra la especie y arrastra sus razas, pero aborta si alguna raza
// de la especie tiene mascotas. La verificación corre dentro de la misma
// transacción que el DELETE.
func (r *EspecieRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var enUso bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM mascota m
			JOIN raza rz ON rz.id = m.id_raza
			WHERE rz.id_especie = $1
		)
	`, id).Scan(&enUso)
	if err != nil {
		return err
	}
	if enUso {
		return especies.ErrRazasEnUso
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM especie WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return especies.ErrNotFound
	}

	return tx.Commit()
}
