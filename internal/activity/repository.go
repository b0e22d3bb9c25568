package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Activity, error) {
	query := `
		SELECT id, nombre, descripcion, costo
		FROM actividades
		ORDER BY id
	`

	var activities []Activity
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *repository) Create(ctx context.Context, nombre, descripcion string, costo float64) (*Activity, error) {
	query := `
		INSERT INTO actividades (nombre, descripcion, costo)
		VALUES ($1, $2, $3)
		RETURNING id, nombre, descripcion, costo
	`

	var activity Activity
	if err := r.db.GetContext(ctx, &activity, query, nombre, descripcion, costo); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateActivityRequest) (int64, error) {
	var fields []string
	var args []interface{}

	if req.Nombre != nil {
		args = append(args, *req.Nombre)
		fields = append(fields, fmt.Sprintf("nombre = $%d", len(args)))
	}
	if req.Descripcion != nil {
		args = append(args, *req.Descripcion)
		fields = append(fields, fmt.Sprintf("descripcion = $%d", len(args)))
	}
	if req.Costo != nil {
		args = append(args, *req.Costo)
		fields = append(fields, fmt.Sprintf("costo = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE actividades SET %s WHERE id = $%d",
		strings.Join(fields, ", "),
		len(args),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// Delete removes the activity and everything hanging off it in one
// transaction: enrollments of its classes, the classes, then the row.
// The returned count is the activity row's own affected count.
func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM alumno_clase
		WHERE id_clase IN (SELECT id FROM clase WHERE id_actividad = $1)
	`, id)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM clase WHERE id_actividad = $1", id)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM actividades WHERE id = $1", id)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return affected, nil
}

func (r *repository) Popular(ctx context.Context) ([]PopularActivity, error) {
	query := `
		SELECT a.id, a.nombre, COUNT(DISTINCT ac.ci_alumno) AS cantidad_alumnos
		FROM actividades a
		LEFT JOIN clase c ON c.id_actividad = a.id
		LEFT JOIN alumno_clase ac ON ac.id_clase = c.id
		GROUP BY a.id, a.nombre
		ORDER BY cantidad_alumnos DESC
	`

	var popular []PopularActivity
	if err := r.db.SelectContext(ctx, &popular, query); err != nil {
		return nil, err
	}

	return popular, nil
}
