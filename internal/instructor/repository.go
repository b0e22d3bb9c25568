package instructor

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Instructor, error) {
	query := `
		SELECT ci, nombre, apellido
		FROM instructores
		ORDER BY ci
	`

	var instructors []Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, err
	}

	return instructors, nil
}

func (r *repository) Create(ctx context.Context, i Instructor) (*Instructor, error) {
	query := `
		INSERT INTO instructores (ci, nombre, apellido)
		VALUES ($1, $2, $3)
		RETURNING ci, nombre, apellido
	`

	var created Instructor
	if err := r.db.GetContext(ctx, &created, query, i.CI, i.Nombre, i.Apellido); err != nil {
		return nil, err
	}

	return &created, nil
}
