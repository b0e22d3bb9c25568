package equipment

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

func (r *repository) List(ctx context.Context) ([]Equipment, error) {
	query := `
		SELECT id, id_actividad, descripcion, costo
		FROM equipamiento
		ORDER BY id
	`

	var equipment []Equipment
	if err := r.db.SelectContext(ctx, &equipment, query); err != nil {
		return nil, err
	}

	return equipment, nil
}
