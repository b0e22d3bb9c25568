package timeslot

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

func (r *repository) List(ctx context.Context) ([]TimeSlot, error) {
	query := `
		SELECT id, hora_inicio, hora_fin
		FROM turnos
		ORDER BY hora_inicio
	`

	var slots []TimeSlot
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) Create(ctx context.Context, horaInicio, horaFin int) (*TimeSlot, error) {
	query := `
		INSERT INTO turnos (hora_inicio, hora_fin)
		VALUES ($1, $2)
		RETURNING id, hora_inicio, hora_fin
	`

	var slot TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, horaInicio, horaFin); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM turnos WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) Usage(ctx context.Context) ([]SlotUsage, error) {
	query := `
		SELECT t.id, t.hora_inicio, t.hora_fin, COUNT(c.id) AS cantidad_clases
		FROM turnos t
		LEFT JOIN clase c ON c.id_turno = t.id
		GROUP BY t.id, t.hora_inicio, t.hora_fin
		ORDER BY cantidad_clases DESC
	`

	var usage []SlotUsage
	if err := r.db.SelectContext(ctx, &usage, query); err != nil {
		return nil, err
	}

	return usage, nil
}
