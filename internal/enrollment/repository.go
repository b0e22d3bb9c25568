package enrollment

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

func (r *repository) Insert(ctx context.Context, req EnrollRequest) (*Enrollment, error) {
	query := `
		INSERT INTO alumno_clase (id_clase, ci_alumno, id_equipamiento)
		VALUES ($1, $2, $3)
		RETURNING id_clase, ci_alumno, id_equipamiento
	`

	var enrollment Enrollment
	err := r.db.GetContext(ctx, &enrollment, query, req.IDClase, req.CIAlumno, req.IDEquipamiento)
	if err != nil {
		return nil, err
	}

	return &enrollment, nil
}

func (r *repository) Delete(ctx context.Context, idClase int, ciAlumno int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM alumno_clase WHERE id_clase = $1 AND ci_alumno = $2",
		idClase, ciAlumno,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
