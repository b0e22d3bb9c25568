package class

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

const detailColumns = `
	c.id,
	a.nombre AS actividad,
	a.costo,
	i.nombre || ' ' || i.apellido AS instructor,
	t.hora_inicio,
	t.hora_fin,
	c.dictada
`

func (r *repository) ListDetailed(ctx context.Context) ([]ClassDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM clase c
		JOIN actividades a ON a.id = c.id_actividad
		JOIN instructores i ON i.ci = c.ci_instructor
		JOIN turnos t ON t.id = c.id_turno
		ORDER BY c.id
	`

	var classes []ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) FindActivityIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.GetContext(ctx, &id, "SELECT id FROM actividades WHERE nombre = $1", name)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) Create(ctx context.Context, ciInstructor int64, idActividad, idTurno int, dictada bool) (*Class, error) {
	query := `
		INSERT INTO clase (ci_instructor, id_actividad, id_turno, dictada)
		VALUES ($1, $2, $3, $4)
		RETURNING id, ci_instructor, id_actividad, id_turno, dictada
	`

	var class Class
	if err := r.db.GetContext(ctx, &class, query, ciInstructor, idActividad, idTurno, dictada); err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) ListByStudent(ctx context.Context, ci int64) ([]ClassDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM alumno_clase ac
		JOIN clase c ON c.id = ac.id_clase
		JOIN actividades a ON a.id = c.id_actividad
		JOIN instructores i ON i.ci = c.ci_instructor
		JOIN turnos t ON t.id = c.id_turno
		WHERE ac.ci_alumno = $1
		ORDER BY c.id
	`

	var classes []ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query, ci); err != nil {
		return nil, err
	}

	return classes, nil
}
