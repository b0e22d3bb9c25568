package student

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

const studentColumns = `ci, nombre, apellido, to_char(fecha_nacimiento, 'YYYY-MM-DD') AS fecha_nacimiento, telefono, correo, contrasena`

func (r *repository) List(ctx context.Context) ([]Student, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM alumnos
		ORDER BY ci
	`, studentColumns)

	var students []Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *repository) Create(ctx context.Context, s Student) (*Student, error) {
	query := fmt.Sprintf(`
		INSERT INTO alumnos (ci, nombre, apellido, fecha_nacimiento, telefono, correo, contrasena)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, studentColumns)

	var created Student
	err := r.db.GetContext(ctx, &created, query,
		s.CI, s.Nombre, s.Apellido, s.FechaNacimiento, s.Telefono, s.Correo, s.Contrasena)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) Update(ctx context.Context, ci int64, req UpdateStudentRequest) (int64, error) {
	var fields []string
	var args []interface{}

	add := func(column string, value *string) {
		if present(value) {
			args = append(args, *value)
			fields = append(fields, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}

	add("nombre", req.Nombre)
	add("apellido", req.Apellido)
	add("fecha_nacimiento", req.FechaNacimiento)
	add("telefono", req.Telefono)
	add("correo", req.Correo)
	add("contrasena", req.Contrasena)

	args = append(args, ci)
	query := fmt.Sprintf(
		"UPDATE alumnos SET %s WHERE ci = $%d",
		strings.Join(fields, ", "),
		len(args),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// Delete removes the student's enrollments and credential along with
// the row itself.
func (r *repository) Delete(ctx context.Context, ci int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM alumno_clase WHERE ci_alumno = $1", ci); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM login WHERE ci_alumno = $1", ci); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM alumnos WHERE ci = $1", ci)
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

func (r *repository) Register(ctx context.Context, s Student) (*Student, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO alumnos (ci, nombre, apellido, fecha_nacimiento, telefono, correo, contrasena)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, studentColumns)

	var created Student
	err = tx.GetContext(ctx, &created, query,
		s.CI, s.Nombre, s.Apellido, s.FechaNacimiento, s.Telefono, s.Correo, s.Contrasena)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO login (ci_alumno, correo, contrasena) VALUES ($1, $2, $3)",
		s.CI, s.Correo, s.Contrasena)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) CredentialByEmail(ctx context.Context, correo string) (*Credential, error) {
	query := `
		SELECT ci_alumno, correo, contrasena
		FROM login
		WHERE correo = $1
	`

	var cred Credential
	if err := r.db.GetContext(ctx, &cred, query, correo); err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *repository) DeleteCredential(ctx context.Context, ci int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM login WHERE ci_alumno = $1", ci)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
