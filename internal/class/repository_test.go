package class

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, *sqlx.DB) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, dbx
}

var detailRows = []string{"id", "actividad", "costo", "instructor", "hora_inicio", "hora_fin", "dictada"}

func TestListDetailed(t *testing.T) {
	repo, mock, dbx := newMockRepo(t)
	defer dbx.Close()

	mock.ExpectQuery(`SELECT(?s:.*)FROM clase c(?s:.*)JOIN turnos t ON t.id = c.id_turno`).
		WillReturnRows(sqlmock.NewRows(detailRows).
			AddRow(1, "Natación", 1200.0, "Ana Pérez", 8*3600, 9*3600, false).
			AddRow(2, "Tenis", 900.0, "Luis Gómez", 9*3600, 10*3600, true))

	classes, err := repo.ListDetailed(context.Background())
	assert.NoError(t, err)
	assert.Len(t, classes, 2)
	assert.Equal(t, "Natación", classes[0].Actividad)
	assert.Equal(t, "Ana Pérez", classes[0].Instructor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActivityIDByName(t *testing.T) {
	repo, mock, dbx := newMockRepo(t)
	defer dbx.Close()

	mock.ExpectQuery(`SELECT id FROM actividades WHERE nombre = \$1`).
		WithArgs("Natación").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.FindActivityIDByName(context.Background(), "Natación")
	assert.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActivityIDByName_NotFound(t *testing.T) {
	repo, mock, dbx := newMockRepo(t)
	defer dbx.Close()

	mock.ExpectQuery(`SELECT id FROM actividades WHERE nombre = \$1`).
		WithArgs("Esgrima").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActivityIDByName(context.Background(), "Esgrima")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClass(t *testing.T) {
	repo, mock, dbx := newMockRepo(t)
	defer dbx.Close()

	mock.ExpectQuery(`INSERT INTO clase.*`).
		WithArgs(int64(41234567), 3, 1, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ci_instructor", "id_actividad", "id_turno", "dictada"}).
			AddRow(7, 41234567, 3, 1, false))

	class, err := repo.Create(context.Background(), 41234567, 3, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 7, class.ID)
	assert.Equal(t, int64(41234567), class.CIInstructor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByStudent(t *testing.T) {
	repo, mock, dbx := newMockRepo(t)
	defer dbx.Close()

	mock.ExpectQuery(`SELECT(?s:.*)FROM alumno_clase ac(?s:.*)WHERE ac.ci_alumno = \$1`).
		WithArgs(int64(51234567)).
		WillReturnRows(sqlmock.NewRows(detailRows).
			AddRow(1, "Natación", 1200.0, "Ana Pérez", 8*3600, 9*3600, false))

	classes, err := repo.ListByStudent(context.Background(), 51234567)
	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
