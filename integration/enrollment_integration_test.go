package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"clubdeportivo/internal/enrollment"
	"clubdeportivo/internal/server"
)

func seedClassAndStudent(t *testing.T, db *sqlx.DB) (int, int64) {
	var idActividad int
	require.NoError(t, db.Get(&idActividad,
		"INSERT INTO actividades (nombre, descripcion, costo) VALUES ('Tenis', 'Cancha abierta', 900) RETURNING id"))

	var idTurno int
	require.NoError(t, db.Get(&idTurno,
		"INSERT INTO turnos (hora_inicio, hora_fin) VALUES (28800, 32400) RETURNING id"))

	ciInstructor := int64(41234567)
	_, err := db.Exec(
		"INSERT INTO instructores (ci, nombre, apellido) VALUES ($1, 'Ana', 'Pérez')", ciInstructor)
	require.NoError(t, err)

	var idClase int
	require.NoError(t, db.Get(&idClase,
		"INSERT INTO clase (ci_instructor, id_actividad, id_turno, dictada) VALUES ($1, $2, $3, false) RETURNING id",
		ciInstructor, idActividad, idTurno))

	ciAlumno := int64(51234567)
	_, err = db.Exec(`
		INSERT INTO alumnos (ci, nombre, apellido, fecha_nacimiento, telefono, correo, contrasena)
		VALUES ($1, 'Luis', 'Gómez', '2000-05-14', '099123456', 'luis@club.com', 'hash')`,
		ciAlumno)
	require.NoError(t, err)

	return idClase, ciAlumno
}

func newEnrollmentRouter(db *sqlx.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(server.ErrorMiddleware())

	handler := enrollment.NewHandler(db)
	router.POST("/inscribir_alumno", handler.Enroll)
	router.DELETE("/desinscribir_alumno/:id_clase/:ci", handler.Unenroll)
	return router
}

func TestEnrollAndUnenroll_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()
	cleanDatabase(t, db)

	idClase, ciAlumno := seedClassAndStudent(t, db)
	router := newEnrollmentRouter(db)

	enroll := func() *httptest.ResponseRecorder {
		reqBody := map[string]interface{}{
			"id_clase":  idClase,
			"ci_alumno": ciAlumno,
		}
		bodyBytes, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/inscribir_alumno", bytes.NewBuffer(bodyBytes))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// First enrollment succeeds
	w := enroll()
	require.Equal(t, http.StatusCreated, w.Code)

	// Enrolling again hits the composite primary key
	w = enroll()
	require.Equal(t, http.StatusConflict, w.Code)

	// Unenroll removes the row
	url := fmt.Sprintf("/desinscribir_alumno/%d/%d", idClase, ciAlumno)
	req, _ := http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// A second unenroll finds nothing
	req, _ = http.NewRequest("DELETE", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
